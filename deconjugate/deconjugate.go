// Package deconjugate reverses Japanese verb and i-adjective inflections to
// recover candidate dictionary base forms.
//
// It is a pure rule engine: it never consults a dictionary, and most of its
// candidates are not real words. The caller is expected to filter candidates
// by whether they resolve in the dictionary, which is what disambiguates the
// godan endings that share a surface spelling.
package deconjugate

import "strings"

// Result is one candidate base form for a conjugated surface string.
// Confidence reflects ambiguity, not correctness: 1.0 for exact irregular
// matches, 0.8 for the single ichidan candidate, 0.6-0.7 for godan endings
// that several base verbs compress to.
type Result struct {
	BaseForm        string  `json:"base_form"`
	ConjugationType string  `json:"conjugation_type"`
	Confidence      float64 `json:"confidence"`
}

// i-column → u-column, the nine godan rows used by the masu-form rule.
var masuRows = [][2]string{
	{"い", "う"},
	{"き", "く"},
	{"ぎ", "ぐ"},
	{"し", "す"},
	{"ち", "つ"},
	{"に", "ぬ"},
	{"び", "ぶ"},
	{"み", "む"},
	{"り", "る"},
}

// a-column → u-column, the nine godan rows used by the negative rule.
var naiRows = [][2]string{
	{"か", "く"},
	{"が", "ぐ"},
	{"さ", "す"},
	{"た", "つ"},
	{"な", "ぬ"},
	{"ば", "ぶ"},
	{"ま", "む"},
	{"ら", "る"},
	{"わ", "う"},
}

// Deconjugate returns every base-form candidate for word. The rule families
// run independently and their results are concatenated; an inflected surface
// form may legitimately match several families. Always returns, possibly an
// empty slice.
func Deconjugate(word string) []Result {
	var out []Result
	out = append(out, teForm(word)...)
	out = append(out, taForm(word)...)
	out = append(out, masuForm(word)...)
	out = append(out, teiruForm(word)...)
	out = append(out, negative(word)...)
	out = append(out, iAdjective(word)...)
	return out
}

// teForm handles て and its voiced counterpart で (the ta-form rule rewrites
// だ→で before delegating here). Te-form compresses several
// dictionary endings to one surface spelling, so an ambiguous stem mora emits
// every phonetically compatible u-column ending.
func teForm(word string) []Result {
	var out []Result

	if stem, ok := strings.CutSuffix(word, "て"); ok {
		if root, ok := strings.CutSuffix(stem, "い"); ok {
			// 買って-style う verbs never produce いて, but 行く does (行って is
			// the exception handled by the っ branch); いて itself maps to う/く
			out = append(out,
				Result{root + "う", "godan verb, te-form", 0.7},
				Result{root + "く", "godan verb, te-form", 0.7})
		}
		if root, ok := strings.CutSuffix(stem, "っ"); ok {
			for _, ending := range []string{"う", "つ", "る"} {
				out = append(out, Result{root + ending, "godan verb, te-form", 0.6})
			}
		}
		if root, ok := strings.CutSuffix(stem, "し"); ok {
			out = append(out, Result{root + "す", "godan verb, te-form", 0.7})
		}
		out = append(out, Result{stem + "る", "ichidan verb, te-form", 0.8})
	}

	if stem, ok := strings.CutSuffix(word, "で"); ok {
		if root, ok := strings.CutSuffix(stem, "ん"); ok {
			for _, ending := range []string{"ぬ", "ぶ", "む"} {
				out = append(out, Result{root + ending, "godan verb, te-form", 0.6})
			}
		}
		if root, ok := strings.CutSuffix(stem, "い"); ok {
			out = append(out, Result{root + "ぐ", "godan verb, te-form", 0.7})
		}
	}

	if word == "して" {
		out = append(out, Result{"する", "irregular verb する, te-form", 1.0})
	}
	if word == "来て" || word == "きて" {
		out = append(out, Result{"来る", "irregular verb 来る, te-form", 1.0})
	}
	return out
}

// taForm rewrites the past form to its te-form equivalent (た→て, だ→で) and
// delegates; the ambiguity profile is identical.
func taForm(word string) []Result {
	if stem, ok := strings.CutSuffix(word, "た"); ok {
		return teForm(stem + "て")
	}
	if stem, ok := strings.CutSuffix(word, "だ"); ok {
		return teForm(stem + "で")
	}
	return nil
}

func masuForm(word string) []Result {
	var out []Result

	if stem, ok := strings.CutSuffix(word, "ます"); ok {
		out = append(out, Result{stem + "る", "ichidan verb, masu-form", 0.8})
		for _, row := range masuRows {
			if root, ok := strings.CutSuffix(stem, row[0]); ok {
				out = append(out, Result{root + row[1], "godan verb, masu-form", 0.8})
			}
		}
	}

	if word == "します" {
		out = append(out, Result{"する", "irregular verb する, masu-form", 0.8})
	}
	if word == "来ます" || word == "きます" {
		out = append(out, Result{"来る", "irregular verb 来る, masu-form", 0.8})
	}
	return out
}

// teiruForm strips the continuous suffix back to a te-form string, delegates,
// and tags every candidate as continuous on top of its base label.
func teiruForm(word string) []Result {
	if !strings.HasSuffix(word, "ている") && !strings.HasSuffix(word, "でいる") {
		return nil
	}
	out := teForm(strings.TrimSuffix(word, "いる"))
	for i := range out {
		out[i].ConjugationType += ", continuous"
	}
	return out
}

func negative(word string) []Result {
	var out []Result

	if stem, ok := strings.CutSuffix(word, "ない"); ok {
		for _, row := range naiRows {
			if root, ok := strings.CutSuffix(stem, row[0]); ok {
				out = append(out, Result{root + row[1], "godan verb, negative", 0.8})
			}
		}
		out = append(out, Result{stem + "る", "ichidan verb, negative", 0.8})
	}

	if word == "しない" {
		out = append(out, Result{"する", "irregular verb する, negative", 0.8})
	}
	if word == "来ない" || word == "こない" {
		out = append(out, Result{"来る", "irregular verb 来る, negative", 0.8})
	}
	return out
}

func iAdjective(word string) []Result {
	var out []Result
	if stem, ok := strings.CutSuffix(word, "くない"); ok {
		out = append(out, Result{stem + "い", "i-adjective, negative", 0.8})
	}
	if stem, ok := strings.CutSuffix(word, "かった"); ok {
		out = append(out, Result{stem + "い", "i-adjective, past", 0.8})
	}
	if stem, ok := strings.CutSuffix(word, "くて"); ok {
		out = append(out, Result{stem + "い", "i-adjective, te-form", 0.8})
	}
	return out
}
