// Package reading annotates Japanese text with kana readings using a kagome
// morphological dictionary. It backs the furigana shown in the overlay and
// supplies a reading for results whose dictionary entry has none.
package reading

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Segment pairs a surface run with its kana reading. Reading is empty when
// the surface is already kana or has no known reading.
type Segment struct {
	Surface string `json:"surface"`
	Reading string `json:"reading,omitempty"`
}

// Annotator wraps a kagome tokenizer built over a chosen system dictionary.
type Annotator struct {
	tok *tokenizer.Tokenizer
}

// New builds an annotator. name selects the system dictionary: "ipa"
// (default) or "uni".
func New(name string) (*Annotator, error) {
	var d *dict.Dict
	switch name {
	case "", "ipa":
		d = ipa.Dict()
	case "uni":
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown reading dictionary %q", name)
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init reading tokenizer: %w", err)
	}
	return &Annotator{tok: t}, nil
}

// Reading returns the full hiragana reading of text. Tokens without a known
// reading contribute their surface unchanged.
func (a *Annotator) Reading(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, kt := range a.tok.Tokenize(text) {
		r, ok := kt.Reading()
		if !ok || r == "" {
			b.WriteString(kt.Surface)
			continue
		}
		b.WriteString(Hiragana(r))
	}
	return b.String()
}

// Furigana splits text into segments, attaching a reading only to runs that
// contain kanji; kana and latin runs pass through unannotated.
func (a *Annotator) Furigana(text string) []Segment {
	if text == "" {
		return nil
	}
	var out []Segment
	for _, kt := range a.tok.Tokenize(text) {
		seg := Segment{Surface: kt.Surface}
		if ContainsKanji(kt.Surface) {
			if r, ok := kt.Reading(); ok {
				seg.Reading = Hiragana(r)
			}
		}
		out = append(out, seg)
	}
	return out
}

// Hiragana converts katakana runes to their hiragana counterparts; all other
// runes pass through.
func Hiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// ContainsKanji reports whether s contains at least one CJK ideograph.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
