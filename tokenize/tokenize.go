// Package tokenize turns raw captured text into candidate lookup spans.
//
// Japanese has no inter-word spacing, so the boundary of a lexical unit
// cannot be decided without consulting the dictionary. Tokenize therefore
// emits every bounded-length substring and lets dictionary lookup decide
// which spans are real words.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSpanRunes caps span length. No realistic single dictionary word is
// longer than 10 characters, and the cap keeps span count at O(n*10).
const maxSpanRunes = 10

// Span is a candidate lookup unit: a substring of the normalized text plus
// the character offset it starts at.
type Span struct {
	Surface    string `json:"surface"`
	Normalized string `json:"normalized"`
	Position   int    `json:"position"`
}

// Normalize applies NFKC normalization, folding full-width and compatibility
// variants, then strips all whitespace except a literal space. Line breaks
// introduced by OCR would otherwise fragment words mid-span.
func Normalize(text string) string {
	folded := norm.NFKC.String(text)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) && r != ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokenize normalizes text and produces every candidate span: for each start
// offset, every substring of length 1..min(10, remaining), longest first.
// Longest-first ordering lets a consumer that wants one match per offset take
// the first dictionary-confirmed span and move on; that policy belongs to the
// caller, not here.
func Tokenize(text string) []Span {
	normalized := Normalize(text)
	runes := []rune(normalized)

	var spans []Span
	for i := range runes {
		max := len(runes) - i
		if max > maxSpanRunes {
			max = maxSpanRunes
		}
		for l := max; l >= 1; l-- {
			surface := string(runes[i : i+l])
			spans = append(spans, Span{
				Surface:    surface,
				Normalized: surface,
				Position:   i,
			})
		}
	}
	return spans
}
