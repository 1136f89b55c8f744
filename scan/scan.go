// Package scan finds every dictionary term occurring anywhere in a block of
// text. Unlike the lookup pipeline, which resolves one position at a time, a
// Scanner sweeps whole documents in a single pass over an Aho-Corasick
// automaton built from the dictionary's headwords and readings.
package scan

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/SanzharKuandyk/saya/dictionary"
)

// Match is one dictionary term found in the scanned text. Start and End are
// byte offsets into the input.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Term  string `json:"term"`
}

// Scanner holds an automaton over a dictionary's terms. Build once, scan many
// times; the automaton is immutable and safe for concurrent use.
type Scanner struct {
	ac    *ahocorasick.Automaton
	terms int
}

// NewScanner builds a scanner from every headword and reading in store.
// The input text should be normalized the same way the dictionary terms are.
func NewScanner(store *dictionary.Store) (*Scanner, error) {
	terms := store.Terms()
	if len(terms) == 0 {
		return nil, fmt.Errorf("cannot build scanner: dictionary has no terms")
	}
	ac, err := ahocorasick.NewBuilder().
		AddStrings(terms).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build scan automaton: %w", err)
	}
	return &Scanner{ac: ac, terms: len(terms)}, nil
}

// Terms returns the number of patterns in the automaton.
func (s *Scanner) Terms() int {
	return s.terms
}

// Scan returns every dictionary term in text, including overlapping hits.
func (s *Scanner) Scan(text string) []Match {
	if text == "" {
		return nil
	}
	raw := s.ac.FindAllOverlapping([]byte(text))
	out := make([]Match, 0, len(raw))
	for _, m := range raw {
		if m.Start >= len(text) || m.End > len(text) || m.Start >= m.End {
			continue
		}
		out = append(out, Match{
			Start: m.Start,
			End:   m.End,
			Term:  text[m.Start:m.End],
		})
	}
	return out
}
