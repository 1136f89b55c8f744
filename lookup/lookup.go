// Package lookup resolves candidate spans against the dictionary and
// enrichment tables, producing display-ready results.
//
// The processor is a pure function of its inputs plus the immutable stores
// it composes: it holds no mutable state and is safe to call concurrently,
// including across thousands of spans of a single capture.
package lookup

import (
	"fmt"

	"github.com/SanzharKuandyk/saya/deconjugate"
	"github.com/SanzharKuandyk/saya/dictionary"
	"github.com/SanzharKuandyk/saya/frequency"
	"github.com/SanzharKuandyk/saya/jlpt"
	"github.com/SanzharKuandyk/saya/pitch"
	"github.com/SanzharKuandyk/saya/tokenize"
)

// Meta carries the optional enrichment attached to a result. Fields are
// empty/zero when the corresponding provider has no data for the term.
type Meta struct {
	Conjugation    string `json:"conjugation,omitempty"`
	BaseForm       string `json:"base_form,omitempty"`
	FrequencyStars int    `json:"frequency_stars,omitempty"`
	FrequencyLevel string `json:"frequency_level,omitempty"`
	Pitch          string `json:"pitch,omitempty"`
	JLPT           string `json:"jlpt,omitempty"`
}

// Result is one resolved dictionary hit for a span. It copies the entry's
// fields rather than referencing the store, so the caller owns it outright.
type Result struct {
	Term        string   `json:"term"`
	Readings    []string `json:"readings,omitempty"`
	Definitions []string `json:"definitions"`
	Meta        Meta     `json:"meta"`
}

// Processor composes the dictionary store, the deconjugator and the
// enrichment providers. Enrichment tables may be nil to disable them.
type Processor struct {
	store  *dictionary.Store
	freq   *frequency.Table
	accent *pitch.Accents
	levels *jlpt.Levels
}

// NewProcessor builds a processor over an immutable store snapshot.
func NewProcessor(store *dictionary.Store, freq *frequency.Table, accent *pitch.Accents, levels *jlpt.Levels) *Processor {
	return &Processor{store: store, freq: freq, accent: accent, levels: levels}
}

// Store returns the store snapshot this processor reads from.
func (p *Processor) Store() *dictionary.Store {
	return p.store
}

// WithStore returns a new processor reading from store, keeping the same
// enrichment providers. The receiver is unchanged.
func (p *Processor) WithStore(store *dictionary.Store) *Processor {
	return &Processor{store: store, freq: p.freq, accent: p.accent, levels: p.levels}
}

// Lookup resolves a single span. Direct dictionary hits come first; when
// there are none, deconjugation candidates that survive a second dictionary
// query are surfaced with their conjugation chain attached. Empty results
// are the normal outcome for most generated spans, never an error.
func (p *Processor) Lookup(span tokenize.Span) []Result {
	var results []Result
	for _, e := range p.store.LookupExact(span.Normalized) {
		results = append(results, fromEntry(e))
	}

	if len(results) == 0 {
		for _, cand := range deconjugate.Deconjugate(span.Normalized) {
			for _, e := range p.store.LookupExact(cand.BaseForm) {
				r := fromEntry(e)
				r.Meta.Conjugation = fmt.Sprintf("%s → %s (%s)", span.Normalized, cand.BaseForm, cand.ConjugationType)
				r.Meta.BaseForm = cand.BaseForm
				results = append(results, r)
			}
		}
	}

	for i := range results {
		p.enrich(&results[i])
	}
	return results
}

func fromEntry(e dictionary.Entry) Result {
	return Result{
		Term:        e.Headword(),
		Readings:    append([]string(nil), e.Readings...),
		Definitions: append([]string(nil), e.Glosses...),
	}
}

// enrich attaches frequency, pitch and proficiency metadata keyed by the
// result's display term, whenever the provider has data for it.
func (p *Processor) enrich(r *Result) {
	if p.freq != nil {
		if _, ok := p.freq.Rank(r.Term); ok {
			r.Meta.FrequencyStars = p.freq.Stars(r.Term)
			r.Meta.FrequencyLevel = p.freq.Level(r.Term).String()
		}
	}
	if p.accent != nil {
		if notation, ok := p.accent.Notation(r.Term); ok {
			r.Meta.Pitch = notation
		}
	}
	if p.levels != nil {
		if badge, ok := p.levels.Badge(r.Term); ok {
			r.Meta.JLPT = badge
		}
	}
}
