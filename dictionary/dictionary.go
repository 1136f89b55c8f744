// Package dictionary loads JMdict-shaped vocabulary data and answers exact
// headword/reading lookups over read-only indices.
//
// A Store is immutable once built: Load and Merge always hand out a fully
// built new instance, so a store may be shared across goroutines without
// locking, and a reload can be published by swapping the pointer while old
// readers keep their snapshot.
package dictionary

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"
)

// Entry is a single dictionary record. The first kanji spelling is the
// canonical headword; kana-only words have no kanji spellings at all.
type Entry struct {
	ID            string   `json:"id"`
	Kanji         []string `json:"kanji,omitempty"`
	Readings      []string `json:"readings,omitempty"`
	Glosses       []string `json:"glosses"`
	POS           []string `json:"pos,omitempty"`
	FrequencyRank int      `json:"frequency_rank,omitempty"`
	IsCommon      bool     `json:"is_common,omitempty"`
}

// Headword returns the display form: first kanji spelling, else first reading.
func (e Entry) Headword() string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0]
	}
	if len(e.Readings) > 0 {
		return e.Readings[0]
	}
	return ""
}

// Store holds entries plus exact-match indices keyed by kanji spelling and by
// reading. Index positions are stable for the lifetime of the instance.
type Store struct {
	entries   []Entry
	byKanji   map[string][]int
	byReading map[string][]int
	byID      map[string]int
}

// New returns an empty store. Callers fall back to this when a load fails so
// the rest of the application keeps running with zero lookup results.
func New() *Store {
	return FromEntries(nil)
}

// FromEntries builds a store and its indices from already-parsed entries.
func FromEntries(entries []Entry) *Store {
	s := &Store{
		entries:   make([]Entry, len(entries)),
		byKanji:   make(map[string][]int),
		byReading: make(map[string][]int),
		byID:      make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)
	for i, e := range s.entries {
		for _, k := range e.Kanji {
			s.byKanji[k] = append(s.byKanji[k], i)
		}
		for _, r := range e.Readings {
			s.byReading[r] = append(s.byReading[r], i)
		}
		s.byID[e.ID] = i
	}
	return s
}

// Load parses a JMdict XML dataset. Only English-tagged glosses are kept;
// entries left with no gloss are dropped since they cannot produce a useful
// result. The load is all-or-nothing: on a parse error no store is returned.
func Load(r io.Reader) (*Store, error) {
	dict, _, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, fmt.Errorf("parse jmdict: %w", err)
	}

	entries := make([]Entry, 0, len(dict.Entries))
	for _, jm := range dict.Entries {
		e := convertEntry(jm)
		if len(e.Glosses) == 0 {
			continue
		}
		entries = append(entries, e)
	}
	return FromEntries(entries), nil
}

// LoadFile opens and parses a JMdict XML file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LookupExact returns the union of kanji-index and reading-index hits for
// term, deduplicated by entry identity. Entries are returned by value; the
// caller owns the copies.
func (s *Store) LookupExact(term string) []Entry {
	positions := s.byKanji[term]
	if more := s.byReading[term]; len(more) > 0 {
		positions = append(append([]int(nil), positions...), more...)
	}
	if len(positions) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(positions))
	out := make([]Entry, 0, len(positions))
	for _, pos := range positions {
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, s.entries[pos])
	}
	return out
}

// GetByID returns the entry with the given identifier.
func (s *Store) GetByID(id string) (Entry, bool) {
	pos, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[pos], true
}

// Merge layers other on top of s: entries from other override entries in s
// sharing an identifier, and indices are rebuilt over the surviving set.
// Neither input is mutated, so previously handed-out stores stay valid.
func (s *Store) Merge(other *Store) *Store {
	merged := make([]Entry, len(s.entries))
	copy(merged, s.entries)

	position := make(map[string]int, len(merged))
	for i, e := range merged {
		position[e.ID] = i
	}
	for _, e := range other.entries {
		if pos, ok := position[e.ID]; ok {
			merged[pos] = e
		} else {
			position[e.ID] = len(merged)
			merged = append(merged, e)
		}
	}
	return FromEntries(merged)
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Terms returns every indexed key (kanji spellings and readings), useful for
// compiling a full-text scanner over the vocabulary.
func (s *Store) Terms() []string {
	out := make([]string, 0, len(s.byKanji)+len(s.byReading))
	for k := range s.byKanji {
		out = append(out, k)
	}
	for r := range s.byReading {
		if _, dup := s.byKanji[r]; dup {
			continue
		}
		out = append(out, r)
	}
	return out
}

func convertEntry(jm jmdict.JmdictEntry) Entry {
	e := Entry{ID: strconv.Itoa(jm.Sequence)}

	for _, k := range jm.Kanji {
		e.Kanji = append(e.Kanji, k.Expression)
		e.applyPriorities(k.Priorities)
	}
	for _, r := range jm.Readings {
		e.Readings = append(e.Readings, r.Reading)
		e.applyPriorities(r.Priorities)
	}
	for _, sense := range jm.Sense {
		kept := false
		for _, g := range sense.Glossary {
			if g.Language != nil && *g.Language != "eng" {
				continue
			}
			e.Glosses = append(e.Glosses, g.Content)
			kept = true
		}
		// POS tags only from senses that contributed a gloss
		if kept {
			e.POS = append(e.POS, sense.PartsOfSpeech...)
		}
	}
	return e
}

// applyPriorities derives the common-word flag and an approximate frequency
// rank from JMdict priority tags. An nfXX tag places the word in the XX-th
// band of 500 words of a frequency corpus.
func (e *Entry) applyPriorities(priorities []string) {
	for _, p := range priorities {
		switch p {
		case "news1", "ichi1", "spec1", "gai1":
			e.IsCommon = true
		}
		if strings.HasPrefix(p, "nf") {
			if band, err := strconv.Atoi(p[2:]); err == nil {
				rank := band * 500
				if e.FrequencyRank == 0 || rank < e.FrequencyRank {
					e.FrequencyRank = rank
				}
			}
		}
	}
}
