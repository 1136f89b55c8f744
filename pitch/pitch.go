// Package pitch maps words to pitch-accent drop positions and renders a
// short notation for display.
package pitch

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PatternType classifies where the pitch drops within a word.
type PatternType int

const (
	Heiban    PatternType = iota // 平板型: no drop
	Atamadaka                    // 頭高型: drop after the first mora
	Nakadaka                     // 中高型: drop mid-word
	Odaka                        // 尾高型: drop at the end
)

func (p PatternType) String() string {
	switch p {
	case Heiban:
		return "Heiban (Flat)"
	case Atamadaka:
		return "Atamadaka (Head-high)"
	case Nakadaka:
		return "Nakadaka (Mid-high)"
	case Odaka:
		return "Odaka (Tail-high)"
	default:
		return "Unknown"
	}
}

// Pattern is a word's accent: the drop position and its classification.
type Pattern struct {
	DropPosition int         `json:"drop_position"`
	Type         PatternType `json:"type"`
}

// FromDrop classifies a drop position. Positions >= 2 all map to Nakadaka;
// the data does not distinguish mid-high from tail-high, so Odaka is never
// produced here.
func FromDrop(drop int) Pattern {
	t := Nakadaka
	switch drop {
	case 0:
		t = Heiban
	case 1:
		t = Atamadaka
	}
	return Pattern{DropPosition: drop, Type: t}
}

// Notation renders the short accent mark used in the overlay.
func (p Pattern) Notation() string {
	switch p.Type {
	case Heiban:
		return "◎"
	case Atamadaka:
		return "①"
	case Odaka:
		return "⓪"
	default:
		return fmt.Sprintf("⓪%d", p.DropPosition)
	}
}

// Accents is a read-only word → pattern table.
type Accents struct {
	accents map[string]Pattern
}

// New returns an empty table.
func New() *Accents {
	return &Accents{accents: make(map[string]Pattern)}
}

// WithDefaults returns a table seeded with a handful of common words.
func WithDefaults() *Accents {
	defaults := []struct {
		word string
		drop int
	}{
		{"日本", 0},
		{"東京", 0},
		{"学校", 0},
		{"先生", 3},
		{"学生", 0},
		{"時間", 0},
		{"本", 1},
		{"水", 0},
		{"山", 0},
		{"川", 0},
	}
	a := New()
	for _, d := range defaults {
		a.accents[d.word] = FromDrop(d.drop)
	}
	return a
}

// LoadFile reads a word<TAB>drop table. Malformed lines are skipped.
func LoadFile(path string) (*Accents, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pitch table: %w", err)
	}
	defer f.Close()

	a := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 2 {
			continue
		}
		drop, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || drop < 0 {
			continue
		}
		a.accents[parts[0]] = FromDrop(drop)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pitch table: %w", err)
	}
	return a, nil
}

// Get returns the accent pattern for a word.
func (a *Accents) Get(word string) (Pattern, bool) {
	p, ok := a.accents[word]
	return p, ok
}

// Notation returns the rendered accent mark for a word.
func (a *Accents) Notation(word string) (string, bool) {
	p, ok := a.accents[word]
	if !ok {
		return "", false
	}
	return p.Notation(), true
}

// Len returns the number of words in the table.
func (a *Accents) Len() int {
	return len(a.accents)
}
