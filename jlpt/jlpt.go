// Package jlpt maps words to JLPT proficiency levels (N5 easiest - N1
// hardest) and renders level badges for display.
package jlpt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Level is one of the five JLPT tiers.
type Level int

const (
	N5 Level = iota + 1 // beginner
	N4                  // elementary
	N3                  // intermediate
	N2                  // upper intermediate
	N1                  // advanced
)

// Parse reads a level string such as "N5" or "n2".
func Parse(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N5":
		return N5, true
	case "N4":
		return N4, true
	case "N3":
		return N3, true
	case "N2":
		return N2, true
	case "N1":
		return N1, true
	}
	return 0, false
}

func (l Level) String() string {
	switch l {
	case N5:
		return "N5"
	case N4:
		return "N4"
	case N3:
		return "N3"
	case N2:
		return "N2"
	case N1:
		return "N1"
	}
	return ""
}

// Description returns the level with its difficulty name.
func (l Level) Description() string {
	switch l {
	case N5:
		return "N5 (Beginner)"
	case N4:
		return "N4 (Elementary)"
	case N3:
		return "N3 (Intermediate)"
	case N2:
		return "N2 (Upper Intermediate)"
	case N1:
		return "N1 (Advanced)"
	}
	return ""
}

// Badge returns the colored badge string shown in the overlay.
func (l Level) Badge() string {
	switch l {
	case N5:
		return "🟢 N5"
	case N4:
		return "🟡 N4"
	case N3:
		return "🟠 N3"
	case N2:
		return "🔴 N2"
	case N1:
		return "🟣 N1"
	}
	return ""
}

// Levels is a read-only word → level table.
type Levels struct {
	levels map[string]Level
}

// New returns an empty table.
func New() *Levels {
	return &Levels{levels: make(map[string]Level)}
}

// WithDefaults returns a table seeded with common N5-N3 vocabulary.
func WithDefaults() *Levels {
	l := New()
	for _, w := range n5Words {
		l.levels[w] = N5
	}
	for _, w := range n4Words {
		l.levels[w] = N4
	}
	for _, w := range n3Words {
		l.levels[w] = N3
	}
	return l
}

// LoadFile reads a word<TAB>level table. Malformed lines are skipped.
func LoadFile(path string) (*Levels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jlpt table: %w", err)
	}
	defer f.Close()

	l := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 2 {
			continue
		}
		level, ok := Parse(parts[1])
		if !ok {
			continue
		}
		l.levels[parts[0]] = level
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jlpt table: %w", err)
	}
	return l, nil
}

// Get returns the level for a word.
func (l *Levels) Get(word string) (Level, bool) {
	level, ok := l.levels[word]
	return level, ok
}

// Badge returns the rendered badge for a word.
func (l *Levels) Badge(word string) (string, bool) {
	level, ok := l.levels[word]
	if !ok {
		return "", false
	}
	return level.Badge(), true
}

// Len returns the number of words in the table.
func (l *Levels) Len() int {
	return len(l.levels)
}

var n5Words = []string{
	"の", "に", "は", "を", "です", "ます", "でした", "ました",
	"日本", "人", "本", "先生", "学生", "学校", "時間", "今", "明日", "昨日",
	"食べる", "飲む", "見る", "聞く", "話す", "読む", "書く", "行く", "来る",
	"大きい", "小さい", "高い", "安い", "良い", "悪い", "新しい", "古い",
	"一", "二", "三", "四", "五", "六", "七", "八", "九", "十",
}

var n4Words = []string{
	"考える", "思う", "分かる", "知る", "教える", "習う", "始める", "終わる",
	"働く", "勉強", "仕事", "会社", "時計", "電話", "手紙", "映画",
	"強い", "弱い", "優しい", "厳しい", "美しい", "汚い", "便利", "不便",
}

var n3Words = []string{
	"経験", "研究", "発見", "意見", "説明", "計画", "準備", "確認",
	"複雑", "簡単", "正確", "曖昧", "適切", "不適切", "重要", "軽視",
}
