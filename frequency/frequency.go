// Package frequency maps words to corpus frequency ranks and derives coarse
// level buckets and a 0-5 star rating from fixed rank thresholds.
package frequency

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Level is a coarse frequency bucket.
type Level int

const (
	Unknown Level = iota
	VeryCommon
	Common
	Uncommon
	Rare
)

func (l Level) String() string {
	switch l {
	case VeryCommon:
		return "Very Common"
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	default:
		return "Unknown"
	}
}

// Table maps word → rank (lower is more common). Read-only after
// construction.
type Table struct {
	ranks map[string]int
}

// New returns an empty table; every word is Unknown with zero stars.
func New() *Table {
	return &Table{ranks: make(map[string]int)}
}

// WithDefaults returns a table seeded with the embedded top-100 list.
func WithDefaults() *Table {
	t := New()
	for i, word := range defaultRanking {
		t.ranks[word] = i + 1
	}
	return t
}

// LoadFile reads a word<TAB>rank table. Malformed lines are skipped;
// partial data is strictly better than none.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency table: %w", err)
	}
	defer f.Close()

	t := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 2 {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || rank <= 0 {
			continue
		}
		t.ranks[parts[0]] = rank
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frequency table: %w", err)
	}
	return t, nil
}

// Rank returns the frequency rank for a word.
func (t *Table) Rank(word string) (int, bool) {
	rank, ok := t.ranks[word]
	return rank, ok
}

// Level buckets the word's rank.
func (t *Table) Level(word string) Level {
	rank, ok := t.ranks[word]
	switch {
	case !ok:
		return Unknown
	case rank <= 1000:
		return VeryCommon
	case rank <= 5000:
		return Common
	case rank <= 10000:
		return Uncommon
	default:
		return Rare
	}
}

// Stars rates a word 0-5; 0 means the word is not in the table.
func (t *Table) Stars(word string) int {
	rank, ok := t.ranks[word]
	switch {
	case !ok:
		return 0
	case rank <= 500:
		return 5
	case rank <= 2000:
		return 4
	case rank <= 5000:
		return 3
	case rank <= 10000:
		return 2
	default:
		return 1
	}
}

// Len returns the number of ranked words.
func (t *Table) Len() int {
	return len(t.ranks)
}

// defaultRanking is the embedded top-100 word list; position is rank-1.
var defaultRanking = []string{
	"の", "に", "は", "を", "た",
	"が", "で", "て", "と", "し",
	"れ", "さ", "ある", "いる", "も",
	"する", "から", "な", "こ", "として",
	"い", "や", "れる", "など", "なっ",
	"ない", "この", "ため", "その", "あっ",
	"よう", "また", "もの", "という", "あり",
	"まで", "られ", "なる", "へ", "か",
	"だ", "これ", "によって", "により", "おり",
	"より", "による", "ず", "なり", "られる",
	"において", "ば", "なかっ", "なく", "しかし",
	"について", "せ", "だっ", "その後", "できる",
	"それ", "う", "ので", "なお", "のみ",
	"でき", "日本", "思う", "それぞれ", "とき",
	"ほか", "行う", "考える", "示す", "用いる",
	"言う", "大きい", "多い", "新しい", "良い",
	"高い", "長い", "強い", "少ない", "古い",
	"見る", "来る", "持つ", "使う", "出る",
	"取る", "分かる", "行く", "入る", "作る",
	"聞く", "話す", "読む", "書く", "食べる",
}
