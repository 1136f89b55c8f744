package scan

import (
	"testing"

	"github.com/SanzharKuandyk/saya/dictionary"
)

func testStore(t *testing.T) *dictionary.Store {
	t.Helper()
	return dictionary.FromEntries([]dictionary.Entry{
		{ID: "1", Kanji: []string{"日本"}, Readings: []string{"にほん"}, Glosses: []string{"Japan"}},
		{ID: "2", Kanji: []string{"日本語"}, Readings: []string{"にほんご"}, Glosses: []string{"Japanese language"}},
		{ID: "3", Kanji: []string{"本"}, Readings: []string{"ほん"}, Glosses: []string{"book"}},
	})
}

func TestNewScannerEmptyStore(t *testing.T) {
	if _, err := NewScanner(dictionary.New()); err == nil {
		t.Fatal("expected error for empty dictionary")
	}
}

func TestScanFindsOverlappingTerms(t *testing.T) {
	s, err := NewScanner(testStore(t))
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	matches := s.Scan("日本語を勉強する")
	found := map[string]bool{}
	for _, m := range matches {
		found[m.Term] = true
	}
	for _, want := range []string{"日本語", "日本", "本"} {
		if !found[want] {
			t.Errorf("expected %q among matches, got %v", want, matches)
		}
	}
}

func TestScanOffsets(t *testing.T) {
	s, err := NewScanner(testStore(t))
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	text := "これは本です"
	matches := s.Scan(text)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	for _, m := range matches {
		if text[m.Start:m.End] != m.Term {
			t.Errorf("offsets [%d:%d] yield %q, want %q", m.Start, m.End, text[m.Start:m.End], m.Term)
		}
	}
}

func TestScanMatchesReadings(t *testing.T) {
	s, err := NewScanner(testStore(t))
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	matches := s.Scan("にほんごがすき")
	var hit bool
	for _, m := range matches {
		if m.Term == "にほんご" {
			hit = true
		}
	}
	if !hit {
		t.Errorf("expected reading にほんご among matches, got %v", matches)
	}
}

func TestScanEmptyText(t *testing.T) {
	s, err := NewScanner(testStore(t))
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if got := s.Scan(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}
