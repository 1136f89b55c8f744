package jlpt

import (
	"os"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"N5", N5, true},
		{"n1", N1, true},
		{" N3 ", N3, true},
		{"N6", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(N5 < N4 && N4 < N3 && N3 < N2 && N2 < N1) {
		t.Error("levels must be ordered easiest to hardest")
	}
}

func TestBadges(t *testing.T) {
	if got := N5.Badge(); got != "🟢 N5" {
		t.Errorf("N5.Badge() = %q", got)
	}
	if got := N1.Description(); got != "N1 (Advanced)" {
		t.Errorf("N1.Description() = %q", got)
	}
}

func TestWithDefaults(t *testing.T) {
	l := WithDefaults()
	if level, ok := l.Get("食べる"); !ok || level != N5 {
		t.Errorf("Get(食べる) = %v, %v; want N5, true", level, ok)
	}
	if level, ok := l.Get("経験"); !ok || level != N3 {
		t.Errorf("Get(経験) = %v, %v; want N3, true", level, ok)
	}
	if badge, ok := l.Badge("考える"); !ok || badge != "🟡 N4" {
		t.Errorf("Badge(考える) = %q, %v", badge, ok)
	}
	if _, ok := l.Get("missing"); ok {
		t.Error("Get(missing) unexpectedly found")
	}
}

func TestLoadFileSkipsMalformedLines(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "jlpt*.tsv")
	if err != nil {
		t.Fatal(err)
	}
	content := "食べる\tN5\nbroken\n経験\tN9\n研究\tn3\n"
	if _, err := tmp.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}

	l, err := LoadFile(tmp.Name())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if level, ok := l.Get("研究"); !ok || level != N3 {
		t.Errorf("Get(研究) = %v, %v; want N3, true", level, ok)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/jlpt.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}
