package pitch

import (
	"os"
	"testing"
)

func TestFromDrop(t *testing.T) {
	cases := []struct {
		drop     int
		wantType PatternType
		notation string
	}{
		{0, Heiban, "◎"},
		{1, Atamadaka, "①"},
		{2, Nakadaka, "⓪2"},
		{3, Nakadaka, "⓪3"},
	}
	for _, c := range cases {
		p := FromDrop(c.drop)
		if p.Type != c.wantType {
			t.Errorf("FromDrop(%d).Type = %v, want %v", c.drop, p.Type, c.wantType)
		}
		if got := p.Notation(); got != c.notation {
			t.Errorf("FromDrop(%d).Notation() = %q, want %q", c.drop, got, c.notation)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	a := WithDefaults()
	p, ok := a.Get("本")
	if !ok || p.Type != Atamadaka {
		t.Errorf("Get(本) = %+v, %v; want Atamadaka", p, ok)
	}
	if n, ok := a.Notation("日本"); !ok || n != "◎" {
		t.Errorf("Notation(日本) = %q, %v; want ◎, true", n, ok)
	}
	if _, ok := a.Get("missing"); ok {
		t.Error("Get(missing) unexpectedly found")
	}
}

func TestLoadFileSkipsMalformedLines(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "pitch*.tsv")
	if err != nil {
		t.Fatal(err)
	}
	content := "先生\t3\nmalformed\n水\tx\n本\t1\n"
	if _, err := tmp.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}

	a, err := LoadFile(tmp.Name())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	if p, ok := a.Get("先生"); !ok || p.DropPosition != 3 || p.Type != Nakadaka {
		t.Errorf("Get(先生) = %+v, %v", p, ok)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/pitch.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}
