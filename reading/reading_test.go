package reading

import "testing"

func TestHiragana(t *testing.T) {
	cases := map[string]string{
		"タベル":  "たべる",
		"ガギグ":  "がぎぐ",
		"にほん":  "にほん",
		"日本ゴ":  "日本ご",
		"Abc":  "Abc",
		"":     "",
		"ッポン":  "っぽん",
	}
	for in, want := range cases {
		if got := Hiragana(in); got != want {
			t.Errorf("Hiragana(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContainsKanji(t *testing.T) {
	if !ContainsKanji("食べる") {
		t.Error("expected kanji in 食べる")
	}
	if ContainsKanji("たべる") {
		t.Error("unexpected kanji in たべる")
	}
	if ContainsKanji("Abc 123") {
		t.Error("unexpected kanji in latin text")
	}
}

func TestNewUnknownDictionary(t *testing.T) {
	if _, err := New("juman"); err == nil {
		t.Fatal("expected error for unknown dictionary name")
	}
}

func TestReading(t *testing.T) {
	a, err := New("ipa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := a.Reading("食べる")
	if got != "たべる" {
		t.Errorf("Reading(食べる) = %q, want たべる", got)
	}
	if a.Reading("") != "" {
		t.Error("expected empty reading for empty input")
	}
}

func TestFurigana(t *testing.T) {
	a, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	segs := a.Furigana("日本語を話す")
	if len(segs) == 0 {
		t.Fatal("expected segments")
	}
	var surface string
	for _, s := range segs {
		surface += s.Surface
		if !ContainsKanji(s.Surface) && s.Reading != "" {
			t.Errorf("kana segment %q should not carry a reading", s.Surface)
		}
	}
	if surface != "日本語を話す" {
		t.Errorf("segments do not reassemble input: %q", surface)
	}
}
