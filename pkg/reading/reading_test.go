package reading

import (
	"testing"
)

func TestReading(t *testing.T) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	tests := []struct {
		word, want string
	}{
		{"猫", "ねこ"},
		{"犬", "いぬ"},
		{"東京", "とうきょう"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := analyzer.Reading(tt.word); got != tt.want {
			t.Errorf("Reading(%q) = %q; want %q", tt.word, got, tt.want)
		}
	}
}

func TestToHiragana(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"ア", "あ"},
		{"イ", "い"},
		{"カ", "か"},
		{"ガ", "が"},
		{"パ", "ぱ"},
		{"ン", "ん"},
		{"ー", "ー"},
		{"abc", "abc"},
		{"あいう", "あいう"},
	}
	for _, tt := range tests {
		if got := ToHiragana(tt.in); got != tt.out {
			t.Errorf("ToHiragana(%q) = %q; want %q", tt.in, got, tt.out)
		}
	}
}

func TestLazyReading(t *testing.T) {
	var l Lazy
	if got := l.Reading("猫"); got != "ねこ" {
		t.Errorf("Reading(%q) = %q; want %q", "猫", got, "ねこ")
	}
	if l.analyzer == nil {
		t.Fatal("expected analyzer to be loaded after first use")
	}
}
