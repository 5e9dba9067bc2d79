// Package reading derives kana readings for vocabulary words.
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Kagome IPA feature index of the katakana reading.
const readingFeature = 7

// Analyzer wraps a kagome tokenizer loaded with the IPA dictionary.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer loads the tokenizer. Loading the dictionary takes a moment, so
// callers should create one Analyzer per run.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Reading returns the hiragana reading of word. Tokens the dictionary does not
// know (latin text, unknown kanji compounds) contribute their surface form.
func (a *Analyzer) Reading(word string) string {
	var b strings.Builder
	for _, token := range a.t.Tokenize(word) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			b.WriteString(features[readingFeature])
		} else {
			b.WriteString(token.Surface)
		}
	}
	return ToHiragana(strings.TrimSpace(b.String()))
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
