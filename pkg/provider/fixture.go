package provider

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/sentencer/pkg/record"
)

// Fixture serves sentences from a YAML document shaped as
//
//	猫:
//	  - ["猫がいる", "There is a cat"]
//	  - ["猫", "Cat"]
//
// It lets the whole tool run offline.
type Fixture struct {
	data map[string][][]string
}

// LoadFixture reads a fixture file from path.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fx, err := ReadFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

// ReadFixture decodes a fixture document. An empty document is a valid, empty fixture.
func ReadFixture(r io.Reader) (*Fixture, error) {
	data := make(map[string][][]string)
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && err != io.EOF {
		return nil, err
	}
	for word, rows := range data {
		for i, row := range rows {
			if len(row) != 2 {
				return nil, fmt.Errorf("word %q entry %d: expected [example, translation], got %d values", word, i+1, len(row))
			}
		}
	}
	return &Fixture{data: data}, nil
}

// Sentences returns a copy of the fixture rows for word.
func (f *Fixture) Sentences(_ context.Context, word string) ([]record.Pair, error) {
	rows := f.data[word]
	pairs := make([]record.Pair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, record.Pair{Example: row[0], Translation: row[1]})
	}
	return pairs, nil
}
