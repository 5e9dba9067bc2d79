// Package report writes the tab-delimited, Anki-importable result file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/japaniel/sentencer/pkg/record"
)

// Placeholder fills the sentence and translation columns of words without examples.
const Placeholder = "?"

// TimestampLayout formats the suffix appended to generated file names.
const TimestampLayout = "20060102_150405"

// Kinds of generated files.
const (
	KindRaw    = "raw"
	KindOutput = "output"
)

// Render writes records to w in three sections, each ordered by descending
// sentence count: records still holding several sentences (row followed by one
// indented line per sentence and a blank line), records with exactly one sentence
// (row plus sentence and translation columns) and records without any (row plus
// two placeholder columns). records itself is left in its original order.
func Render(records []record.Record, w io.Writer) error {
	ordered := sortForReport(records)
	bw := bufio.NewWriter(w)

	for _, r := range ordered {
		if len(r.Sentences) <= 1 {
			continue
		}
		fmt.Fprintln(bw, r.Row())
		for _, s := range r.Sentences {
			fmt.Fprintf(bw, "%s%s%s%s\n", record.Delimiter, s.Example, record.Delimiter, s.Translation)
		}
		fmt.Fprintln(bw)
	}

	for _, r := range ordered {
		if len(r.Sentences) != 1 {
			continue
		}
		fmt.Fprintln(bw, row(r.Fields, r.Sentences[0].Example, r.Sentences[0].Translation))
	}

	for _, r := range ordered {
		if len(r.Sentences) != 0 {
			continue
		}
		fmt.Fprintln(bw, row(r.Fields, Placeholder, Placeholder))
	}

	return bw.Flush()
}

// WriteFile renders records into a new file at path.
func WriteFile(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(records, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// OutputPath derives a report path next to the input file, e.g.
// "words.txt" -> "words_output_20240102_150405.txt".
func OutputPath(inputPath, kind string, now time.Time) (string, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(abs)
	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	name := fmt.Sprintf("%s_%s_%s.txt", base, kind, now.Format(TimestampLayout))
	return filepath.Join(dir, name), nil
}

// sortForReport puts the records with the most sentences first, keeping input
// order among equals.
func sortForReport(records []record.Record) []record.Record {
	ordered := make([]record.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Sentences) > len(ordered[j].Sentences)
	})
	return ordered
}

func row(fields []string, extra ...string) string {
	cols := make([]string, 0, len(fields)+len(extra))
	cols = append(cols, fields...)
	cols = append(cols, extra...)
	return strings.Join(cols, record.Delimiter)
}
