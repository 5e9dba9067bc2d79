package record

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Imiwa exports prefix every line with the source dictionary and an entry id,
// and may end it with the list name.
var exportMarkers = map[string]bool{
	"jmdict":   true,
	"kanjidic": true,
}

const exportTrailer = "Favorites"

// Parse reads a tab-delimited vocabulary list from path.
// See ParseReader for the normalization rules.
func Parse(path string, wordIndex, pronunciationOffset int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ParseReader(f, wordIndex, pronunciationOffset)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// ParseReader builds one Record per non-blank line. Every field is trimmed, and the
// junk columns of the Imiwa export format are dropped. All records must end up
// with the same field count; otherwise a *FieldCountError listing every
// offending record is returned and no records are.
func ParseReader(r io.Reader, wordIndex, pronunciationOffset int) ([]Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := normalizeFields(splitFields(line))
		records = append(records, Record{
			Word:          fieldAt(fields, wordIndex),
			Pronunciation: fieldAt(fields, pronunciationOffset),
			Fields:        fields,
			Line:          i + 1,
		})
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if err := CheckFieldCounts(records); err != nil {
		return nil, err
	}
	return records, nil
}

// CheckFieldCounts compares every record against the first one.
func CheckFieldCounts(records []Record) error {
	if len(records) == 0 {
		return nil
	}
	expected := len(records[0].Fields)
	var exceptions []Record
	for _, r := range records {
		if len(r.Fields) != expected {
			exceptions = append(exceptions, r)
		}
	}
	if len(exceptions) > 0 {
		return &FieldCountError{Expected: expected, Exceptions: exceptions}
	}
	return nil
}

func splitFields(line string) []string {
	parts := strings.Split(line, Delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func normalizeFields(parts []string) []string {
	if len(parts) == 0 || !exportMarkers[strings.ToLower(parts[0])] {
		return parts
	}
	if len(parts) < 2 {
		return []string{}
	}
	parts = parts[2:]
	if n := len(parts); n > 0 && parts[n-1] == exportTrailer {
		parts = parts[:n-1]
	}
	return parts
}

func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
