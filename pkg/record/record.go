package record

import "strings"

// Delimiter separates columns in both the input list and the generated report.
const Delimiter = "\t"

// CandidateSeparator separates variant spellings inside a single lookup word.
const CandidateSeparator = ","

// Pair is one example sentence and its translation, as returned by a provider.
type Pair struct {
	Example     string
	Translation string
}

// Record is one vocabulary entry read from the input list.
type Record struct {
	Word          string // lookup key; may hold comma-separated candidates until resolved
	Pronunciation string
	Fields        []string // normalized input columns, re-emitted verbatim
	Sentences     []Pair
	// Line is the 1-based line number in the source file, kept for diagnostics.
	Line int
}

// IsAmbiguous reports whether the lookup word still encodes several candidates.
func (r *Record) IsAmbiguous() bool {
	return strings.Contains(r.Word, CandidateSeparator)
}

// Candidates splits the lookup word into its trimmed variants, in input order.
func (r *Record) Candidates() []string {
	parts := strings.Split(strings.TrimSpace(r.Word), CandidateSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Row returns the record's fields joined with the column delimiter.
func (r *Record) Row() string {
	return strings.Join(r.Fields, Delimiter)
}
