// Package selection resolves ambiguous lookup words, attaches ranked example
// sentences to records and lets the user keep the best one.
package selection

import (
	"sort"
	"unicode/utf8"

	"github.com/japaniel/sentencer/pkg/record"
)

// Chooser asks the user for a 1-based number in [min, max].
type Chooser interface {
	SelectNumber(question string, min, max int) (int, error)
}

// AutoSelect returns the 1-based index of the only candidate with results.
// It reports false when no candidate, or more than one, has results.
func AutoSelect(counts []int) (int, bool) {
	selected := 0
	for i, n := range counts {
		if n == 0 {
			continue
		}
		if selected != 0 {
			return 0, false
		}
		selected = i + 1
	}
	return selected, selected != 0
}

// Rank orders pairs by ascending translation length in characters, keeping
// provider order on ties, and keeps at most max of them. The input is not modified.
func Rank(pairs []record.Pair, max int) []record.Pair {
	ranked := make([]record.Pair, len(pairs))
	copy(ranked, pairs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return utf8.RuneCountInString(ranked[i].Translation) < utf8.RuneCountInString(ranked[j].Translation)
	})
	if max >= 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// NeedsCuration reports whether the user still has to pick one of several sentences.
func NeedsCuration(r *record.Record) bool {
	return len(r.Sentences) > 1
}

// CurationQueue returns the indexes of records needing curation, in input order.
func CurationQueue(records []record.Record) []int {
	var queue []int
	for i := range records {
		if NeedsCuration(&records[i]) {
			queue = append(queue, i)
		}
	}
	return queue
}

// AnyNeedsCuration reports whether at least one record has several sentences left.
func AnyNeedsCuration(records []record.Record) bool {
	return len(CurationQueue(records)) > 0
}
