package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords is returned when the input holds no non-blank lines.
var ErrNoRecords = errors.New("input contains no records")

// FieldCountError reports records whose column count differs from the first record.
// Anki rejects imports with uneven field counts, so the whole run stops on it.
type FieldCountError struct {
	Expected   int
	Exceptions []Record
}

func (e *FieldCountError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bad list, expected field count = (%d), exceptions below:", e.Expected)
	for _, r := range e.Exceptions {
		fmt.Fprintf(&b, "\n  %d fields: %s", len(r.Fields), r.Row())
	}
	return b.String()
}
