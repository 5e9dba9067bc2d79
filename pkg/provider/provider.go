// Package provider supplies example sentences for a lookup word.
package provider

import (
	"context"
	"errors"

	"github.com/japaniel/sentencer/pkg/record"
)

// ErrUnavailable wraps transport failures. A word with no examples is never an error.
var ErrUnavailable = errors.New("sentence provider unavailable")

// SentenceProvider returns the example pairs known for word, in provider order.
// An unknown word yields an empty slice and a nil error.
type SentenceProvider interface {
	Sentences(ctx context.Context, word string) ([]record.Pair, error)
}

// Func adapts a plain function to SentenceProvider.
type Func func(ctx context.Context, word string) ([]record.Pair, error)

func (f Func) Sentences(ctx context.Context, word string) ([]record.Pair, error) {
	return f(ctx, word)
}
