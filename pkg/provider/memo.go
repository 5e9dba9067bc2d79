package provider

import (
	"context"

	"github.com/japaniel/sentencer/pkg/record"
)

// Memo caches results of the wrapped provider for the lifetime of a run, so a
// candidate shared by several records is only fetched once. Errors are not cached.
// Memo is not safe for concurrent use.
type Memo struct {
	next  SentenceProvider
	cache map[string][]record.Pair
}

// NewMemo wraps next.
func NewMemo(next SentenceProvider) *Memo {
	return &Memo{
		next:  next,
		cache: make(map[string][]record.Pair),
	}
}

func (m *Memo) Sentences(ctx context.Context, word string) ([]record.Pair, error) {
	if cached, ok := m.cache[word]; ok {
		return clonePairs(cached), nil
	}

	pairs, err := m.next.Sentences(ctx, word)
	if err != nil {
		return nil, err
	}

	m.cache[word] = clonePairs(pairs)
	return pairs, nil
}

func clonePairs(pairs []record.Pair) []record.Pair {
	out := make([]record.Pair, len(pairs))
	copy(out, pairs)
	return out
}
