package selection

import (
	"context"
	"fmt"
	"io"

	"github.com/japaniel/sentencer/pkg/provider"
	"github.com/japaniel/sentencer/pkg/record"
)

// Selector attaches ranked example sentences to every record.
type Selector struct {
	Provider     provider.SentenceProvider
	Chooser      Chooser
	Out          io.Writer
	MaxSentences int
}

// SelectAll resets the sentences of every record, resolves all ambiguous words,
// looks up the records still without sentences and finally ranks and truncates
// each record's list. Each stage completes for all records before the next starts.
// An empty lookup result is final; only provider errors abort.
func (s *Selector) SelectAll(ctx context.Context, records []record.Record) error {
	for i := range records {
		records[i].Sentences = nil
	}

	if err := s.resolveAmbiguous(ctx, records); err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		if len(r.Sentences) > 0 {
			continue
		}
		fmt.Fprintf(s.Out, "Looking up %q ... ", r.Word)
		pairs, err := s.Provider.Sentences(ctx, r.Word)
		if err != nil {
			fmt.Fprintln(s.Out, "failed")
			return fmt.Errorf("look up %q: %w", r.Word, err)
		}
		fmt.Fprintf(s.Out, "%d sentences\n", len(pairs))
		r.Sentences = pairs
	}

	for i := range records {
		records[i].Sentences = Rank(records[i].Sentences, s.MaxSentences)
	}
	return nil
}

func (s *Selector) resolveAmbiguous(ctx context.Context, records []record.Record) error {
	var pending []int
	for i := range records {
		if records[i].IsAmbiguous() {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	fmt.Fprintln(s.Out, "Some words in the input list need to be further specified (comma-separated).")
	fmt.Fprintln(s.Out, "For each question below, specify the number that should be used for lookup.")
	resolver := &Resolver{Provider: s.Provider, Chooser: s.Chooser, Out: s.Out}
	for _, i := range pending {
		if err := resolver.Resolve(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}
