package selection

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/japaniel/sentencer/pkg/provider"
	"github.com/japaniel/sentencer/pkg/record"
)

// Resolver picks one lookup word for records listing several comma-separated variants.
// Imiwa exports such variants and WWWJDIC cannot look them up together.
type Resolver struct {
	Provider provider.SentenceProvider
	Chooser  Chooser
	Out      io.Writer
}

// Resolve queries every candidate of r.Word, in order, and keeps the only one with
// results or asks the user to choose. The chosen candidate's sentences are stored on
// r so they need not be fetched again.
func (rs *Resolver) Resolve(ctx context.Context, r *record.Record) error {
	fmt.Fprintf(rs.Out, "Resolving %q ...\n", strings.TrimSpace(r.Word))

	candidates := r.Candidates()
	found := make([][]record.Pair, len(candidates))
	counts := make([]int, len(candidates))
	for i, c := range candidates {
		fmt.Fprintf(rs.Out, "%d. %s ... ", i+1, c)
		pairs, err := rs.Provider.Sentences(ctx, c)
		if err != nil {
			fmt.Fprintln(rs.Out, "failed")
			return fmt.Errorf("resolve %q: %w", c, err)
		}
		fmt.Fprintf(rs.Out, "%d sentences\n", len(pairs))
		found[i] = pairs
		counts[i] = len(pairs)
	}

	selected, ok := AutoSelect(counts)
	if !ok {
		n, err := rs.Chooser.SelectNumber("Enter selection: ", 1, len(candidates))
		if err != nil {
			return fmt.Errorf("resolve %q: %w", r.Word, err)
		}
		selected = n
	}

	r.Word = candidates[selected-1]
	r.Sentences = found[selected-1]
	fmt.Fprintf(rs.Out, "Selected: %s\n", r.Word)
	return nil
}
