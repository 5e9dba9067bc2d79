package selection

import (
	"fmt"
	"io"

	"github.com/japaniel/sentencer/pkg/record"
)

// Readings looks up a kana reading for a word that came without one.
type Readings interface {
	Reading(word string) string
}

// Curator asks the user to keep a single sentence for every record that has several.
type Curator struct {
	Chooser Chooser
	Out     io.Writer
	// Readings is optional; it fills the header when a record has no pronunciation.
	Readings Readings
}

// Curate walks the records with more than one sentence in input order and
// collapses each to the pair the user picks.
func (c *Curator) Curate(records []record.Record) error {
	fmt.Fprintln(c.Out, "For each word with multiple examples below, choose the best selection:")

	queue := CurationQueue(records)
	for k, i := range queue {
		r := &records[i]
		fmt.Fprintf(c.Out, "%d of %d: %s (%s)\n", k+1, len(queue), r.Word, c.pronunciation(r))
		for j, s := range r.Sentences {
			fmt.Fprintf(c.Out, "%d.\t%s\n", j+1, s.Example)
			fmt.Fprintf(c.Out, "\t%s\n", s.Translation)
		}
		n, err := c.Chooser.SelectNumber("Best sentence: ", 1, len(r.Sentences))
		if err != nil {
			return fmt.Errorf("curate %q: %w", r.Word, err)
		}
		r.Sentences = []record.Pair{r.Sentences[n-1]}
	}

	fmt.Fprintln(c.Out, "\nDone.")
	return nil
}

func (c *Curator) pronunciation(r *record.Record) string {
	if r.Pronunciation != "" || c.Readings == nil {
		return r.Pronunciation
	}
	return c.Readings.Reading(r.Word)
}
