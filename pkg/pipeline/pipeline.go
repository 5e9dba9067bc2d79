// Package pipeline runs a vocabulary list through lookup, curation and reporting.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/japaniel/sentencer/pkg/provider"
	"github.com/japaniel/sentencer/pkg/record"
	"github.com/japaniel/sentencer/pkg/report"
	"github.com/japaniel/sentencer/pkg/selection"
)

// Console is the interactive side of a run.
type Console interface {
	selection.Chooser
	Confirm(question string) (bool, error)
}

// Outcome tells how a run ended.
type Outcome int

const (
	// Completed means the final report was produced.
	Completed Outcome = iota
	// Declined means the user chose not to curate; no final report was produced.
	Declined
)

// Result describes a finished run.
type Result struct {
	Outcome Outcome
	// RawPath and OutputPath are empty when nothing was written to that file.
	RawPath    string
	OutputPath string
}

// Pipeline holds the collaborators and output settings of a run.
type Pipeline struct {
	Provider provider.SentenceProvider
	Console  Console
	// Out receives progress lines, prompts and console reports.
	Out    io.Writer
	Logger *slog.Logger
	// Readings is optional and only used for curation headers.
	Readings selection.Readings

	MaxSentences int
	// InputPath names the list the report files are derived from.
	InputPath string
	// ConsoleOnly prints reports to Out instead of writing files.
	ConsoleOnly bool
	// Raw additionally dumps the uncurated report.
	Raw bool

	// Now is used for report file names; nil means time.Now.
	Now func() time.Time
}

// Run looks up sentences for records, optionally dumps the raw report, lets the
// user curate records with several sentences and writes the final report.
// records is modified in place.
func (p *Pipeline) Run(ctx context.Context, records []record.Record) (Result, error) {
	var res Result
	stamp := p.now()

	start := time.Now()
	selector := &selection.Selector{
		Provider:     p.Provider,
		Chooser:      p.Console,
		Out:          p.Out,
		MaxSentences: p.MaxSentences,
	}
	if err := selector.SelectAll(ctx, records); err != nil {
		return res, err
	}
	p.Logger.InfoContext(ctx, "lookup finished",
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)),
	)

	if ShouldDumpRaw(p.Raw, records) {
		if p.ConsoleOnly {
			fmt.Fprintln(p.Out, "\nRaw results:")
			if err := report.Render(records, p.Out); err != nil {
				return res, err
			}
		} else {
			path, err := report.OutputPath(p.InputPath, report.KindRaw, stamp)
			if err != nil {
				return res, err
			}
			fmt.Fprintf(p.Out, "Outputting raw data to %s\n", path)
			if err := report.WriteFile(path, records); err != nil {
				return res, err
			}
			p.Logger.InfoContext(ctx, "raw report written", slog.String("path", path))
			res.RawPath = path
		}
	}

	if NeedsConfirmation(records) {
		fmt.Fprintln(p.Out, "\nUser intervention required to select best sentences.")
		ok, err := p.Console.Confirm("Continue? (y/n, default is y): ")
		if err != nil {
			return res, err
		}
		if !ok {
			fmt.Fprintln(p.Out, "Quitting.")
			res.Outcome = Declined
			return res, nil
		}
		fmt.Fprintln(p.Out)

		curator := &selection.Curator{Chooser: p.Console, Out: p.Out, Readings: p.Readings}
		if err := curator.Curate(records); err != nil {
			return res, err
		}
	}

	if p.ConsoleOnly {
		fmt.Fprintln(p.Out, "\nProcessed data:")
		if err := report.Render(records, p.Out); err != nil {
			return res, err
		}
	} else {
		path, err := report.OutputPath(p.InputPath, report.KindOutput, stamp)
		if err != nil {
			return res, err
		}
		fmt.Fprintf(p.Out, "Generating %s\n", path)
		if err := report.WriteFile(path, records); err != nil {
			return res, err
		}
		p.Logger.InfoContext(ctx, "report written", slog.String("path", path))
		res.OutputPath = path
	}

	res.Outcome = Completed
	return res, nil
}

// ShouldDumpRaw reports whether the raw report is produced. It only differs from
// the final report when some record still has several sentences.
func ShouldDumpRaw(raw bool, records []record.Record) bool {
	return raw && selection.AnyNeedsCuration(records)
}

// NeedsConfirmation reports whether the user must be asked before curation starts.
func NeedsConfirmation(records []record.Record) bool {
	return selection.AnyNeedsCuration(records)
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
