// Command sentencer looks up example sentences for a vocabulary list and writes
// a tab-delimited file ready for Anki import.
//
// Usage:
//
//	sentencer <input filepath> [options]
//
// Offline run against a fixture:
//
//	sentencer words.txt --testdata examples.yml -c -n 2
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/japaniel/sentencer/pkg/config"
	"github.com/japaniel/sentencer/pkg/pipeline"
	"github.com/japaniel/sentencer/pkg/prompt"
	"github.com/japaniel/sentencer/pkg/provider"
	"github.com/japaniel/sentencer/pkg/reading"
	"github.com/japaniel/sentencer/pkg/record"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stdout)
	switch {
	case errors.Is(err, config.ErrHelp):
		return 0
	case errors.Is(err, config.ErrMissingInput):
		fmt.Fprintln(stdout, "Missing input file path.")
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := config.NewLogger(cfg.Env, stderr)

	input := cfg.Args.Input
	if _, err := os.Stat(input); err != nil {
		fmt.Fprintln(stdout, "Invalid/missing file name")
		logger.Debug("stat input", "path", input, "error", err)
		return 1
	}

	var source provider.SentenceProvider
	if cfg.TestData != "" {
		fx, err := provider.LoadFixture(cfg.TestData)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load test data: %v\n", err)
			return 1
		}
		source = fx
	} else {
		source = provider.NewWWWJDIC(cfg.WWWJDICURL, cfg.HTTPTimeout, logger)
	}

	records, err := record.Parse(input, 0, cfg.PronunciationOffset)
	if err != nil {
		var fce *record.FieldCountError
		if errors.As(err, &fce) {
			fmt.Fprintln(stdout, fce.Error())
		} else {
			fmt.Fprintf(stdout, "Failed to read %s: %v\n", input, err)
		}
		return 1
	}

	p := &pipeline.Pipeline{
		Provider:     provider.NewMemo(source),
		Console:      prompt.New(stdin, stdout),
		Out:          stdout,
		Logger:       logger,
		Readings:     &reading.Lazy{Logger: logger},
		MaxSentences: cfg.Count,
		InputPath:    input,
		ConsoleOnly:  cfg.Console,
		Raw:          cfg.Raw,
	}
	if _, err := p.Run(ctx, records); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
