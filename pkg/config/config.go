// Package config collects command-line options and environment settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jessevdk/go-flags"
)

// ErrHelp is returned after the usage text was printed on request.
var ErrHelp = errors.New("help requested")

// ErrMissingInput is returned when no input file path was given.
var ErrMissingInput = errors.New("missing input file path")

// Options are the command-line options.
type Options struct {
	PronunciationOffset int `short:"p" long:"pronunciation" value-name:"N" default:"1" description:"Offset to pronunciation column"`
	// DefinitionOffset is accepted for compatibility with existing scripts; no step reads it.
	DefinitionOffset int    `short:"d" long:"definition" value-name:"N" default:"2" description:"Offset to definition column"`
	Count            int    `short:"n" long:"count" value-name:"N" default:"5" description:"Number of example sentences"`
	TestData         string `short:"t" long:"testdata" value-name:"DATAFILE" description:"Path to yaml data file of examples (useful for testing)"`
	Console          bool   `short:"c" long:"console" description:"Dump to console only"`
	Raw              bool   `short:"r" long:"raw" description:"Output raw data (all examples)"`

	Args struct {
		Input string `positional-arg-name:"input filepath"`
	} `positional-args:"yes"`
}

// Env holds settings taken from the environment.
type Env struct {
	WWWJDICURL  string        `env:"SENTENCER_WWWJDIC_URL"  env-default:"https://www.edrdg.org/cgi-bin/wwwjdic/wwwjdic?1ZEU" env-description:"WWWJDIC example search URL prefix"`
	HTTPTimeout time.Duration `env:"SENTENCER_HTTP_TIMEOUT" env-default:"30s"  env-description:"Timeout for a single lookup"`
	LogLevel    string        `env:"SENTENCER_LOG_LEVEL"    env-default:"warn" env-description:"debug, info, warn or error"`
	LogFormat   string        `env:"SENTENCER_LOG_FORMAT"   env-default:"text" env-description:"text or json"`
}

// Config is the complete configuration of one run.
type Config struct {
	Options
	Env
}

// Load parses args (without the program name) and reads the environment.
// Usage text for -h and the list of environment variables are written to out.
func Load(args []string, out io.Writer) (*Config, error) {
	var cfg Config

	parser := flags.NewParser(&cfg.Options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "<input filepath> [options]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(out, fe.Message)
			if help, herr := cleanenv.GetDescription(&cfg.Env, nil); herr == nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, help)
			}
			return nil, ErrHelp
		}
		return nil, err
	}
	if cfg.Args.Input == "" {
		return nil, ErrMissingInput
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("expected a single input file path, got extra arguments %q", rest)
	}

	if err := cleanenv.ReadEnv(&cfg.Env); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.PronunciationOffset < 0 {
		return fmt.Errorf("pronunciation offset must not be negative, got %d", c.PronunciationOffset)
	}
	if c.DefinitionOffset < 0 {
		return fmt.Errorf("definition offset must not be negative, got %d", c.DefinitionOffset)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}
