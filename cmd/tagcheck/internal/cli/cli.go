// Package cli turns the tagcheck command line into a Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/TroutSoftware/tagbalance"
)

// Exit codes of the tagcheck command.
const (
	ExitBalanced   = 0
	ExitUnbalanced = 1
	ExitFailure    = 2
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

type Config struct {
	Path      string
	Syntax    tagbalance.Syntax
	LogLevel  slog.Level
	LogFormat string
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Parse reads the arguments (without the program name).
// shouldExit is true when help was requested, and usage was written to output.
func Parse(args []string, output io.Writer) (cfg *Config, shouldExit bool, err error) {
	fs := flag.NewFlagSet("tagcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `tagcheck - check that JSX or HTML tags are balanced.

Usage:
  tagcheck [options] FILE

Exits with 0 when tags are balanced, 1 when they are not, 2 on any other failure.

Options:
`)
		fs.PrintDefaults()
	}

	syntax := fs.String("syntax", "auto", "Document syntax: 'auto' (from the file extension), 'jsx' or 'html'.")
	logLevel := fs.String("log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	switch fs.NArg() {
	case 0:
		fs.Usage()
		return nil, false, &ExitError{Code: ExitFailure, Message: "no file given"}
	case 1:
	default:
		return nil, false, &ExitError{Code: ExitFailure, Message: "only one file can be checked at a time"}
	}

	cfg = &Config{Path: fs.Arg(0)}

	if *syntax == "auto" {
		cfg.Syntax = tagbalance.SyntaxFor(cfg.Path)
	} else if cfg.Syntax, err = tagbalance.ParseSyntax(*syntax); err != nil {
		return nil, false, &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, false, &ExitError{Code: ExitFailure, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	cfg.LogFormat = strings.ToLower(*logFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: ExitFailure, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	return cfg, false, nil
}
