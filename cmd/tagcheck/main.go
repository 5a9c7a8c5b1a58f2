// Command tagcheck reports whether the tags of a JSX or HTML file are balanced.
//
//	tagcheck app/incidenthistory.tsx
//
// The status line is written to standard output; see [tagbalance.Report] for its format.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TroutSoftware/tagbalance"
	"github.com/TroutSoftware/tagbalance/cmd/tagcheck/internal/cli"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run checks the file named in args, and writes the status line to out.
// Unbalanced documents return an ExitError with an empty message, the status line being the report.
func run(out, logw io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil || shouldExit {
		return err
	}

	logger := cfg.Logger(logw)
	ck := tagbalance.Checker{Syntax: cfg.Syntax, Logger: logger}

	err = ck.CheckFile(cfg.Path)
	line, ok := tagbalance.Report(err)
	if !ok {
		return err
	}
	fmt.Fprintln(out, line)

	if err != nil {
		logger.Info("unbalanced document", "path", cfg.Path, "syntax", cfg.Syntax)
		return &cli.ExitError{Code: cli.ExitUnbalanced}
	}
	return nil
}
