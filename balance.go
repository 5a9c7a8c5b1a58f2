// Package tagbalance checks that the tags of a JSX or HTML document are properly nested.
//
// A document is turned into a sequence of [Token], then replayed against a stack of open tags by [Verify].
// The first closing tag that does not match stops the check.
package tagbalance

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Verify replays tokens against the open-tag stack.
// It returns nil when every opening tag is closed in order.
// The first closing tag that cannot be matched stops the scan, and the remaining tokens are not read:
// the error is then an [*UnexpectedClosingTagError] or a [*MismatchedClosingTagError].
// Tags still open once all tokens are consumed are returned as an [*UnclosedTagsError].
func Verify(tokens iter.Seq[Token]) error { return verify(tokens, nil) }

func verify(tokens iter.Seq[Token], logger *slog.Logger) error {
	var open stack
	for tk := range tokens {
		switch tk.Kind {
		case SelfClosing:
			continue
		case Opening:
			open.push(tk.Name, tk.Pos)
			if logger != nil {
				logger.Debug("push", "tag", tk.Name, "pos", tk.Pos, "depth", len(open))
			}
			continue
		}

		if len(open) == 0 {
			return &UnexpectedClosingTagError{Name: tk.Name, Pos: tk.Pos}
		}
		top := open.pop()
		if top.Name != tk.Name {
			return &MismatchedClosingTagError{Open: top, Name: tk.Name, Pos: tk.Pos}
		}
		if logger != nil {
			logger.Debug("pop", "tag", tk.Name, "pos", tk.Pos, "opened", top.Pos)
		}
	}

	if len(open) > 0 {
		return &UnclosedTagsError{Tags: open}
	}
	return nil
}

// Syntax selects how a document is turned into tag tokens.
type Syntax int

const (
	JSX  Syntax = iota // sanitize then match tags with a regular expression
	HTML               // HTML tokenizer, void elements are self-closing
)

func (s Syntax) String() string {
	switch s {
	case JSX:
		return "jsx"
	case HTML:
		return "html"
	}
	return fmt.Sprintf("Syntax(%d)", int(s))
}

// ParseSyntax is the inverse of [Syntax.String].
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(s) {
	case "jsx":
		return JSX, nil
	case "html":
		return HTML, nil
	}
	return 0, fmt.Errorf("unknown syntax %q: must be 'jsx' or 'html'", s)
}

// SyntaxFor guesses the syntax from the file extension.
// Anything that is not an HTML document is checked as JSX.
func SyntaxFor(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	}
	return JSX
}

// Checker verifies tag balance of whole documents.
// The zero value checks JSX and does not log.
// A Checker holds no state between calls, so checking the same text twice gives the same result.
type Checker struct {
	Syntax Syntax
	Logger *slog.Logger
}

// Check sanitizes (in JSX mode) and verifies text.
// See [Verify] for the returned errors.
func (c Checker) Check(text string) error {
	var readErr error
	err := verify(c.tokens(text, &readErr), c.Logger)
	if readErr != nil {
		return fmt.Errorf("tokenizing: %w", readErr)
	}
	return err
}

// CheckFile reads the whole file at path, and checks it.
// Errors opening or reading the file are returned wrapped, and do not match [ErrUnbalanced].
func (c Checker) CheckFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open document: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	if c.Logger != nil {
		c.Logger.Debug("document loaded", "path", path, "size", len(content), "syntax", c.Syntax)
	}
	return c.Check(string(content))
}

func (c Checker) tokens(text string, readErr *error) iter.Seq[Token] {
	switch c.Syntax {
	case HTML:
		return HTMLTokens(strings.NewReader(text), func(err error) { *readErr = err })
	case JSX:
		clean := Sanitize(text)
		if c.Logger != nil {
			c.Logger.Debug("sanitized", "before", len(text), "after", len(clean))
		}
		return Tokens(clean)
	}
	panic(fmt.Sprintf("unknown syntax %d", int(c.Syntax)))
}

func assert(pred bool, msg string, args ...any) {
	if !pred {
		panic("invariant violated: " + fmt.Sprintf(msg, args...))
	}
}
