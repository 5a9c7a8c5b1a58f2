package tagbalance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalanced is matched by every error reporting a nesting problem.
// Use errors.Is to tell those apart from I/O failures.
var ErrUnbalanced = errors.New("tags are not balanced")

// UnexpectedClosingTagError is returned when a closing tag shows up while no tag is open.
type UnexpectedClosingTagError struct {
	Name string
	Pos  int
}

func (e *UnexpectedClosingTagError) Error() string {
	return fmt.Sprintf("unexpected closing tag </%s> at index %d", e.Name, e.Pos)
}

func (e *UnexpectedClosingTagError) Is(target error) bool { return target == ErrUnbalanced }

// MismatchedClosingTagError is returned when a closing tag does not match the innermost open tag.
type MismatchedClosingTagError struct {
	Open OpenTag // innermost open tag, already popped
	Name string
	Pos  int
}

func (e *MismatchedClosingTagError) Error() string {
	return fmt.Sprintf("expected closing tag </%s> (opened at %d) but found </%s> at index %d",
		e.Open.Name, e.Open.Pos, e.Name, e.Pos)
}

func (e *MismatchedClosingTagError) Is(target error) bool { return target == ErrUnbalanced }

// UnclosedTagsError lists the tags still open at the end of the document, outermost first.
type UnclosedTagsError struct {
	Tags []OpenTag
}

func (e *UnclosedTagsError) Error() string { return "unclosed tags: " + formatTags(e.Tags) }

func (e *UnclosedTagsError) Is(target error) bool { return target == ErrUnbalanced }

func formatTags(tags []OpenTag) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Report renders the status line for the result of a check.
// ok is false when err is not a balance error, in which case line is empty and the caller handles err itself.
//
//	Tags are balanced.
//	Error: Unexpected closing tag </NAME> at index N
//	Error: Expected closing tag </NAME> (opened at P) but found </NAME2> at index N
//	Error: Unclosed tags: [('NAME', P), ...]
func Report(err error) (line string, ok bool) {
	if err == nil {
		return "Tags are balanced.", true
	}

	var (
		unexpected *UnexpectedClosingTagError
		mismatched *MismatchedClosingTagError
		unclosed   *UnclosedTagsError
	)
	switch {
	case errors.As(err, &unexpected):
		return fmt.Sprintf("Error: Unexpected closing tag </%s> at index %d", unexpected.Name, unexpected.Pos), true
	case errors.As(err, &mismatched):
		return fmt.Sprintf("Error: Expected closing tag </%s> (opened at %d) but found </%s> at index %d",
			mismatched.Open.Name, mismatched.Open.Pos, mismatched.Name, mismatched.Pos), true
	case errors.As(err, &unclosed):
		return "Error: Unclosed tags: " + formatTags(unclosed.Tags), true
	}
	return "", false
}
