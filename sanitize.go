package tagbalance

import "regexp"

var (
	blockComment  = regexp.MustCompile(`(?s)\{/\*.*?\*/\}`)
	lineComment   = regexp.MustCompile(`//.*`)
	templateQuote = regexp.MustCompile("`[^`]*`")
)

// Sanitize neutralizes the parts of a JSX source that may hold tag-like text without being markup.
// JSX block comments ({/* ... */}) and line comments are removed,
// then every backtick-quoted literal is replaced by an empty one.
//
// The passes are plain regular expressions, not a lexer:
// a "//" inside a quoted string (e.g. an URL) also starts a comment,
// and an unterminated backtick literal is left alone.
// Both are accepted limitations.
func Sanitize(text string) string {
	text = blockComment.ReplaceAllLiteralString(text, "")
	text = lineComment.ReplaceAllLiteralString(text, "")
	return templateQuote.ReplaceAllLiteralString(text, "``")
}
