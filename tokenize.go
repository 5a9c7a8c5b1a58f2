package tagbalance

import (
	"errors"
	"io"
	"iter"
	"regexp"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// tagPattern groups: 1 closing marker, 2 name, 3 attributes, 4 self-closing marker.
var tagPattern = regexp.MustCompile(`<(/?)(\w+)([^>]*?)(/?)>`)

// Tokens returns the tags of a sanitized JSX text, in document order.
// The sequence is computed lazily and cannot be restarted once a consumer stopped it.
func Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var off, chars, last int
		for off < len(text) {
			m := tagPattern.FindStringSubmatchIndex(text[off:])
			if m == nil {
				return
			}
			start := off + m[0]
			chars += utf8.RuneCountInString(text[last:start])
			last = start

			tk := Token{Name: text[off+m[4] : off+m[5]], Kind: Opening, Pos: chars}
			switch {
			case m[9] > m[8]:
				// "</a/>" counts as self-closing too
				tk.Kind = SelfClosing
			case m[3] > m[2]:
				tk.Kind = Closing
			}
			if !yield(tk) {
				return
			}
			off += m[1]
		}
	}
}

// voidElements never take a closing tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// HTMLTokens returns the tags of an HTML document read from r.
// Comments, doctypes and the raw text of script or style elements never yield a token.
// Start tags of void elements are reported as [SelfClosing].
//
// Read errors other than io.EOF end the sequence early; they are reported to onErr when not nil.
func HTMLTokens(r io.Reader, onErr func(error)) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		tk := html.NewTokenizer(r)
		chars := 0
		for {
			tt := tk.Next()
			pos := chars
			chars += utf8.RuneCount(tk.Raw())

			var kind Kind
			switch tt {
			case html.ErrorToken:
				if err := tk.Err(); !errors.Is(err, io.EOF) && onErr != nil {
					onErr(err)
				}
				return
			case html.StartTagToken:
				kind = Opening
			case html.EndTagToken:
				kind = Closing
			case html.SelfClosingTagToken:
				kind = SelfClosing
			default:
				continue
			}

			n, _ := tk.TagName()
			name := string(n)
			if kind == Opening && voidElements[name] {
				kind = SelfClosing
			}
			if !yield(Token{Name: name, Kind: kind, Pos: pos}) {
				return
			}
		}
	}
}
