package tagbalance

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	cases := []struct {
		text string
		want []Token
	}{
		{"", nil},
		{"a < b && c > d", nil},
		{`<A><B></B></A>`, []Token{
			{"A", Opening, 0}, {"B", Opening, 3}, {"B", Closing, 6}, {"A", Closing, 10},
		}},
		{`<View style={s.row}><Icon name="x" /></View>`, []Token{
			{"View", Opening, 0}, {"Icon", SelfClosing, 20}, {"View", Closing, 37},
		}},
		{`<br/>`, []Token{{"br", SelfClosing, 0}}},
		{`</a/>`, []Token{{"a", SelfClosing, 0}}},
		{"<Text>\n  hello\n</Text>", []Token{{"Text", Opening, 0}, {"Text", Closing, 15}}},
		// offsets count characters, not bytes
		{`<p>é</p>`, []Token{{"p", Opening, 0}, {"p", Closing, 4}}},
		{`<p>日本</p><q/>`, []Token{{"p", Opening, 0}, {"p", Closing, 5}, {"q", SelfClosing, 9}}},
	}

	for _, c := range cases {
		got := slices.Collect(Tokens(c.text))
		if !cmp.Equal(got, c.want) {
			t.Errorf("Tokens(%q): %s", c.text, cmp.Diff(c.want, got))
		}
	}
}

func TestTokensStop(t *testing.T) {
	var seen []string
	for tk := range Tokens(`<a><b><c>`) {
		seen = append(seen, tk.Name)
		if tk.Name == "b" {
			break
		}
	}
	if want := []string{"a", "b"}; !cmp.Equal(seen, want) {
		t.Errorf("early stop: %s", cmp.Diff(want, seen))
	}
}

func TestHTMLTokens(t *testing.T) {
	cases := []struct {
		doc  string
		want []Token
	}{
		{`<div><p>Hi</p></div>`, []Token{
			{"div", Opening, 0}, {"p", Opening, 5}, {"p", Closing, 10}, {"div", Closing, 14},
		}},
		{`<!DOCTYPE html><!-- <b> --><br><img src="x"/>`, []Token{
			{"br", SelfClosing, 27}, {"img", SelfClosing, 31},
		}},
		{`<script>if (a < b) { x = "<p>" }</script>`, []Token{
			{"script", Opening, 0}, {"script", Closing, 32},
		}},
		{`<DIV></Div>`, []Token{{"div", Opening, 0}, {"div", Closing, 5}}},
	}

	for _, c := range cases {
		got := slices.Collect(HTMLTokens(strings.NewReader(c.doc), nil))
		if !cmp.Equal(got, c.want) {
			t.Errorf("HTMLTokens(%q): %s", c.doc, cmp.Diff(c.want, got))
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestHTMLTokensReadError(t *testing.T) {
	var got error
	for range HTMLTokens(failingReader{}, func(err error) { got = err }) {
		t.Fatal("no token expected")
	}
	if got == nil || got.Error() != "disk on fire" {
		t.Errorf("read error not reported, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Opening: "Opening", Closing: "Closing", SelfClosing: "SelfClosing", Kind(7): "Kind(7)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %s; want %s", k, got, want)
		}
	}
}
