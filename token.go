package tagbalance

import "fmt"

// Kind tells what a tag token does to the open-tag stack.
type Kind uint8

//go:generate stringer -type Kind

const (
	Opening Kind = iota
	Closing
	SelfClosing
)

// Token is a single tag found in the document.
// Pos is the character offset of the leading '<'.
type Token struct {
	Name string
	Kind Kind
	Pos  int
}

// OpenTag is an entry of the open-tag stack.
type OpenTag struct {
	Name string
	Pos  int
}

func (o OpenTag) String() string { return fmt.Sprintf("('%s', %d)", o.Name, o.Pos) }

// stack of currently unmatched opening tags, innermost last.
type stack []OpenTag

func (s *stack) push(name string, pos int) { *s = append(*s, OpenTag{Name: name, Pos: pos}) }

func (s *stack) pop() OpenTag {
	assert(len(*s) > 0, "pop on empty stack")
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top
}
