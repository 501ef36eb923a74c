package token

import (
	"fmt"
)

type DoubleNumber float64

// Position is the source location of a lexeme.
// Line and Column are 1-based, Offset is the 0-based rune index of the
// lexeme start in the source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Pos     Position
}

func NewToken(t TokenType, lexeme string, literal any, pos Position) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal any, pos Position) *Token {
	tt := NewToken(t, lexeme, literal, pos)
	return &tt
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d, Column: %d}", t.Type, t.Lexeme, t.Literal, t.Pos.Line, t.Pos.Column)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
