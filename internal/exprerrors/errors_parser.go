package exprerrors

import (
	"errors"
	"fmt"

	"github.com/lexpr-lang/lexpr/internal/token"
)

var (
	ErrParseUnexpectedToken         = errors.New("expected expression.")
	ErrParseExpectedRightParenToken = errors.New("expected ')' after expression.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[%v] parse error %s: %v", p.tok.Pos, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
