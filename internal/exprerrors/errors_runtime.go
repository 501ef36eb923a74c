package exprerrors

import (
	"errors"
	"fmt"

	"github.com/lexpr-lang/lexpr/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber          = errors.New("operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("operands must be two numbers or two strings.")
	ErrRuntimeDivisionByZero               = errors.New("division by zero.")
)

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok: tok, cause: cause}
}

func NewRuntimeErrorDetails(tok *token.Token, cause error, details string) error {
	return &RuntimeError{tok: tok, cause: cause, details: details}
}

type RuntimeError struct {
	tok     *token.Token
	cause   error
	details string
}

// Error implements error.
func (r *RuntimeError) Error() string {
	details := r.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[%v] at '%s': %v%s", r.tok.Pos, r.tok.Lexeme, r.cause, details)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
