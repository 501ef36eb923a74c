package exprerrors

import (
	"errors"
	"fmt"

	"github.com/lexpr-lang/lexpr/internal/token"
)

var (
	ErrScanUnexpectedCharacter  = errors.New("unexpected character.")
	ErrScanUnexpectedIdentifier = errors.New("unexpected identifier, expect 'true', 'false' or 'nil'.")
	ErrScanUnterminatedString   = errors.New("unterminated string.")
)

func NewScanError(pos token.Position, cause error, details string) error {
	return &ScannerError{pos: pos, cause: cause, details: details}
}

type ScannerError struct {
	pos     token.Position
	cause   error
	details string
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[%v] scan error: %v%s", s.pos, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
