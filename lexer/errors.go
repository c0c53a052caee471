package lexer

import (
	"errors"
	"fmt"
)

// Faults reported by the scanner in strict mode. In the default mode the
// scanner recovers from all of them.
var (
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrIllegalCharacter    = errors.New("illegal character")
)

// Error is a scanner fault with the zero based position where it happened.
type Error struct {
	Err  error
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line+1, e.Col+1, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
