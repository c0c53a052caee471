package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/spl/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedToken   = errors.New("expected token")
)

// Error is a parser fault. Err is one of the sentinel errors above, Token is
// the offending token (nil at the end of the input) and Line and Col are zero
// based.
type Error struct {
	Err   error
	Token *lexer.Token
	Line  int
	Col   int
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v: %s", e.Line+1, e.Col+1, e.Err, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
