package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int

	str []byte
	num uint64
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewStringToken creates a string lexical unit carrying its decoded bytes.
func NewStringToken(lexeme string, decoded []byte, line int, col int) *Token {
	tok := NewToken(TokenString, lexeme, line, col)
	tok.str = append([]byte{}, decoded...)
	return tok
}

// NewNumberToken creates a number lexical unit carrying its decoded value.
func NewNumberToken(lexeme string, value uint64, line int, col int) *Token {
	tok := NewToken(TokenNumber, lexeme, line, col)
	tok.num = value
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit, both zero based
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Bytes returns the decoded payload of a string token, without the quotes.
// It returns nil for any other token.
func (t Token) Bytes() []byte {
	if t.tt != TokenString {
		return nil
	}
	return t.str
}

// Uint returns the decoded value of a number token and whether the token
// carries one.
func (t Token) Uint() (uint64, bool) {
	if t.tt != TokenNumber {
		return 0, false
	}
	return t.num, true
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
