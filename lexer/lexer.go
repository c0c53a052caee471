package lexer

import (
	"log"
)

type lexState func(*Lexer) lexState

// Option configures a Lexer
type Option func(*Lexer)

// Strict makes the lexer stop at the first malformed escape, unterminated
// string or comment, or illegal character instead of recovering from it.
func Strict() Option {
	return func(lx *Lexer) {
		lx.strict = true
	}
}

// WithLogger sets a logger that receives a line for every recovery the
// lexer performs in non-strict mode.
func WithLogger(l *log.Logger) Option {
	return func(lx *Lexer) {
		lx.logger = l
	}
}

// New initializes a Lexer object
func New(in []byte, opts ...Option) *Lexer {
	lx := &Lexer{
		in:     in,
		tokens: NewStream(),
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in     []byte
	tokens *Stream

	strict bool
	logger *log.Logger

	lastErr error

	offset int
	line   int
	col    int
}

// Tokens returns the stream of tokens scanned so far.
func (lx *Lexer) Tokens() *Stream {
	return lx.tokens
}

// Scan runs the lexer over the whole input. It only returns an error in
// strict mode.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) eof() bool {
	return lx.offset >= len(lx.in)
}

func (lx *Lexer) peek() byte {
	return lx.in[lx.offset]
}

// next consumes one byte and moves the position past it.
func (lx *Lexer) next() byte {
	c := lx.in[lx.offset]
	lx.offset++

	if c == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return c
}

func (lx *Lexer) pos() (int, int) {
	return lx.line, lx.col
}

func (lx *Lexer) text(start int) string {
	return string(lx.in[start:lx.offset])
}

func (lx *Lexer) emit(tok *Token) {
	lx.tokens.Push(*tok)
}

// fault reports whether scanning must stop because of err. Strict lexers
// keep the error and stop, the rest log it and carry on.
func (lx *Lexer) fault(err error, line, col int) bool {
	if lx.strict {
		lx.lastErr = &Error{Err: err, Line: line, Col: col}
		return true
	}
	if lx.logger != nil {
		lx.logger.Printf("lexer: %d:%d: %v (ignored)", line+1, col+1, err)
	}
	return false
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.eof() {
		return nil
	}

	c := lx.peek()
	switch {
	case isWhitespace(c):
		lx.next()
		return lexDefaultState
	case c == '"':
		return lexString
	case isDigit(c):
		return lexNumber
	case isNameStart(c):
		return lexName
	}

	if _, ok := tokenPunct[c]; ok {
		return lexPunct
	}

	line, col := lx.pos()
	lx.next()
	if lx.fault(ErrIllegalCharacter, line, col) {
		return nil
	}
	return lexDefaultState
}

func lexPunct(lx *Lexer) lexState {
	start := lx.offset
	line, col := lx.pos()

	if start+1 < len(lx.in) {
		pair := [2]byte{lx.in[start], lx.in[start+1]}
		if pair == [2]byte{'(', ';'} {
			lx.next()
			lx.next()
			return lexComment
		}
		if tt, ok := tokenDouble[pair]; ok {
			lx.next()
			lx.next()
			lx.emit(NewToken(tt, lx.text(start), line, col))
			return lexDefaultState
		}
	}

	tt := tokenPunct[lx.next()]
	lx.emit(NewToken(tt, lx.text(start), line, col))
	return lexDefaultState
}

// Comments do not nest, the first ";)" closes them.
func lexComment(lx *Lexer) lexState {
	// Faults point at the "(;" that opened the comment.
	line, col := lx.pos()
	col -= 2
	for !lx.eof() {
		if lx.peek() == ';' && lx.offset+1 < len(lx.in) && lx.in[lx.offset+1] == ')' {
			lx.next()
			lx.next()
			return lexDefaultState
		}
		lx.next()
	}
	lx.fault(ErrUnterminatedComment, line, col)
	return nil
}

func lexString(lx *Lexer) lexState {
	start := lx.offset
	line, col := lx.pos()
	lx.next()

	buf := []byte{}
	for !lx.eof() {
		c := lx.peek()

		switch c {
		case '"':
			line, col = lx.pos()
			lx.next()
			lx.emit(NewStringToken(lx.text(start), buf, line, col))
			return lexDefaultState

		case '\\':
			escLine, escCol := lx.pos()
			b, ok, n, err := decodeEscape(lx.in, lx.offset)
			for i := 0; i < n; i++ {
				line, col = lx.pos()
				lx.next()
			}
			if ok {
				buf = append(buf, b)
			}
			if err != nil && lx.fault(err, escLine, escCol) {
				return nil
			}

		default:
			line, col = lx.pos()
			buf = append(buf, lx.next())
		}
	}

	if lx.fault(ErrUnterminatedString, line, col) {
		return nil
	}
	lx.emit(NewStringToken(lx.text(start), buf, line, col))
	return nil
}

func lexNumber(lx *Lexer) lexState {
	start := lx.offset

	var acc uint64
	var line, col int

	if start+1 < len(lx.in) && lx.in[start] == '0' && lx.in[start+1] == 'x' {
		lx.next()
		line, col = lx.pos()
		lx.next()
		for !lx.eof() && isHexDigit(lx.peek()) {
			line, col = lx.pos()
			acc = acc<<4 | uint64(hexValue(lx.next()))
		}
	} else {
		for !lx.eof() && isDigit(lx.peek()) {
			line, col = lx.pos()
			// Add, not or: "19" must decode as 19, never 10|9.
			acc = acc*10 + uint64(lx.next()-'0')
		}
	}

	lx.emit(NewNumberToken(lx.text(start), acc, line, col))
	return lexDefaultState
}

func lexName(lx *Lexer) lexState {
	start := lx.offset

	var line, col int
	for !lx.eof() && isNameBody(lx.peek()) {
		line, col = lx.pos()
		lx.next()
	}

	lx.emit(NewToken(TokenName, lx.text(start), line, col))
	return lexDefaultState
}

// Tokenize takes an array of bytes and returns all the tokens within it. An
// error is only possible with the Strict option.
func Tokenize(in []byte, opts ...Option) (*Stream, error) {
	lx := New(in, opts...)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}
