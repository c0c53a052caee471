package lexer

// Stream is an ordered, append-only sequence of tokens. The scanner fills
// it once and the parser reads it by index.
type Stream struct {
	tokens []Token
}

// NewStream creates an empty stream
func NewStream() *Stream {
	return &Stream{
		tokens: make([]Token, 0, 256),
	}
}

// Push appends a token at the end of the stream
func (s *Stream) Push(tok Token) {
	s.tokens = append(s.tokens, tok)
}

// Pop removes and returns the last token, ok is false when the stream is
// empty.
func (s *Stream) Pop() (tok Token, ok bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	n := len(s.tokens) - 1
	tok = s.tokens[n]
	s.tokens = s.tokens[:n]
	return tok, true
}

// At returns the token at index i
func (s *Stream) At(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Len returns the number of tokens in the stream
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of all the tokens in the stream
func (s *Stream) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}
