package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream(t *testing.T) {
	s := NewStream()
	assert.Equal(t, 0, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)

	for i := 0; i < 1000; i++ {
		s.Push(*NewNumberToken("1", uint64(i), 0, i))
	}
	assert.Equal(t, 1000, s.Len())

	tok, ok := s.At(500)
	assert.True(t, ok)
	v, _ := tok.Uint()
	assert.Equal(t, uint64(500), v)

	_, ok = s.At(1000)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)

	tok, ok = s.Pop()
	assert.True(t, ok)
	v, _ = tok.Uint()
	assert.Equal(t, uint64(999), v)
	assert.Equal(t, 999, s.Len())
}

func TestStreamTokensIsACopy(t *testing.T) {
	s := NewStream()
	s.Push(*NewToken(TokenName, "a", 0, 0))

	tokens := s.Tokens()
	tokens[0] = *NewToken(TokenName, "b", 0, 0)

	tok, _ := s.At(0)
	assert.Equal(t, "a", tok.Text())
}

func TestTokenPayload(t *testing.T) {
	str := NewStringToken(`"x"`, []byte("x"), 0, 2)
	assert.Equal(t, []byte("x"), str.Bytes())
	_, ok := str.Uint()
	assert.False(t, ok)

	num := NewNumberToken("9", 9, 0, 0)
	assert.Nil(t, num.Bytes())
	v, ok := num.Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), v)

	assert.Equal(t, `(:string "\"x\"" [0 2])`, str.String())
	assert.Equal(t, "invalid", TokenType(200).String())
	assert.Equal(t, "ge", TokenGe.String())
}
