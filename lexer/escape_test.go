package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	testCases := []struct {
		In  string
		Out []byte
		Err error
	}{
		{``, []byte{}, nil},
		{`plain`, []byte("plain"), nil},
		{`a\tb`, []byte{'a', 0x09, 'b'}, nil},
		{`\e[92m`, []byte("\x1b[92m"), nil},
		{`\0\x00`, []byte{0, 0}, nil},
		{`\x4a\x4B`, []byte("JK"), nil},
		{`\\\"`, []byte(`\"`), nil},
		{`\xg1`, []byte("g1"), ErrInvalidEscape},
		{`ok\x1`, []byte("ok1"), ErrInvalidEscape},
		{`\x`, []byte{}, ErrInvalidEscape},
		{`trailing\`, []byte("trailing"), nil},
	}

	for i := range testCases {
		out, err := Unescape([]byte(testCases[i].In))
		assert.Equal(t, testCases[i].Out, out, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Err, err, "input: %q", testCases[i].In)
	}
}

func TestDecodeEscapeWidth(t *testing.T) {
	testCases := []struct {
		In    string
		Byte  byte
		OK    bool
		Width int
	}{
		{`\n`, 0x0a, true, 2},
		{`\x41`, 'A', true, 4},
		{`\x41zz`, 'A', true, 4},
		{`\x4`, 0, false, 2},
		{`\`, 0, false, 1},
		{`\"`, '"', true, 2},
	}

	for i := range testCases {
		b, ok, n, _ := decodeEscape([]byte(testCases[i].In), 0)
		assert.Equal(t, testCases[i].Byte, b, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].OK, ok, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Width, n, "input: %q", testCases[i].In)
	}
}
