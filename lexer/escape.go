package lexer

var escapeTable = map[byte]byte{
	't': 0x09,
	'n': 0x0a,
	'r': 0x0d,
	'e': 0x1b,
	'0': 0x00,
}

// decodeEscape decodes the escape sequence that starts with the backslash at
// in[i]. It returns the decoded byte, whether there is one, and how many
// input bytes the sequence takes.
//
// A \x escape needs two hex digits right after the x. When they are missing
// the escape takes only the backslash and the x, yields no byte and returns
// ErrInvalidEscape, so a closing quote following it is never swallowed. The
// characters after the x are scanned again as ordinary string content:
// "\xZ1" decodes to "Z1", where skipping all four characters would have
// left it empty.
func decodeEscape(in []byte, i int) (b byte, ok bool, n int, err error) {
	if i+1 >= len(in) {
		return 0, false, 1, nil
	}

	c := in[i+1]
	if v, found := escapeTable[c]; found {
		return v, true, 2, nil
	}

	if c == 'x' {
		if i+3 < len(in) && isHexDigit(in[i+2]) && isHexDigit(in[i+3]) {
			return hexValue(in[i+2])<<4 | hexValue(in[i+3]), true, 4, nil
		}
		return 0, false, 2, ErrInvalidEscape
	}

	// \" and \\ fall here along with any other character.
	return c, true, 2, nil
}

// Unescape decodes the body of a string literal, without its surrounding
// quotes, the same way the scanner does. Malformed \x escapes are dropped
// from the output; the returned error is ErrInvalidEscape if that happened
// at least once, and the decoded bytes are still returned.
func Unescape(body []byte) ([]byte, error) {
	var firstErr error

	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			out = append(out, body[i])
			i++
			continue
		}

		b, ok, n, err := decodeEscape(body, i)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if ok {
			out = append(out, b)
		}
		i += n
	}

	return out, firstErr
}
