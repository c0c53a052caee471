package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota
	TokenChar              // Reserved, never produced by the scanner
	TokenString            // Double quoted string: "..."
	TokenNumber            // Decimal or hexadecimal (0x) integer
	TokenName              // Letters, digits and underscore, not starting with a digit
	TokenLParen            // Open parenthesis: "("
	TokenRParen            // Close parenthesis: ")"
	TokenAdd               // "+"
	TokenSub               // "-"
	TokenMul               // "*"
	TokenDiv               // "/"
	TokenEq                // "=="
	TokenNe                // "!="
	TokenGt                // ">"
	TokenGe                // ">="
	TokenLt                // "<"
	TokenLe                // "<="
	TokenInc               // "++"
	TokenDec               // "--"
	TokenShl               // "<<"
	TokenShr               // ">>"
	TokenSet               // "="
	TokenNot               // "!"
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",
	TokenChar:    "char",
	TokenString:  "string",
	TokenNumber:  "number",
	TokenName:    "name",
	TokenLParen:  "lparen",
	TokenRParen:  "rparen",
	TokenAdd:     "add",
	TokenSub:     "sub",
	TokenMul:     "mul",
	TokenDiv:     "div",
	TokenEq:      "eq",
	TokenNe:      "ne",
	TokenGt:      "gt",
	TokenGe:      "ge",
	TokenLt:      "lt",
	TokenLe:      "le",
	TokenInc:     "inc",
	TokenDec:     "dec",
	TokenShl:     "shl",
	TokenShr:     "shr",
	TokenSet:     "set",
	TokenNot:     "not",
}

// Single character punctuation.
var tokenPunct = map[byte]TokenType{
	'(': TokenLParen,
	')': TokenRParen,
	'=': TokenSet,
	'+': TokenAdd,
	'-': TokenSub,
	'*': TokenMul,
	'/': TokenDiv,
	'!': TokenNot,
	'>': TokenGt,
	'<': TokenLt,
}

// Two character operators, checked before tokenPunct.
var tokenDouble = map[[2]byte]TokenType{
	{'+', '+'}: TokenInc,
	{'-', '-'}: TokenDec,
	{'=', '='}: TokenEq,
	{'!', '='}: TokenNe,
	{'>', '='}: TokenGe,
	{'<', '='}: TokenLe,
	{'<', '<'}: TokenShl,
	{'>', '>'}: TokenShr,
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isNameBody(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
