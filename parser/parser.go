package parser

import (
	"fmt"

	"github.com/xiam/spl/ast"
	"github.com/xiam/spl/lexer"
)

const (
	keywordFn  = "fn"
	keywordDef = "def"
)

// Parser builds an AST out of a stream of tokens. It stops at the first
// error and never returns a partial tree.
type Parser struct {
	tokens *lexer.Stream
	offset int
}

// New creates a parser that reads from tokens
func New(tokens *lexer.Stream) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole stream and returns the program
func (p *Parser) Parse() (*ast.Root, error) {
	root := ast.NewRoot()

	for p.peek() != nil {
		node, err := expectItem(p)
		if err != nil {
			return nil, err
		}
		if err := root.Push(node); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func (p *Parser) peek() *lexer.Token {
	tok, ok := p.tokens.At(p.offset)
	if !ok {
		return nil
	}
	return &tok
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.offset++
	}
	return tok
}

func (p *Parser) errorf(err error, tok *lexer.Token, format string, args ...interface{}) error {
	e := &Error{
		Err:   err,
		Token: tok,
		Msg:   fmt.Sprintf(format, args...),
	}
	if tok != nil {
		e.Line, e.Col = tok.Pos()
		return e
	}

	// Past the end: point right after the last token.
	if last, ok := p.tokens.At(p.tokens.Len() - 1); ok {
		e.Line, e.Col = last.Pos()
		e.Col++
	}
	return e
}

func (p *Parser) unexpected(tok *lexer.Token, expected string) error {
	if tok == nil {
		return p.errorf(ErrUnexpectedEOF, nil, "expected %s", expected)
	}
	return p.errorf(ErrUnexpectedToken, tok, "got %v %q, expected %s", tok.Type(), tok.Text(), expected)
}

func expectToken(p *Parser, tt lexer.TokenType, what string) (*lexer.Token, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.errorf(ErrUnexpectedEOF, nil, "expected %s", what)
	}
	if !tok.Is(tt) {
		return nil, p.errorf(ErrExpectedToken, tok, "expected %s, got %v %q", what, tok.Type(), tok.Text())
	}
	return tok, nil
}

// expectItem reads a top level "(def ...)" or "(fn ...)".
func expectItem(p *Parser) (ast.Node, error) {
	if _, err := expectToken(p, lexer.TokenLParen, `"("`); err != nil {
		return nil, err
	}

	kw := p.next()
	if kw != nil && kw.Is(lexer.TokenName) {
		switch kw.Text() {
		case keywordDef:
			def, err := expectDef(p, kw)
			if err != nil {
				return nil, err
			}
			return def, nil
		case keywordFn:
			fn, err := expectFunction(p, kw)
			if err != nil {
				return nil, err
			}
			return fn, nil
		}
	}
	return nil, p.unexpected(kw, `"fn" or "def"`)
}

// expectDef reads the rest of "(def Type Name)" after the keyword.
func expectDef(p *Parser, kw *lexer.Token) (*ast.Def, error) {
	typ, err := expectType(p)
	if err != nil {
		return nil, err
	}

	name, err := expectToken(p, lexer.TokenName, "definition name")
	if err != nil {
		return nil, err
	}

	if _, err := expectToken(p, lexer.TokenRParen, `")" after definition`); err != nil {
		return nil, err
	}

	return ast.NewDef(kw, name.Text(), typ), nil
}

// expectFunction reads the rest of "(fn Type Name (Params) Block)" after
// the keyword.
func expectFunction(p *Parser, kw *lexer.Token) (*ast.Function, error) {
	result, err := expectType(p)
	if err != nil {
		return nil, err
	}

	name, err := expectToken(p, lexer.TokenName, "function name")
	if err != nil {
		return nil, err
	}

	fn := ast.NewFunction(kw, name.Text(), result)

	if _, err := expectToken(p, lexer.TokenLParen, `"(" to open the parameter list`); err != nil {
		return nil, err
	}

loop:
	for {
		tok := p.peek()
		switch {
		case tok == nil:
			return nil, p.unexpected(nil, `parameter or ")"`)

		case tok.Is(lexer.TokenRParen):
			p.next()
			break loop

		case tok.Is(lexer.TokenLParen):
			param, err := expectParam(p)
			if err != nil {
				return nil, err
			}
			fn.AddParam(param)

		default:
			return nil, p.unexpected(tok, `parameter or ")"`)
		}
	}

	body, err := expectBlock(p)
	if err != nil {
		return nil, err
	}
	fn.SetBody(body)

	if _, err := expectToken(p, lexer.TokenRParen, `")" after function body`); err != nil {
		return nil, err
	}

	return fn, nil
}

func expectParam(p *Parser) (*ast.Param, error) {
	typ, err := expectType(p)
	if err != nil {
		return nil, err
	}

	name, err := expectToken(p, lexer.TokenName, "parameter name")
	if err != nil {
		return nil, err
	}

	return ast.NewParam(name, name.Text(), typ), nil
}

// expectBlock reads a function body. Blocks only hold definitions for now.
func expectBlock(p *Parser) (*ast.Block, error) {
	open, err := expectToken(p, lexer.TokenLParen, `"(" to open the function body`)
	if err != nil {
		return nil, err
	}

	block := ast.NewBlock(open)

	for {
		tok := p.next()
		switch {
		case tok == nil:
			return nil, p.unexpected(nil, `definition or ")"`)

		case tok.Is(lexer.TokenRParen):
			return block, nil

		case tok.Is(lexer.TokenLParen):
			kw := p.next()
			if kw == nil || !kw.Is(lexer.TokenName) || kw.Text() != keywordDef {
				return nil, p.unexpected(kw, `"def"`)
			}

			def, err := expectDef(p, kw)
			if err != nil {
				return nil, err
			}
			if err := block.Push(def); err != nil {
				return nil, err
			}

		default:
			return nil, p.unexpected(tok, `definition or ")"`)
		}
	}
}

// expectType reads "()", "(Name)" or "(Name*...)". Every star wraps the type
// read so far in one more pointer.
func expectType(p *Parser) (*ast.TypeExpr, error) {
	open, err := expectToken(p, lexer.TokenLParen, `"(" to open a type`)
	if err != nil {
		return nil, err
	}

	var typ *ast.TypeExpr
	for {
		tok := p.next()
		switch {
		case tok == nil:
			return nil, p.unexpected(nil, `type name, "*" or ")"`)

		case tok.Is(lexer.TokenRParen):
			if typ == nil {
				return ast.NewUnitType(open), nil
			}
			return typ, nil

		case tok.Is(lexer.TokenName):
			if typ != nil {
				return nil, p.unexpected(tok, `"*" or ")"`)
			}
			typ = ast.NewNamedType(tok, tok.Text())

		case tok.Is(lexer.TokenMul):
			if typ == nil {
				return nil, p.unexpected(tok, `type name before "*"`)
			}
			typ = ast.NewPointerType(tok, typ)

		default:
			return nil, p.unexpected(tok, `type name, "*" or ")"`)
		}
	}
}

// ParseTokens builds an AST out of an already scanned stream
func ParseTokens(tokens *lexer.Stream) (*ast.Root, error) {
	return New(tokens).Parse()
}

// Parse scans and parses the given source
func Parse(in []byte, opts ...lexer.Option) (*ast.Root, error) {
	tokens, err := lexer.Tokenize(in, opts...)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}
