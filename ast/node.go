package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/spl/lexer"
)

// ErrChildNotAllowed is returned when a node is pushed into a parent that
// can't hold it.
var ErrChildNotAllowed = errors.New("child not allowed")

// Node represents an element of the AST
type Node interface {
	Type() NodeType
	Token() *lexer.Token
}

// Root is the top level of a program, it holds definitions and functions.
type Root struct {
	children []Node
}

// NewRoot creates an empty program
func NewRoot() *Root {
	return &Root{children: []Node{}}
}

// Type returns the type of the node
func (r *Root) Type() NodeType {
	return NodeTypeRoot
}

// Token returns nil, the root is not tied to any token
func (r *Root) Token() *lexer.Token {
	return nil
}

// List returns all the children elements of the node
func (r *Root) List() []Node {
	return r.children
}

// Push appends a definition or a function to the program
func (r *Root) Push(node Node) error {
	switch node.(type) {
	case *Def, *Function:
		r.children = append(r.children, node)
		return nil
	}
	return fmt.Errorf("%w: %v in %v", ErrChildNotAllowed, node.Type(), r.Type())
}

func (r *Root) String() string {
	return fmt.Sprintf("(%v)[%d]", r.Type(), len(r.children))
}

// Block is the body of a function. Only definitions are allowed in it.
type Block struct {
	tok      *lexer.Token
	children []Node
}

// NewBlock creates an empty block opened by tok
func NewBlock(tok *lexer.Token) *Block {
	return &Block{tok: tok, children: []Node{}}
}

// Type returns the type of the node
func (b *Block) Type() NodeType {
	return NodeTypeBlock
}

// Token returns the token associated to the node
func (b *Block) Token() *lexer.Token {
	return b.tok
}

// List returns all the children elements of the node
func (b *Block) List() []Node {
	return b.children
}

// Push appends a definition to the block
func (b *Block) Push(node Node) error {
	if def, ok := node.(*Def); ok {
		b.children = append(b.children, def)
		return nil
	}
	return fmt.Errorf("%w: %v in %v", ErrChildNotAllowed, node.Type(), b.Type())
}

func (b *Block) String() string {
	return fmt.Sprintf("(%v)[%d]", b.Type(), len(b.children))
}

// Def declares a name with a type: (def (int) x)
type Def struct {
	tok  *lexer.Token
	name string
	typ  *TypeExpr
}

// NewDef creates a definition
func NewDef(tok *lexer.Token, name string, typ *TypeExpr) *Def {
	return &Def{tok: tok, name: name, typ: typ}
}

// Type returns the type of the node
func (d *Def) Type() NodeType {
	return NodeTypeDef
}

// Token returns the token associated to the node
func (d *Def) Token() *lexer.Token {
	return d.tok
}

// Name returns the defined name
func (d *Def) Name() string {
	return d.name
}

// TypeExpr returns the declared type
func (d *Def) TypeExpr() *TypeExpr {
	return d.typ
}

func (d *Def) String() string {
	return fmt.Sprintf("(%v): %s %v", d.Type(), d.name, d.typ)
}

// Param is a function parameter
type Param struct {
	tok  *lexer.Token
	name string
	typ  *TypeExpr
}

// NewParam creates a parameter
func NewParam(tok *lexer.Token, name string, typ *TypeExpr) *Param {
	return &Param{tok: tok, name: name, typ: typ}
}

// Type returns the type of the node
func (p *Param) Type() NodeType {
	return NodeTypeParam
}

// Token returns the token associated to the node
func (p *Param) Token() *lexer.Token {
	return p.tok
}

// Name returns the parameter name
func (p *Param) Name() string {
	return p.name
}

// TypeExpr returns the parameter type
func (p *Param) TypeExpr() *TypeExpr {
	return p.typ
}

func (p *Param) String() string {
	return fmt.Sprintf("(%v): %s %v", p.Type(), p.name, p.typ)
}

// Function is (fn (result) name (params...) (body...))
type Function struct {
	tok    *lexer.Token
	name   string
	result *TypeExpr
	params []*Param
	body   *Block
}

// NewFunction creates a function without parameters and without a body
func NewFunction(tok *lexer.Token, name string, result *TypeExpr) *Function {
	return &Function{
		tok:    tok,
		name:   name,
		result: result,
		params: []*Param{},
	}
}

// Type returns the type of the node
func (f *Function) Type() NodeType {
	return NodeTypeFunction
}

// Token returns the token associated to the node
func (f *Function) Token() *lexer.Token {
	return f.tok
}

// Name returns the function name
func (f *Function) Name() string {
	return f.name
}

// Result returns the return type
func (f *Function) Result() *TypeExpr {
	return f.result
}

// Params returns the parameters in declaration order
func (f *Function) Params() []*Param {
	return f.params
}

// AddParam appends a parameter
func (f *Function) AddParam(param *Param) {
	f.params = append(f.params, param)
}

// Body returns the function body
func (f *Function) Body() *Block {
	return f.body
}

// SetBody sets the function body
func (f *Function) SetBody(body *Block) {
	f.body = body
}

func (f *Function) String() string {
	return fmt.Sprintf("(%v): %s %v [%d]", f.Type(), f.name, f.result, len(f.params))
}

var (
	_ = Node(&Root{})
	_ = Node(&Block{})
	_ = Node(&Def{})
	_ = Node(&Param{})
	_ = Node(&Function{})
	_ = Node(&TypeExpr{})
)
