package ast

import (
	"strings"

	"github.com/xiam/spl/lexer"
)

// TypeExpr describes a type: unit "()", a named type "(int)" or a pointer to
// another type "(int*)". Every pointer layer owns the layer below it.
type TypeExpr struct {
	nt  NodeType
	tok *lexer.Token

	name string
	elem *TypeExpr
}

// NewUnitType creates the empty type "()"
func NewUnitType(tok *lexer.Token) *TypeExpr {
	return &TypeExpr{nt: NodeTypeUnit, tok: tok}
}

// NewNamedType creates a type referenced by name
func NewNamedType(tok *lexer.Token, name string) *TypeExpr {
	return &TypeExpr{nt: NodeTypeNamed, tok: tok, name: name}
}

// NewPointerType wraps elem in one pointer layer. A nil elem points to the
// unit type.
func NewPointerType(tok *lexer.Token, elem *TypeExpr) *TypeExpr {
	if elem == nil {
		elem = NewUnitType(tok)
	}
	return &TypeExpr{nt: NodeTypePointer, tok: tok, elem: elem}
}

// Type returns the type of the node
func (t *TypeExpr) Type() NodeType {
	return t.nt
}

// Token returns the token associated to the node
func (t *TypeExpr) Token() *lexer.Token {
	return t.tok
}

// Name returns the name of a named type, or an empty string
func (t *TypeExpr) Name() string {
	return t.name
}

// Elem returns the type a pointer points to, or nil
func (t *TypeExpr) Elem() *TypeExpr {
	return t.elem
}

// Depth returns the number of pointer layers
func (t *TypeExpr) Depth() int {
	n := 0
	for e := t; e != nil && e.nt == NodeTypePointer; e = e.elem {
		n++
	}
	return n
}

// Base returns the innermost type below all pointer layers
func (t *TypeExpr) Base() *TypeExpr {
	e := t
	for e.nt == NodeTypePointer {
		e = e.elem
	}
	return e
}

// Equal reports whether both types describe the same shape
func (t *TypeExpr) Equal(u *TypeExpr) bool {
	if t == nil || u == nil {
		return t == u
	}
	if t.nt != u.nt || t.name != u.name {
		return false
	}
	return t.elem.Equal(u.elem)
}

// String returns the type as written in source, with its parentheses
func (t *TypeExpr) String() string {
	base := t.Base()
	return "(" + base.name + strings.Repeat("*", t.Depth()) + ")"
}
