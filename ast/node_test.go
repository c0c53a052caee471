package ast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/spl/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenName, "x", 0, 0)

	root := NewRoot()
	def := NewDef(token, "x", NewNamedType(token, "int"))
	assert.NoError(t, root.Push(def))

	fn := NewFunction(token, "main", NewUnitType(token))
	assert.NoError(t, root.Push(fn))

	err := root.Push(NewParam(token, "p", NewUnitType(token)))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrChildNotAllowed))

	assert.Len(t, root.List(), 2)
	assert.Equal(t, "(root)[2]", root.String())
}

func TestBlockOnlyAcceptsDefs(t *testing.T) {
	token := lexer.NewToken(lexer.TokenLParen, "(", 0, 0)

	block := NewBlock(token)
	assert.NoError(t, block.Push(NewDef(token, "x", NewUnitType(token))))

	err := block.Push(NewFunction(token, "f", NewUnitType(token)))
	assert.True(t, errors.Is(err, ErrChildNotAllowed))

	assert.Len(t, block.List(), 1)
	assert.True(t, block.Type().IsVector())
}

func TestTypeExpr(t *testing.T) {
	token := lexer.NewToken(lexer.TokenName, "int", 0, 1)

	typ := NewNamedType(token, "int")
	for i := 0; i < 3; i++ {
		typ = NewPointerType(token, typ)
	}

	assert.Equal(t, NodeTypePointer, typ.Type())
	assert.Equal(t, 3, typ.Depth())
	assert.Equal(t, "int", typ.Base().Name())
	assert.Equal(t, "(int***)", typ.String())
	assert.True(t, typ.Type().IsTypeExpr())

	inner := typ.Elem().Elem().Elem()
	assert.Equal(t, NodeTypeNamed, inner.Type())
	assert.Nil(t, inner.Elem())

	assert.Equal(t, "()", NewUnitType(token).String())
	assert.Equal(t, 0, NewUnitType(token).Depth())

	assert.True(t, typ.Equal(NewPointerType(nil, NewPointerType(nil, NewPointerType(nil, NewNamedType(nil, "int"))))))
	assert.False(t, typ.Equal(NewPointerType(nil, NewNamedType(nil, "int"))))
	assert.False(t, NewUnitType(nil).Equal(NewNamedType(nil, "int")))
}

func TestPointerToNothing(t *testing.T) {
	ptr := NewPointerType(nil, nil)

	require.NotNil(t, ptr.Elem())
	assert.Equal(t, NodeTypeUnit, ptr.Base().Type())
	assert.Equal(t, 1, ptr.Depth())
	assert.Equal(t, "(*)", ptr.String())
	assert.Equal(t, "(def (*) p)", string(Encode(NewDef(nil, "p", ptr))))
}

func TestEncode(t *testing.T) {
	root := NewRoot()

	ptr := NewPointerType(nil, NewNamedType(nil, "char"))
	require.NoError(t, root.Push(NewDef(nil, "msg", ptr)))

	fn := NewFunction(nil, "main", NewNamedType(nil, "int"))
	fn.AddParam(NewParam(nil, "argc", NewNamedType(nil, "int")))
	fn.AddParam(NewParam(nil, "argv", NewPointerType(nil, NewPointerType(nil, NewNamedType(nil, "char")))))

	body := NewBlock(nil)
	require.NoError(t, body.Push(NewDef(nil, "x", NewUnitType(nil))))
	fn.SetBody(body)
	require.NoError(t, root.Push(fn))

	assert.Equal(t,
		"(def (char*) msg)\n(fn (int) main ((int) argc (char**) argv) ((def () x)))",
		string(Encode(root)),
	)
}

func TestFprint(t *testing.T) {
	root := NewRoot()

	fn := NewFunction(nil, "main", NewNamedType(nil, "int"))
	fn.AddParam(NewParam(nil, "a", NewNamedType(nil, "int")))
	body := NewBlock(nil)
	require.NoError(t, body.Push(NewDef(nil, "x", NewNamedType(nil, "int"))))
	fn.SetBody(body)
	require.NoError(t, root.Push(fn))

	var buf bytes.Buffer
	Fprint(&buf, root)

	expected := "(root)[1]\n" +
		"    (function): main (int)\n" +
		"        (param): a (int)\n" +
		"        (block)[1]\n" +
		"            (def): x (int)\n"
	assert.Equal(t, expected, buf.String())
}
