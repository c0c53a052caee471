// Package spl is the front end of SPL, a small s-expression language: it
// turns source text into tokens and tokens into a tree of definitions and
// functions.
package spl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xiam/spl/ast"
	"github.com/xiam/spl/lexer"
	"github.com/xiam/spl/parser"
)

// ErrEmptyProgram is returned by ReadFile when the file has no content.
var ErrEmptyProgram = errors.New("empty program")

// Example is a minimal program, shown to users that feed an empty file.
const Example = `(fn (int) main ()
    ((def (int) x)))`

// Reader parses SPL source coming from an io.Reader
type Reader struct {
	r    io.Reader
	opts []lexer.Option
}

// NewReader creates a Reader, opts are passed to the lexer
func NewReader(r io.Reader, opts ...lexer.Option) *Reader {
	return &Reader{r: r, opts: opts}
}

// Parse reads everything from the underlying reader and parses it
func (r *Reader) Parse() (*ast.Root, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return Parse(in, r.opts...)
}

// Tokenize scans in
func Tokenize(in []byte, opts ...lexer.Option) (*lexer.Stream, error) {
	return lexer.Tokenize(in, opts...)
}

// Parse scans and parses in
func Parse(in []byte, opts ...lexer.Option) (*ast.Root, error) {
	return parser.Parse(in, opts...)
}

// ReadFile loads a source file as raw bytes. An empty file gives back
// ErrEmptyProgram along with the (empty) content.
func ReadFile(path string) ([]byte, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	if len(in) == 0 {
		return in, ErrEmptyProgram
	}
	return in, nil
}

// ParseFile reads and parses the file at path
func ParseFile(path string, opts ...lexer.Option) (*ast.Root, error) {
	in, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(in, opts...)
}
