package main

import (
	"log"

	"github.com/xiam/spl/ast"
	"github.com/xiam/spl/parser"
)

func main() {
	input := `(def (char**) argv) (fn (int) main ((int) argc) ((def (int*) p)))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
