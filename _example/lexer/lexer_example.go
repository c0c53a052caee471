package main

import (
	"fmt"
	"log"

	"github.com/xiam/spl/lexer"
)

func main() {
	input := `
		(; a pointer and a function ;)
		(def (char*) greeting)
		(fn (int) main ((int) argc) ((def (u8) b)))
		"esc\x41ped" 0x1F 42 a>=b
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens.Tokens() {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
