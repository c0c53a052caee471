package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/xiam/spl/lexer"
)

var colorToken = lipgloss.Color("10")

// dumpTokens lists every token with its kind and decoded payload: string
// bytes in hex, one per line, and number values in decimal.
func dumpTokens(w io.Writer, tokens *lexer.Stream, color bool) {
	highlight := func(s string) string {
		return s
	}
	if color {
		style := lipgloss.NewRenderer(w).NewStyle().Foreground(colorToken)
		highlight = func(s string) string {
			return style.Render(s)
		}
	}

	fmt.Fprintf(w, "showing %d tokens\n", tokens.Len())
	for i, tok := range tokens.Tokens() {
		fmt.Fprintf(w, "  %02d %s [%02x %v]\n", i, highlight(tok.Text()), uint8(tok.Type()), tok.Type())

		switch tok.Type() {
		case lexer.TokenString:
			for j, b := range tok.Bytes() {
				fmt.Fprintf(w, "    %02d %02x\n", j, b)
			}
		case lexer.TokenNumber:
			v, _ := tok.Uint()
			fmt.Fprintf(w, "    %d\n", v)
		}
	}
	fmt.Fprintln(w, "end")
}
