package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	switch v := n.(type) {
	case *Root:
		fmt.Fprintf(w, "%s%v\n", indent, v)
		for _, child := range v.List() {
			printLevel(w, child, level+1)
		}

	case *Block:
		fmt.Fprintf(w, "%s%v\n", indent, v)
		for _, child := range v.List() {
			printLevel(w, child, level+1)
		}

	case *Function:
		fmt.Fprintf(w, "%s(%v): %s %v\n", indent, v.Type(), v.Name(), v.Result())
		for _, param := range v.Params() {
			printLevel(w, param, level+1)
		}
		if v.Body() != nil {
			printLevel(w, v.Body(), level+1)
		}

	case *Def, *Param, *TypeExpr:
		fmt.Fprintf(w, "%s%v\n", indent, v)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into SPL source. Parsing the output of Encode
// gives back an equivalent tree.
func Encode(n Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n Node) string {
	if n == nil {
		return ""
	}

	switch v := n.(type) {
	case *Root:
		items := make([]string, 0, len(v.List()))
		for _, child := range v.List() {
			items = append(items, encodeNode(child))
		}
		return strings.Join(items, "\n")

	case *Block:
		items := make([]string, 0, len(v.List()))
		for _, child := range v.List() {
			items = append(items, encodeNode(child))
		}
		return fmt.Sprintf("(%s)", strings.Join(items, " "))

	case *Def:
		return fmt.Sprintf("(def %v %s)", v.TypeExpr(), v.Name())

	case *Param:
		return fmt.Sprintf("%v %s", v.TypeExpr(), v.Name())

	case *Function:
		params := make([]string, 0, len(v.Params()))
		for _, param := range v.Params() {
			params = append(params, encodeNode(param))
		}
		body := "()"
		if v.Body() != nil {
			body = encodeNode(v.Body())
		}
		return fmt.Sprintf("(fn %v %s (%s) %s)", v.Result(), v.Name(), strings.Join(params, " "), body)

	case *TypeExpr:
		return v.String()

	default:
		panic("unknown node type")
	}
}
