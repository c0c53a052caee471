package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeTypeExpr NodeType = 128
	nodeTypeVector   NodeType = 256

	NodeTypeDef      NodeType = 1
	NodeTypeFunction NodeType = 2
	NodeTypeParam    NodeType = 4

	NodeTypeUnit    = nodeTypeTypeExpr | 1
	NodeTypeNamed   = nodeTypeTypeExpr | 2
	NodeTypePointer = nodeTypeTypeExpr | 4

	NodeTypeRoot  = nodeTypeVector | 1
	NodeTypeBlock = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsTypeExpr returns true for the unit, named and pointer types
func (nt NodeType) IsTypeExpr() bool {
	return nt&nodeTypeTypeExpr > 0
}

// IsVector returns true for nodes that hold a list of children
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeDef:      "def",
	NodeTypeFunction: "function",
	NodeTypeParam:    "param",
	NodeTypeUnit:     "unit",
	NodeTypeNamed:    "named",
	NodeTypePointer:  "pointer",
	NodeTypeRoot:     "root",
	NodeTypeBlock:    "block",
}
