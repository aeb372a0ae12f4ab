package expr

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/gatesym/core"
	"github.com/xDarkicex/gatesym/gate"
)

// NodeType identifies the operator (or leaf kind) an ASTNode represents.
type NodeType int

const (
	NodeVariable NodeType = iota
	NodeConstant
	NodeNot
	NodeAnd
	NodeOr
	NodeXor
	NodeNand
	NodeNor
	NodeImplies
	NodeIff
)

func (nt NodeType) String() string {
	switch nt {
	case NodeVariable:
		return "Variable"
	case NodeConstant:
		return "Constant"
	case NodeNot:
		return "Not"
	case NodeAnd:
		return "And"
	case NodeOr:
		return "Or"
	case NodeXor:
		return "Xor"
	case NodeNand:
		return "Nand"
	case NodeNor:
		return "Nor"
	case NodeImplies:
		return "Implies"
	case NodeIff:
		return "Iff"
	default:
		return "Unknown"
	}
}

// ASTNode is a node of a parsed boolean expression.
type ASTNode struct {
	Type     NodeType
	Value    string
	Children []*ASTNode
	Position int
}

// Compile walks node, building the equivalent gate.Gate tree on net. vars
// maps variable names to pre-built gates (typically gate.Switch handles);
// an undefined variable is a compile error, not a panic, since it
// typically reflects a user-supplied expression string.
func Compile(net *core.Network, node *ASTNode, vars map[string]gate.Gate) (gate.Gate, error) {
	switch node.Type {
	case NodeVariable:
		g, ok := vars[node.Value]
		if !ok {
			return gate.Gate{}, newSyntaxError("Compile", node.Position, "undefined variable: "+node.Value)
		}
		return g, nil

	case NodeConstant:
		lower := strings.ToLower(node.Value)
		return gate.Tie(net, lower == "true" || lower == "1" || lower == "t"), nil

	case NodeNot:
		child, err := Compile(net, node.Children[0], vars)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.Not(child), nil

	case NodeAnd, NodeNand:
		l, r, err := compilePair(net, node, vars)
		if err != nil {
			return gate.Gate{}, err
		}
		out := gate.And(l, r)
		if node.Type == NodeNand {
			out = gate.Not(out)
		}
		return out, nil

	case NodeOr, NodeNor:
		l, r, err := compilePair(net, node, vars)
		if err != nil {
			return gate.Gate{}, err
		}
		out := gate.Or(l, r)
		if node.Type == NodeNor {
			out = gate.Not(out)
		}
		return out, nil

	case NodeXor:
		l, r, err := compilePair(net, node, vars)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.Xor(l, r), nil

	case NodeImplies:
		l, r, err := compilePair(net, node, vars)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.Or(gate.Not(l), r), nil

	case NodeIff:
		l, r, err := compilePair(net, node, vars)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.Not(gate.Xor(l, r)), nil

	default:
		return gate.Gate{}, newSyntaxError("Compile", node.Position, fmt.Sprintf("unknown node type: %v", node.Type))
	}
}

func compilePair(net *core.Network, node *ASTNode, vars map[string]gate.Gate) (gate.Gate, gate.Gate, error) {
	l, err := Compile(net, node.Children[0], vars)
	if err != nil {
		return gate.Gate{}, gate.Gate{}, err
	}
	r, err := Compile(net, node.Children[1], vars)
	if err != nil {
		return gate.Gate{}, gate.Gate{}, err
	}
	return l, r, nil
}
