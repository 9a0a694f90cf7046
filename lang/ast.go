package lang

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

/*
NodeKind discriminates the AST node variants of the expression model:
ternaries, the boolean connectives, the non-logical binary operators, unary
operators and the leaf value/primitive forms.
*/
type NodeKind int

const (
	NodeTernary NodeKind = iota
	NodeOr
	NodeAnd
	NodeEquality
	NodeRelation
	NodeAlgebraic
	NodeMember
	NodeUnary
	NodeValue
	NodePrimitive

	// NodeAtom is not produced by the parser. It is the synthetic leaf the
	// zipper (package zipper) substitutes for a maximal simple operand:
	// Token.Val carries the op_<N> id, and
	// the original sub-tree it stands for lives in a CompileContext's
	// Operators map, keyed by that same id.
	NodeAtom
)

var nodeKindNames = map[NodeKind]string{
	NodeTernary:   "Ternary",
	NodeOr:        "Or",
	NodeAnd:       "And",
	NodeEquality:  "Equality",
	NodeRelation:  "Relation",
	NodeAlgebraic: "Algebraic",
	NodeMember:    "Member",
	NodeUnary:     "Unary",
	NodeValue:     "Value",
	NodePrimitive: "Primitive",
	NodeAtom:      "Atom",
}

func (k NodeKind) String() string {
	if n, ok := nodeKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

/*
Node is a node of the JavaEL (or FEEL) AST. A *Node pointer is itself the
stable identity the pipeline's side tables key on - nothing mutates a
node's shape once built, so its address is good for the lifetime of one
compile.

Op carries the operator token kind for Equality/Relation/Algebraic/Unary
nodes. Token is only set on leaf nodes (Value/Primitive) and carries the
literal/identifier text and its source span.
*/
type Node struct {
	Kind     NodeKind
	Op       TokenKind
	Token    *Token
	Children []*Node

	// Accessors holds dotted/bracket/call access chain elements attached to
	// a Value or Primitive leaf (".field", "[expr]", "()", "(args)").
	Accessors []Accessor
}

/*
AccessorKind distinguishes the three accessor kinds the grammar allows after
a primitive; AccessorCall covers both "()" and "(args)".
*/
type AccessorKind int

const (
	AccessorField AccessorKind = iota
	AccessorIndex
	AccessorCall
)

/*
Accessor is one link of a Value/Primitive's access chain.
*/
type Accessor struct {
	Kind AccessorKind
	Name string  // AccessorField: field name
	Expr *Node   // AccessorIndex: index expression
	Args []*Node // AccessorCall: call arguments
}

func newLeaf(kind NodeKind, t Token) *Node {
	tc := t
	return &Node{Kind: kind, Token: &tc}
}

func newNode(kind NodeKind, op TokenKind, children ...*Node) *Node {
	return &Node{Kind: kind, Op: op, Children: children}
}

/*
NewAtom builds a synthetic NodeAtom leaf carrying the given synthetic id
as its token text.
*/
func NewAtom(id string) *Node {
	return &Node{Kind: NodeAtom, Token: &Token{Kind: TokenIdentifier, Val: id}}
}

/*
IsTernary reports whether this node is a cond ? then : else node.
*/
func (n *Node) IsTernary() bool {
	return n != nil && n.Kind == NodeTernary
}

/*
IsLogical reports whether the node's own operator is a boolean connective
(or/and/not). Equality, relation, algebraic and member nodes are not -
their interior operator is non-logical even though they sit inside a
boolean formula.
*/
func (n *Node) IsLogical() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NodeOr, NodeAnd:
		return true
	case NodeUnary:
		return n.Op == TokenNot
	}
	return false
}

/*
String renders a debug tree as an indented dump.
*/
func (n *Node) String() string {
	var buf bytes.Buffer
	n.levelString(0, &buf)
	return buf.String()
}

func (n *Node) levelString(indent int, buf *bytes.Buffer) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	switch n.Kind {
	case NodeValue, NodePrimitive, NodeAtom:
		if n.Token != nil {
			buf.WriteString(fmt.Sprintf("%v: %v", n.Kind, n.Token.Val))
		} else {
			buf.WriteString(n.Kind.String())
		}
	case NodeUnary, NodeEquality, NodeRelation, NodeAlgebraic, NodeMember:
		buf.WriteString(fmt.Sprintf("%v(%v)", n.Kind, n.Op))
	default:
		buf.WriteString(n.Kind.String())
	}

	buf.WriteString("\n")

	for _, c := range n.Children {
		c.levelString(indent+1, buf)
	}
}
