/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package fragment is the KNF->DMN fragmenter: given the original JavaEL
AST sub-tree an op_<N> atom stood for, it walks that sub-tree and splits
out a dmn.Operator child for every non-logical operator (relational,
equality, unary not/empty, arithmetic) it finds, recursing into each
operand so that a chain like "not not empty x" peels off one dmn.Operator
per unary token, and an arithmetic operand nested inside a relation gets
its own Operator node in turn.

Because the pipeline keeps a typed IR end to end instead of round-
tripping through text between stages, there is no textual span-rewrite
or "colors" list here: fragment.Fragment returns the dmn.Node tree
directly, and a moved operand is simply that tree's child rather than a
placeholder substituted into a string.
*/
package fragment

import (
	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/feel"
	"github.com/jelfeel/drd/lang"
)

/*
Fragment splits n (the JavaEL AST sub-tree an atom stands for) into a DMN
node tree: one dmn.Operator per non-logical operator on the path from n
down to its leaves, each operator's operands fragmented in turn, bottoming
out in dmn.Expression leaves for whatever has no operator left to split
out (identifier/literal references, function calls, unary minus, and any
ternary that survived because it sat inside a relational/arithmetic
operand rather than at the top of a simple operand).
*/
func Fragment(n *lang.Node) *dmn.Node {
	switch n.Kind {
	case lang.NodeEquality:
		return binaryOperator(eqOp(n.Op), n)

	case lang.NodeRelation:
		return binaryOperator(relOp(n.Op), n)

	case lang.NodeAlgebraic, lang.NodeMember:
		return binaryOperator(arithOp(n.Op), n)

	case lang.NodeUnary:
		switch n.Op {
		case lang.TokenNot:
			return unaryOperator(dmn.OpNot, n)
		case lang.TokenEmpty:
			return unaryOperator(dmn.OpEmpty, n)
		}
		// Unary minus is arithmetic negation, not a relation/equality/
		// empty/not test, so it stays inside the leaf's translated text
		// instead of becoming its own Operator node.
		return leafExpression(n)

	default:
		return leafExpression(n)
	}
}

func binaryOperator(op dmn.OperatorKind, n *lang.Node) *dmn.Node {
	return &dmn.Node{
		Kind:     dmn.KindOperator,
		Op:       op,
		Contexts: []*lang.Node{n},
		Children: []*dmn.Node{Fragment(n.Children[0]), Fragment(n.Children[1])},
	}
}

func unaryOperator(op dmn.OperatorKind, n *lang.Node) *dmn.Node {
	return &dmn.Node{
		Kind:     dmn.KindOperator,
		Op:       op,
		Contexts: []*lang.Node{n},
		Children: []*dmn.Node{Fragment(n.Children[0])},
	}
}

func leafExpression(n *lang.Node) *dmn.Node {
	return &dmn.Node{
		Kind:     dmn.KindExpression,
		Text:     feel.Translate(n),
		Contexts: []*lang.Node{n},
	}
}

func eqOp(op lang.TokenKind) dmn.OperatorKind {
	if op == lang.TokenEqual {
		return dmn.OpEq
	}
	return dmn.OpNe
}

func relOp(op lang.TokenKind) dmn.OperatorKind {
	switch op {
	case lang.TokenGreater:
		return dmn.OpGt
	case lang.TokenLess:
		return dmn.OpLt
	case lang.TokenGreaterEqual:
		return dmn.OpGe
	case lang.TokenLessEqual:
		return dmn.OpLe
	}
	return dmn.OpGt
}

func arithOp(op lang.TokenKind) dmn.OperatorKind {
	switch op {
	case lang.TokenPlus:
		return dmn.OpAdd
	case lang.TokenMinus:
		return dmn.OpSub
	case lang.TokenMul:
		return dmn.OpMul
	case lang.TokenDiv:
		return dmn.OpDiv
	case lang.TokenMod:
		return dmn.OpMod
	}
	return dmn.OpAdd
}
