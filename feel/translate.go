/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package feel

import (
	"fmt"
	"strings"

	"github.com/jelfeel/drd/lang"
)

/*
Translate rewrites a JavaEL AST sub-tree to its FEEL surface syntax:
eq/== becomes "=", ne/!= becomes a not()-wrapped equality, the word-form
and symbolic relational operators collapse onto FEEL's symbols, "not X"
becomes "not( X )", "empty X" becomes "X = null", and a ternary that
survived fragmentation (fragmentation only ever splits out unary/binary
non-logical operators, never a bare ternary) becomes
"if C then A else B". Dotted identifier access chains are left as-is -
FEEL uses the same dotted notation.
*/
func Translate(n *lang.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case lang.NodeTernary:
		return fmt.Sprintf("if %s then %s else %s",
			Translate(n.Children[0]), Translate(n.Children[1]), Translate(n.Children[2]))

	case lang.NodeOr:
		return fmt.Sprintf("%s or %s", Translate(n.Children[0]), Translate(n.Children[1]))

	case lang.NodeAnd:
		return fmt.Sprintf("%s and %s", Translate(n.Children[0]), Translate(n.Children[1]))

	case lang.NodeEquality:
		l, r := Translate(n.Children[0]), Translate(n.Children[1])
		if n.Op == lang.TokenEqual {
			return fmt.Sprintf("%s = %s", l, r)
		}
		return fmt.Sprintf("not(%s = %s)", l, r)

	case lang.NodeRelation:
		return fmt.Sprintf("%s %s %s", Translate(n.Children[0]), relSymbol(n.Op), Translate(n.Children[1]))

	case lang.NodeAlgebraic, lang.NodeMember:
		return fmt.Sprintf("%s %s %s", Translate(n.Children[0]), arithSymbol(n.Op), Translate(n.Children[1]))

	case lang.NodeUnary:
		switch n.Op {
		case lang.TokenNot:
			return fmt.Sprintf("not( %s )", Translate(n.Children[0]))
		case lang.TokenEmpty:
			return fmt.Sprintf("%s = null", Translate(n.Children[0]))
		case lang.TokenMinus:
			return fmt.Sprintf("-%s", Translate(n.Children[0]))
		}

	case lang.NodeValue, lang.NodePrimitive, lang.NodeAtom:
		return translateLeaf(n)
	}

	return lang.Print(n)
}

func relSymbol(op lang.TokenKind) string {
	switch op {
	case lang.TokenGreater:
		return ">"
	case lang.TokenLess:
		return "<"
	case lang.TokenGreaterEqual:
		return ">="
	case lang.TokenLessEqual:
		return "<="
	}
	return "?"
}

func arithSymbol(op lang.TokenKind) string {
	switch op {
	case lang.TokenPlus:
		return "+"
	case lang.TokenMinus:
		return "-"
	case lang.TokenMul:
		return "*"
	case lang.TokenDiv:
		return "/"
	case lang.TokenMod:
		return "%"
	}
	return "?"
}

func translateLeaf(n *lang.Node) string {
	var b strings.Builder

	if n.Kind == lang.NodeAtom {
		b.WriteString(n.Token.Val)
	} else if n.Token != nil {
		if n.Token.Kind == lang.TokenStringLiteral {
			b.WriteString("\"")
			b.WriteString(n.Token.Val)
			b.WriteString("\"")
		} else {
			b.WriteString(n.Token.Val)
		}
	}

	for _, a := range n.Accessors {
		switch a.Kind {
		case lang.AccessorField:
			b.WriteString(".")
			b.WriteString(a.Name)
		case lang.AccessorIndex:
			b.WriteString("[")
			b.WriteString(Translate(a.Expr))
			b.WriteString("]")
		case lang.AccessorCall:
			b.WriteString("(")
			for i, arg := range a.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(Translate(arg))
			}
			b.WriteString(")")
		}
	}

	return b.String()
}
