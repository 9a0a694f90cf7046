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
Package zipper finds the maximal sub-trees of a JavaEL AST that contain
no further logical connective, and replaces each with a synthetic
op_<N> atom so the residual is a purely boolean skeleton.

Side-table attributes stay out of the AST itself: MarkSimpleOperands
returns a map keyed by node identity rather than mutating Node.
*/
package zipper

import "github.com/jelfeel/drd/lang"

/*
MarkSimpleOperands walks root and returns the set of nodes that are a
maximal simple operand - a sub-tree with no logical connective (or, and,
unary not) at its own root. Or/And chains and the unary-not operand
recurse without marking themselves, so only the
outermost simple node under each connective ends up in the set; a
ternary also recurses unmarked into all three of its children, since its
branches may themselves contain further connectives.
*/
func MarkSimpleOperands(root *lang.Node) map[*lang.Node]bool {
	marks := make(map[*lang.Node]bool)

	var walk func(n *lang.Node)
	walk = func(n *lang.Node) {
		if n == nil {
			return
		}

		switch n.Kind {
		case lang.NodeOr, lang.NodeAnd:
			walk(n.Children[0])
			walk(n.Children[1])

		case lang.NodeTernary:
			walk(n.Children[0])
			walk(n.Children[1])
			walk(n.Children[2])

		case lang.NodeUnary:
			if n.Op == lang.TokenNot {
				walk(n.Children[0])
				return
			}
			marks[n] = true

		default:
			// Equality, Relation, Algebraic, Member, Value, Primitive: their
			// interior operator is non-logical, so the whole node is simple.
			marks[n] = true
		}
	}

	walk(root)
	return marks
}
