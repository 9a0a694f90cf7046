/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package zipper

import (
	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/lang"
)

/*
Zip is the formula zipper: a pre-order walk of root that emits a
synthetic op_<N> atom for every node marked as a simple operand
(registering the original sub-tree in ctx.Operators), expands a ternary
into its disjunctive form, and otherwise rebuilds the and/or/not
connective with its children zipped.

Result equivalence is what matters, not textual intermediates, so this
returns a *lang.Node skeleton rather than a string - the And/Or/Unary
nodes the ternary expansion builds are ordinary lang.Node values, just
not ones the parser produced.

The ternary case intentionally omits the classical third conjunct
(a and b): (! (c) and b) or (c and a). This is the pipeline's current,
preserved definition of ternary expansion, not an oversight.
*/
func Zip(ctx *dmn.CompileContext, root *lang.Node) *lang.Node {
	marks := MarkSimpleOperands(root)
	return zip(ctx, root, marks)
}

func zip(ctx *dmn.CompileContext, n *lang.Node, marks map[*lang.Node]bool) *lang.Node {
	if n == nil {
		return nil
	}

	if marks[n] {
		id := ctx.NewAtomID()
		ctx.Operators[id] = n
		return lang.NewAtom(id)
	}

	switch n.Kind {
	case lang.NodeTernary:
		c := zip(ctx, n.Children[0], marks)
		a := zip(ctx, n.Children[1], marks)
		b := zip(ctx, n.Children[2], marks)

		notC := &lang.Node{Kind: lang.NodeUnary, Op: lang.TokenNot, Children: []*lang.Node{c}}
		left := &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{notC, b}}
		right := &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{c, a}}
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{left, right}}

	case lang.NodeOr:
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{
			zip(ctx, n.Children[0], marks), zip(ctx, n.Children[1], marks),
		}}

	case lang.NodeAnd:
		return &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{
			zip(ctx, n.Children[0], marks), zip(ctx, n.Children[1], marks),
		}}

	case lang.NodeUnary: // only reaches here for Op == TokenNot, see MarkSimpleOperands
		return &lang.Node{Kind: lang.NodeUnary, Op: lang.TokenNot, Children: []*lang.Node{
			zip(ctx, n.Children[0], marks),
		}}
	}

	// Unreachable: every other node kind is always marked simple.
	id := ctx.NewAtomID()
	ctx.Operators[id] = n
	return lang.NewAtom(id)
}
