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
Package ternary collects every ternary-shaped node in an AST, measures
how deeply ternaries nest directly into one another, and selects the
leaf a given boolean vector reaches.
*/
package ternary

import "github.com/jelfeel/drd/lang"

/*
Collect descends n, returning every node whose shape is a ternary
(cond ? then : else), in pre-order.
*/
func Collect(n *lang.Node) []*lang.Node {
	var out []*lang.Node
	var walk func(n *lang.Node)
	walk = func(n *lang.Node) {
		if n == nil {
			return
		}
		if n.IsTernary() {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

/*
NestingDepth measures the longest ternary-to-ternary chain starting at n,
following only the then/else children and only while they are themselves
ternaries. A non-ternary n has depth 0; a single, non-nested ternary has
depth 1, falling out of the recursion naturally with no special case
needed for the root.
*/
func NestingDepth(n *lang.Node) int {
	if n == nil || !n.IsTernary() {
		return 0
	}

	then, els := n.Children[1], n.Children[2]
	d := 1

	if thenDepth := NestingDepth(then); thenDepth+1 > d {
		d = thenDepth + 1
	}
	if elseDepth := NestingDepth(els); elseDepth+1 > d {
		d = elseDepth + 1
	}

	return d
}

/*
SelectBranch traverses the ternary tree rooted at n, consuming bits in
root-to-leaf order: true chooses the then-branch, false the else-branch.
It stops and returns the first non-ternary node reached - if the bit
vector runs out first, the remaining choices default to false (the
else-branch), so a short vector still reaches a well-defined leaf.
*/
func SelectBranch(n *lang.Node, bits []bool) *lang.Node {
	cur := n
	i := 0

	for cur != nil && cur.IsTernary() {
		choice := false
		if i < len(bits) {
			choice = bits[i]
		}
		i++

		if choice {
			cur = cur.Children[1]
		} else {
			cur = cur.Children[2]
		}
	}

	return cur
}
