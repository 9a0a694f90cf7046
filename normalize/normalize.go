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
Package normalize pushes "not" inward through and/or (De Morgan) until
it only ever wraps an atom, then splits the result into disjunctive
normal form - a list of clauses, each a conjunction of literals over
op_<N> atoms.

Per the typed-IR design of package zipper, this operates on the
*lang.Node skeleton directly rather than reparsing text; feel.OrSplitter/
AndSplitter still do the actual splitting.
*/
package normalize

import (
	"github.com/jelfeel/drd/feel"
	"github.com/jelfeel/drd/lang"
)

/*
Literal is one conjunct of a DNF clause: a reference to an atom,
possibly negated. For zipper.Zip output this is always an op_<N> atom,
even when the whole formula is a single proposition.
*/
type Literal struct {
	Atom    *lang.Node
	Negated bool
}

/*
DNF is a formula in disjunctive normal form: a disjunction of clauses,
each a conjunction of Literals.
*/
type DNF struct {
	Clauses [][]Literal
}

/*
Normalize converts a boolean skeleton (the output of zipper.Zip - and/or/
not over atoms, or a single atom) into DNF.
*/
func Normalize(skeleton *lang.Node) DNF {
	pushed := distribute(pushNegation(skeleton, false))

	var clauses [][]Literal
	for _, clauseNode := range feel.OrSplitter(pushed) {
		var literals []Literal
		for _, conjunct := range feel.AndSplitter(clauseNode) {
			literals = append(literals, toLiteral(conjunct))
		}
		clauses = append(clauses, literals)
	}

	return DNF{Clauses: clauses}
}

func toLiteral(n *lang.Node) Literal {
	if n.Kind == lang.NodeUnary && n.Op == lang.TokenNot {
		return Literal{Atom: n.Children[0], Negated: true}
	}
	return Literal{Atom: n, Negated: false}
}

/*
pushNegation pushes a pending negation down through and/or (De Morgan) so
that, by the time it reaches a leaf, "not" only ever wraps an atom -
never an and/or sub-formula. This must run before the OR/AND split:
!(A or B) and C splits into the single clause (!A and !B and C) only
once the negation has been pushed inside.
*/
func pushNegation(n *lang.Node, neg bool) *lang.Node {
	switch n.Kind {
	case lang.NodeOr:
		l, r := pushNegation(n.Children[0], neg), pushNegation(n.Children[1], neg)
		if neg {
			return &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{l, r}}
		}
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{l, r}}

	case lang.NodeAnd:
		l, r := pushNegation(n.Children[0], neg), pushNegation(n.Children[1], neg)
		if neg {
			return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{l, r}}
		}
		return &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{l, r}}

	case lang.NodeUnary:
		if n.Op == lang.TokenNot {
			return pushNegation(n.Children[0], !neg)
		}
	}

	if neg {
		return &lang.Node{Kind: lang.NodeUnary, Op: lang.TokenNot, Children: []*lang.Node{n}}
	}
	return n
}

/*
distribute rewrites and-over-or until no And has an Or child, completing
the conversion to DNF. A skeleton like (A or B) and C - or a ternary
expansion sitting under an and - is not in DNF after negation pushing
alone; the split-by-OR/split-by-AND pass would otherwise hand a compound
Or sub-formula off as if it were a single literal.
*/
func distribute(n *lang.Node) *lang.Node {
	switch n.Kind {
	case lang.NodeOr:
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{
			distribute(n.Children[0]), distribute(n.Children[1]),
		}}
	case lang.NodeAnd:
		return distributeAnd(distribute(n.Children[0]), distribute(n.Children[1]))
	}
	return n
}

func distributeAnd(l, r *lang.Node) *lang.Node {
	if l.Kind == lang.NodeOr {
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{
			distributeAnd(l.Children[0], r), distributeAnd(l.Children[1], r),
		}}
	}
	if r.Kind == lang.NodeOr {
		return &lang.Node{Kind: lang.NodeOr, Op: lang.TokenOr, Children: []*lang.Node{
			distributeAnd(l, r.Children[0]), distributeAnd(l, r.Children[1]),
		}}
	}
	return &lang.Node{Kind: lang.NodeAnd, Op: lang.TokenAnd, Children: []*lang.Node{l, r}}
}
