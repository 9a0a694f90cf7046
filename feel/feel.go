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
Package feel covers the FEEL re-parser and TreePrinter, the splitting
primitives (OrSplitter/AndSplitter) the normalizer uses, and translating
JavaEL's operator surface to FEEL. Result equivalence is what matters,
not textual intermediates, so this package keeps the pipeline on the
typed *lang.Node IR throughout rather than oscillating between text and
tree - Parse and Print exist only for the boundary cases that genuinely
need a string (the document's final decision-table cell text, and
round-trip tests).
*/
package feel

import "github.com/jelfeel/drd/lang"

/*
Parse parses the small FEEL sub-grammar (or, and, comparison, function
invocation, name references, parenthesized expressions) needed once a
formula has been reduced to its boolean residual. FEEL is syntactically a
subset of JavaEL, so this is package lang's own parser under another
name.
*/
func Parse(name, input string) (*lang.Node, error) {
	return lang.ParseFEEL(name, input)
}

/*
Print serializes a FEEL sub-tree back to a string.
*/
func Print(n *lang.Node) string {
	return lang.Print(n)
}

/*
OrSplitter flattens an outermost chain of Or nodes into its clause list.
A node that is not itself an Or is its own single-element clause list.
*/
func OrSplitter(n *lang.Node) []*lang.Node {
	if n == nil {
		return nil
	}
	if n.Kind == lang.NodeOr {
		return append(OrSplitter(n.Children[0]), OrSplitter(n.Children[1])...)
	}
	return []*lang.Node{n}
}

/*
AndSplitter flattens an outermost chain of And nodes into its conjunct
list.
*/
func AndSplitter(n *lang.Node) []*lang.Node {
	if n == nil {
		return nil
	}
	if n.Kind == lang.NodeAnd {
		return append(AndSplitter(n.Children[0]), AndSplitter(n.Children[1])...)
	}
	return []*lang.Node{n}
}
