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

import "github.com/jelfeel/drd/lang"

/*
ExtractIdentifiers is the identifier visitor the DMN builder uses to
discover the input identifiers a (possibly already-fragmented) FEEL
expression reads. It walks the whole sub-tree, including index
expressions and call arguments, so a reference buried inside a function
call's argument still counts. Dotted field accessors extend an
identifier's name ("fields.a"); an index or call accessor ends the name
but does not stop the walk into its own sub-expressions. Names are
returned in first-encounter order, deduplicated.
*/
func ExtractIdentifiers(n *lang.Node) []string {
	seen := make(map[string]bool)
	var order []string

	var walk func(n *lang.Node)
	walk = func(n *lang.Node) {
		if n == nil {
			return
		}

		switch n.Kind {
		case lang.NodeValue, lang.NodePrimitive:
			if n.Token != nil && n.Token.Kind == lang.TokenIdentifier {
				name := n.Token.Val
				for _, a := range n.Accessors {
					if a.Kind != lang.AccessorField {
						break
					}
					name += "." + a.Name
				}
				if !seen[name] {
					seen[name] = true
					order = append(order, name)
				}
			}
			for _, a := range n.Accessors {
				switch a.Kind {
				case lang.AccessorIndex:
					walk(a.Expr)
				case lang.AccessorCall:
					for _, arg := range a.Args {
						walk(arg)
					}
				}
			}
		default:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}

	walk(n)
	return order
}

/*
IsBooleanMethodCall reports whether n is a single-token cell that is
itself a zero-argument method call on a dotted path (a.b.isSet()): such
a cell is never treated as a literal rvalue output, always as the
boolean/information-source case. A bare call without a dotted receiver
(check()) does not qualify.
*/
func IsBooleanMethodCall(n *lang.Node) bool {
	if n == nil || n.Token == nil || n.Token.Kind != lang.TokenIdentifier {
		return false
	}
	if len(n.Accessors) < 2 {
		return false
	}
	last := n.Accessors[len(n.Accessors)-1]
	if last.Kind != lang.AccessorCall || len(last.Args) != 0 {
		return false
	}
	return n.Accessors[len(n.Accessors)-2].Kind == lang.AccessorField
}
