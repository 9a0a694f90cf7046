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
ternary_root.go handles the case where the whole formula is itself a
(possibly nested) ternary: building it through the general DNF route
would throw away the fact that its result is a value, not a boolean, and
would force an artificial boolean atomization of each branch. Instead
every distinct ternary predicate gets its own decision, and the root
decision table enumerates every combination of those predicates' truth
values - each row's output literal being whichever branch a root-to-leaf
walk of the ternary tree under that combination reaches, exactly
JavaEL's own ternary semantics unrolled into a table instead of nested
conditionals.

Because every combination is an explicit row, this table needs no
catch-all row (contrast dnf_root.go, whose clause-based rows are not
exhaustive on their own).
*/
package compile

import (
	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/feel"
	"github.com/jelfeel/drd/fragment"
	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/ternary"
)

/*
BuildTernaryRoot builds the root decision for root, a ternary node whose
then- and/or else-branches may nest further ternaries. The second return
value is every decision nested inside a predicate's own Operator tree
(built internally by dmn.Build as a side effect), so the caller can hand
the complete decision set to dmn.Assemble without re-walking each
predicate's tree itself.
*/
func BuildTernaryRoot(ctx *dmn.CompileContext, root *lang.Node) (*dmn.Decision, []*dmn.Decision) {
	// One decision per distinct predicate occurring at any ternary node,
	// in pre-order encounter order. The same predicate text appearing at
	// two nesting positions shares one decision and one table column.
	var predOrder []string
	predIndex := map[string]int{}
	var predDecisions []*dmn.Decision
	var nested []*dmn.Decision

	for _, tn := range ternary.Collect(root) {
		cond := tn.Children[0]
		key := lang.Print(cond)
		if _, ok := predIndex[key]; ok {
			continue
		}
		predIndex[key] = len(predOrder)
		predOrder = append(predOrder, key)

		node := fragment.Fragment(cond)
		predDecisions = append(predDecisions, dmn.Build(ctx, node))
		nested = append(nested, dmn.CollectDecisions(node)...)
	}

	k := len(predOrder)

	inputs := make([]dmn.InputColumn, k)
	for i := range inputs {
		inputs[i] = dmn.InputColumn{Label: predDecisions[i].Name}
	}

	// All-true first, all-false last, so the first row of a depth-1 table
	// is (true -> then) and the last (false -> else).
	rules := make([]dmn.RuleTag, 0, 1<<k)
	for mask := (1 << k) - 1; mask >= 0; mask-- {
		entries := make([]string, k)
		rowBit := make([]bool, k)
		for i := 0; i < k; i++ {
			rowBit[i] = mask&(1<<(k-1-i)) != 0
			if rowBit[i] {
				entries[i] = "true"
			} else {
				entries[i] = "false"
			}
		}

		bits := pathBits(root, predIndex, rowBit)
		leaf := ternary.SelectBranch(root, bits)
		rules = append(rules, dmn.RuleTag{InputEntries: entries, OutputEntry: feel.Translate(leaf)})
	}

	dec := &dmn.Decision{ID: ctx.NewXMLID("Decision_"), Name: ctx.NewXMLID("Decision")}
	dec.Table = &dmn.DecisionTable{Inputs: inputs, Output: "result", Rules: rules}

	var reqs []dmn.InformationRequirement
	for _, cd := range predDecisions {
		reqs = append(reqs, dmn.InformationRequirement{
			ID:               ctx.NewXMLID("InformationRequirement_"),
			RequiredDecision: cd.ID,
		})
	}
	dec.Reqs = reqs

	return dec, nested
}

/*
pathBits converts one row's per-predicate truth values into the
root-to-leaf bit vector SelectBranch consumes: walk the ternary tree from
root, and at each ternary node look up the bit its predicate's column was
assigned for this row. The resulting vector lists the visited nodes'
bits in visit order - which is not column order once ternaries nest in
a then-branch, hence the indirection through predIndex.
*/
func pathBits(root *lang.Node, predIndex map[string]int, rowBit []bool) []bool {
	var bits []bool

	cur := root
	for cur != nil && cur.IsTernary() {
		b := rowBit[predIndex[lang.Print(cur.Children[0])]]
		bits = append(bits, b)
		if b {
			cur = cur.Children[1]
		} else {
			cur = cur.Children[2]
		}
	}

	return bits
}
