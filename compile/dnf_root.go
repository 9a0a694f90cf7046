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
dnf_root.go implements the general (non-ternary) compilation path: given
the DNF a formula normalized to, build one decision per distinct atom
(fragmenting and handing it to dmn.Build, same as any other operator's
operand would be) and a root decision whose table has one input column
per atom and one rule per DNF clause.

This lives in package compile rather than package dmn because it needs
both dmn.Build and fragment.Fragment, and fragment already imports dmn
for its own Node type - dmn importing fragment back would cycle.
*/
package compile

import (
	"fmt"

	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/fragment"
	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/normalize"
	"github.com/jelfeel/drd/util"
)

/*
BuildRootFromDNF builds the root decision for dnf: one input column per
atom referenced anywhere in dnf (first-encounter order), one rule row per
clause with "true"/"false" cells for the atoms the clause actually
constrains and a blank don't-care cell for any atom it doesn't mention,
plus a trailing blank-row catch-all mapping every other combination to
"false". An absent atom on a row is always a don't-care, never a
shortcut for treating the whole row as unconditionally true.

The second return value is every decision nested inside an atom's own
Operator tree (built internally by dmn.Build as a side effect), so
the caller can hand the complete decision set to dmn.Assemble without
re-walking each atom's tree itself.

A literal that is not an atom registered during zipping means an earlier
phase broke its contract; that is fatal, never papered over.
*/
func BuildRootFromDNF(ctx *dmn.CompileContext, dnf normalize.DNF) (*dmn.Decision, []*dmn.Decision, error) {
	// A formula that is one single literal needs no clause table on top:
	// the atom's own decision (its operator table, or a not-wrapped one
	// for a negated literal) is the root. "empty field" is one decision
	// with an empty table, not an empty table plus a one-cell wrapper.
	if len(dnf.Clauses) == 1 && len(dnf.Clauses[0]) == 1 {
		lit := dnf.Clauses[0][0]
		ast, err := lookupAtom(ctx, lit)
		if err != nil {
			return nil, nil, err
		}
		if lit.Negated {
			ast = &lang.Node{Kind: lang.NodeUnary, Op: lang.TokenNot, Children: []*lang.Node{ast}}
		}
		node := fragment.Fragment(ast)
		dec := dmn.Build(ctx, node)
		return dec, dmn.CollectDecisions(node), nil
	}

	atomDecisions := map[string]*dmn.Decision{}
	var atomOrder []string
	var nested []*dmn.Decision

	for _, clause := range dnf.Clauses {
		for _, lit := range clause {
			original, err := lookupAtom(ctx, lit)
			if err != nil {
				return nil, nil, err
			}
			id := lit.Atom.Token.Val
			if _, ok := atomDecisions[id]; ok {
				continue
			}
			node := fragment.Fragment(original)
			atomDecisions[id] = dmn.Build(ctx, node)
			atomOrder = append(atomOrder, id)
			nested = append(nested, dmn.CollectDecisions(node)...)
		}
	}

	inputs := make([]dmn.InputColumn, len(atomOrder))
	for i, id := range atomOrder {
		inputs[i] = dmn.InputColumn{Label: atomDecisions[id].Name}
	}

	var rules []dmn.RuleTag
	for _, clause := range dnf.Clauses {
		present := map[string]bool{}
		negated := map[string]bool{}
		for _, lit := range clause {
			id := lit.Atom.Token.Val
			present[id] = true
			negated[id] = lit.Negated
		}

		entries := make([]string, len(atomOrder))
		for i, id := range atomOrder {
			switch {
			case !present[id]:
				entries[i] = ""
			case negated[id]:
				entries[i] = "false"
			default:
				entries[i] = "true"
			}
		}
		rules = append(rules, dmn.RuleTag{InputEntries: entries, OutputEntry: "true"})
	}
	rules = append(rules, dmn.RuleTag{InputEntries: make([]string, len(atomOrder)), OutputEntry: "false"})

	dec := &dmn.Decision{ID: ctx.NewXMLID("Decision_"), Name: ctx.NewXMLID("Decision")}
	dec.Table = &dmn.DecisionTable{Inputs: inputs, Output: "result", Rules: rules}

	var reqs []dmn.InformationRequirement
	for _, id := range atomOrder {
		reqs = append(reqs, dmn.InformationRequirement{
			ID:               ctx.NewXMLID("InformationRequirement_"),
			RequiredDecision: atomDecisions[id].ID,
		})
	}
	dec.Reqs = reqs

	return dec, nested, nil
}

func lookupAtom(ctx *dmn.CompileContext, lit normalize.Literal) (*lang.Node, error) {
	if lit.Atom.Kind != lang.NodeAtom || lit.Atom.Token == nil {
		return nil, util.NewTranslationError(ctx.Source, util.ErrUnknownConstruct,
			fmt.Sprintf("DNF literal is not an atom: %v", lit.Atom.Kind))
	}
	ast, ok := ctx.Operators[lit.Atom.Token.Val]
	if !ok {
		return nil, util.NewTranslationError(ctx.Source, util.ErrMissingOperator,
			fmt.Sprintf("atom %v has no registered operator", lit.Atom.Token.Val))
	}
	return ast, nil
}
