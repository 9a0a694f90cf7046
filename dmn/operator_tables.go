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
operator_tables.go builds the canonical decision tables for each
non-logical operator.

JavaEL allows *both* operands of a relation or arithmetic operator to be
arbitrary sub-expressions (a nested algebraic formula, another call
chain), not just "reference vs literal" - so splitting the table into
two independently-testable columns, one per operand, is not always well
defined. This file resolves that by always building a single
combined-expression input column (the full binary FEEL rendering of the
operator applied to both operands) and testing that column's computed
boolean value against a literal "true"/"false" cell - the same
one-column shape buildAtomExpressionDecision already uses for a bare
atom. The two operands' own InputData dependencies are still tracked and
still surface as informationRequirements (buildOperatorDecision does
that from the operand list directly, not from this table's columns).
*/
package dmn

import "fmt"

func feelSymbol(op OperatorKind) string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	}
	return "?"
}

/*
relationalTable builds the eq/ne/lt/le/gt/ge table: a single input column
holding the binary FEEL comparison, true when it holds and false
otherwise.
*/
func relationalTable(op OperatorKind, a, b operand) *DecisionTable {
	label := fmt.Sprintf("%s %s %s", a.Text, feelSymbol(op), b.Text)
	return &DecisionTable{
		Inputs: []InputColumn{{Label: label, Sources: append(append([]*InputData{}, a.InputData...), b.InputData...)}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{"true"}, OutputEntry: "true"},
			{InputEntries: []string{""}, OutputEntry: "false"},
		},
	}
}

/*
notTable builds the unary "not" table: false when the operand holds,
catch-all true otherwise.
*/
func notTable(a operand) *DecisionTable {
	return &DecisionTable{
		Inputs: []InputColumn{{Label: a.Text, Sources: a.InputData}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{"true"}, OutputEntry: "false"},
			{InputEntries: []string{""}, OutputEntry: "true"},
		},
	}
}

/*
emptyTable builds the unary "empty" table: true when the operand is
null, false otherwise.
*/
func emptyTable(a operand) *DecisionTable {
	return &DecisionTable{
		Inputs: []InputColumn{{Label: a.Text, Sources: a.InputData}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{"null"}, OutputEntry: "true"},
			{InputEntries: []string{""}, OutputEntry: "false"},
		},
	}
}

/*
arithmeticTable handles +, -, *, /, %: these never appear as a clause's
boolean literal on their own, only nested inside a relation or
equality's operand. A single always-applicable rule recombines the two
operand texts through the arithmetic FEEL symbol and emits that as the
decision's (non-boolean) output literal, so a relation built on top of
this decision can still reference it as an ordinary dependency.
*/
func arithmeticTable(op OperatorKind, a, b operand) *DecisionTable {
	combined := fmt.Sprintf("%s %s %s", a.Text, feelSymbol(op), b.Text)
	deps := append(append([]*InputData{}, a.InputData...), b.InputData...)
	return &DecisionTable{
		Inputs: []InputColumn{{Label: "-", Sources: deps}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{""}, OutputEntry: combined},
		},
	}
}
