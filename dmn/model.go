/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package dmn

import "github.com/jelfeel/drd/lang"

/*
Kind discriminates the two DMN tree node variants.
*/
type Kind int

const (
	KindExpression Kind = iota
	KindOperator
)

/*
OperatorKind identifies which of the non-logical operators an Operator
node stands for.
*/
type OperatorKind int

const (
	OpEq OperatorKind = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpNot
	OpEmpty
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var operatorKindNames = map[OperatorKind]string{
	OpEq: "eq", OpNe: "ne", OpLt: "lt", OpLe: "le", OpGt: "gt", OpGe: "ge",
	OpNot: "not", OpEmpty: "empty",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
}

func (k OperatorKind) String() string {
	if n, ok := operatorKindNames[k]; ok {
		return n
	}
	return "?"
}

/*
Node is one node of the DMN tree. An Expression node carries its
FEEL-shaped text and the JavaEL AST contexts it originated from; an
Operator node represents a single non-logical operator and owns one or
two Expression/Operator children.

Node is built bottom-up by package fragment and consumed by package dmn's
own builder (Build, in build.go) to produce Decision/DecisionTable values.
Once a Node has a Decision built for it, ID and Decision are filled in
so that parents can reference it as a dependency.
*/
type Node struct {
	Kind     Kind
	Op       OperatorKind
	Text     string
	Contexts []*lang.Node
	Children []*Node

	// ID is this node's stable internal identity - lazily allocated the
	// first time Build sees the node.
	ID string

	// Decision is filled in once Build has run on this node.
	Decision *Decision
}

/*
RuleTag is one row of a decision table: one input entry per input column
(empty string means "don't care"), and the single output entry.
*/
type RuleTag struct {
	InputEntries []string
	OutputEntry  string
}

/*
InputColumn is one column of a decision table's inputs: either a plain
FEEL expression over an InputData, or a reference to a child decision's
output.
*/
type InputColumn struct {
	Label   string // the inputExpression text shown in the table
	Sources []*InputData
}

/*
DecisionTable is a DMN decisionTable element: typed inputs, one output,
and an ordered list of rule rows.
*/
type DecisionTable struct {
	Inputs []InputColumn
	Output string
	Rules  []RuleTag
}

/*
InformationRequirement is an edge declaring that a decision consumes
another decision's or an input-data's output. Every dependency a
decision has also appears as one of these.
*/
type InformationRequirement struct {
	ID               string
	RequiredDecision string // xml id of a decision, or "" if RequiredInput is set
	RequiredInput    string // xml id of an inputData, or "" if RequiredDecision is set
}

/*
Decision is a DMN decision element: an id, a name, a DecisionTable, and
the informationRequirement edges to whatever it depends on.
*/
type Decision struct {
	ID    string
	Name  string
	Table *DecisionTable
	Reqs  []InformationRequirement
}

/*
CollectDecisions walks n's tree in post-order (children first) and
returns every Decision built for it so far - nil for a child Build has
not yet visited. Package compile uses this after fragmenting and
building one atom (or one ternary chain condition) to discover every
nested Operator decision it implicitly built along the way, since those
never surface through the atom's own top-level Decision field.
*/
func CollectDecisions(n *Node) []*Decision {
	if n == nil {
		return nil
	}
	var out []*Decision
	for _, c := range n.Children {
		out = append(out, CollectDecisions(c)...)
	}
	if n.Decision != nil {
		out = append(out, n.Decision)
	}
	return out
}
