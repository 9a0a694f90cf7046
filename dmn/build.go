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
build.go turns a dmn.Node tree into decisions and decision tables. An
Operator node becomes one of the canonical tables in operator_tables.go;
an Expression node that is the direct result of fragmenting a whole atom
(no operator left to peel off - a bare identifier or function-call
reference used as a boolean formula on its own) gets a two-row "is this
true" table (true -> true, catch-all -> false).

An Expression or Operator child nested *inside* an Operator's own
operands never gets its own decision here unless it is itself an
Operator: a leaf operand is resolved straight to an InputData reference
or an inline literal, not a child decision - see resolveOperand.
*/
package dmn

import (
	"github.com/jelfeel/drd/feel"
)

/*
Build returns n's Decision, building it (and, for an Operator, its
children's decisions) if this is the first time n has been seen. Build
is idempotent: calling it twice on the same *Node returns the same
Decision.
*/
func Build(ctx *CompileContext, n *Node) *Decision {
	if n.Decision != nil {
		return n.Decision
	}
	if n.ID == "" {
		n.ID = ctx.NewXMLID("Node_")
	}

	var dec *Decision
	if n.Kind == KindOperator {
		dec = buildOperatorDecision(ctx, n)
	} else {
		dec = buildAtomExpressionDecision(ctx, n)
	}

	n.Decision = dec
	ctx.TableToDepTables[n.ID] = dec.ID
	return dec
}

/*
buildAtomExpressionDecision builds the two-row table (a "true" row, then
a blank catch-all row mapping to false) for a whole atom that fragmented
to a bare Expression leaf: a boolean or
information-source cell applied to the atom as a whole rather than to
one operator's operand.
*/
func buildAtomExpressionDecision(ctx *CompileContext, n *Node) *Decision {
	ast := n.Contexts[0]
	ids := feel.ExtractIdentifiers(ast)

	// A zero-argument method call cell is always this boolean/information-source
	// case, never mistaken for a literal rvalue to compare against - which this
	// function already is, unconditionally, so the guard here is a no-op check
	// that documents the invariant rather than branching on it.
	_ = feel.IsBooleanMethodCall(ast)

	var sources []*InputData
	for _, name := range ids {
		sources = append(sources, ctx.InternInputData(name))
	}

	table := &DecisionTable{
		Inputs: []InputColumn{{Label: n.Text, Sources: sources}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{"true"}, OutputEntry: "true"},
			{InputEntries: []string{""}, OutputEntry: "false"},
		},
	}

	dec := &Decision{
		ID:   ctx.NewXMLID("Decision_"),
		Name: ctx.NewXMLID("Decision"),
	}
	dec.Table = table

	var reqs []InformationRequirement
	for _, src := range sources {
		reqs = append(reqs, requireInput(ctx, dec.ID, src))
	}
	dec.Reqs = reqs
	ctx.TableToDepInputDatas[n.ID] = append(ctx.TableToDepInputDatas[n.ID], sources...)

	return dec
}

/*
operand is what a non-logical operator's operand resolves to once its
child dmn.Node has been examined: either a reference to a child
decision's output, a reference to one or more InputData elements, or an
inline literal with no dependency at all.
*/
type operand struct {
	Text       string
	IsLiteral  bool
	DecisionID string
	InputData  []*InputData
}

func resolveOperand(ctx *CompileContext, child *Node) operand {
	if child.Kind == KindOperator {
		dec := Build(ctx, child)
		return operand{Text: dec.Name, DecisionID: dec.ID}
	}

	ast := child.Contexts[0]
	ids := feel.ExtractIdentifiers(ast)

	if len(ids) == 0 {
		return operand{Text: child.Text, IsLiteral: true}
	}

	var inputs []*InputData
	for _, name := range ids {
		inputs = append(inputs, ctx.InternInputData(name))
	}
	return operand{Text: child.Text, InputData: inputs}
}

func requireInput(ctx *CompileContext, decisionID string, in *InputData) InformationRequirement {
	req := InformationRequirement{ID: ctx.NewXMLID("InformationRequirement_"), RequiredInput: in.ID}
	ctx.InputDataToInfoReq[in.ID] = append(ctx.InputDataToInfoReq[in.ID], req.ID)
	return req
}

func requireDecision(ctx *CompileContext, decisionID string) InformationRequirement {
	return InformationRequirement{ID: ctx.NewXMLID("InformationRequirement_"), RequiredDecision: decisionID}
}

func operandRequirement(ctx *CompileContext, decisionID string, op operand) []InformationRequirement {
	var reqs []InformationRequirement
	if op.DecisionID != "" {
		reqs = append(reqs, requireDecision(ctx, op.DecisionID))
	}
	for _, in := range op.InputData {
		reqs = append(reqs, requireInput(ctx, decisionID, in))
	}
	return reqs
}

func buildOperatorDecision(ctx *CompileContext, n *Node) *Decision {
	operands := make([]operand, len(n.Children))
	for i, c := range n.Children {
		operands[i] = resolveOperand(ctx, c)
	}

	dec := &Decision{ID: ctx.NewXMLID("Decision_"), Name: ctx.NewXMLID("Decision")}

	var table *DecisionTable
	switch n.Op {
	case OpNot:
		table = notTable(operands[0])
	case OpEmpty:
		table = emptyTable(operands[0])
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		table = arithmeticTable(n.Op, operands[0], operands[1])
	default:
		table = relationalTable(n.Op, operands[0], operands[1])
	}
	dec.Table = table

	var reqs []InformationRequirement
	for _, op := range operands {
		reqs = append(reqs, operandRequirement(ctx, dec.ID, op)...)
	}
	dec.Reqs = reqs

	var deps []*InputData
	for _, op := range operands {
		deps = append(deps, op.InputData...)
	}
	ctx.TableToDepInputDatas[n.ID] = deps

	return dec
}
