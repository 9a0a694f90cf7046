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

import (
	"testing"

	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/util"
)

func mustParse(t *testing.T, expr string) *lang.Node {
	t.Helper()
	n, err := lang.ParseJavaEL("test", expr)
	if err != nil {
		t.Fatalf("ParseJavaEL(%q): %v", expr, err)
	}
	return n
}

func TestBuildEqualityOperator(t *testing.T) {
	ctx := NewCompileContext("test", util.NewNullLogger())

	ast := mustParse(t, "p eq '32896'")
	n := &Node{
		Kind:     KindOperator,
		Op:       OpEq,
		Contexts: []*lang.Node{ast},
		Children: []*Node{
			{Kind: KindExpression, Text: "p", Contexts: []*lang.Node{ast.Children[0]}},
			{Kind: KindExpression, Text: "\"32896\"", Contexts: []*lang.Node{ast.Children[1]}},
		},
	}

	dec := Build(ctx, n)

	if len(dec.Table.Rules) != 2 {
		t.Fatalf("expected a two-row table, got %v", len(dec.Table.Rules))
	}
	if dec.Table.Rules[0].OutputEntry != "true" || dec.Table.Rules[1].OutputEntry != "false" {
		t.Fatalf("unexpected rule outputs: %+v", dec.Table.Rules)
	}
	if len(dec.Reqs) != 1 {
		t.Fatalf("expected a single informationRequirement for p, got %v", len(dec.Reqs))
	}
	if dec.Reqs[0].RequiredInput == "" {
		t.Fatalf("expected the requirement to reference an InputData")
	}
	if len(ctx.InputDatas) != 1 || ctx.InputDatas["p"] == nil {
		t.Fatalf("expected p to be interned as InputData, got %+v", ctx.InputDatas)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	ctx := NewCompileContext("test", util.NewNullLogger())
	ast := mustParse(t, "empty field")

	n := &Node{
		Kind:     KindOperator,
		Op:       OpEmpty,
		Contexts: []*lang.Node{ast},
		Children: []*Node{
			{Kind: KindExpression, Text: "field", Contexts: []*lang.Node{ast.Children[0]}},
		},
	}

	first := Build(ctx, n)
	second := Build(ctx, n)

	if first != second {
		t.Fatalf("expected Build to return the same Decision on a second call")
	}
}

func TestBuildNestedOperator(t *testing.T) {
	ctx := NewCompileContext("test", util.NewNullLogger())
	ast := mustParse(t, "a + b gt c")

	leftAST := ast.Children[0]
	n := &Node{
		Kind:     KindOperator,
		Op:       OpGt,
		Contexts: []*lang.Node{ast},
		Children: []*Node{
			{
				Kind:     KindOperator,
				Op:       OpAdd,
				Contexts: []*lang.Node{leftAST},
				Children: []*Node{
					{Kind: KindExpression, Text: "a", Contexts: []*lang.Node{leftAST.Children[0]}},
					{Kind: KindExpression, Text: "b", Contexts: []*lang.Node{leftAST.Children[1]}},
				},
			},
			{Kind: KindExpression, Text: "c", Contexts: []*lang.Node{ast.Children[1]}},
		},
	}

	dec := Build(ctx, n)

	if dec.Table.Rules[0].OutputEntry != "true" {
		t.Fatalf("expected the relation's first rule to be true, got %+v", dec.Table.Rules[0])
	}

	nested := CollectDecisions(n)
	if len(nested) != 2 {
		t.Fatalf("expected 2 decisions (the add and the relation), got %v", len(nested))
	}
	if len(ctx.InputDatas) != 3 {
		t.Fatalf("expected a, b, c to be interned as InputData, got %+v", ctx.InputDatas)
	}
}
