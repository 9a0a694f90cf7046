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
	"errors"
	"strings"
	"testing"

	"github.com/jelfeel/drd/util"
)

func TestAssembleDocument(t *testing.T) {
	ctx := NewCompileContext("test", util.NewNullLogger())

	in := ctx.InternInputData("field")

	root := &Decision{ID: ctx.NewXMLID("Decision_"), Name: "root"}
	root.Table = &DecisionTable{
		Inputs: []InputColumn{{Label: "field", Sources: []*InputData{in}}},
		Output: "result",
		Rules: []RuleTag{
			{InputEntries: []string{"null"}, OutputEntry: "true"},
			{InputEntries: []string{""}, OutputEntry: "false"},
		},
	}
	root.Reqs = []InformationRequirement{requireInput(ctx, root.ID, in)}

	doc, err := Assemble(ctx, root, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	xmlText := string(doc.XML)
	for _, want := range []string{
		"<definitions", "<decision ", "<decisionTable", "<inputData",
		"dmndi:DMNDiagram", "dmndi:DMNShape", "dmndi:DMNEdge", "di:waypoint",
		`hitPolicy="FIRST"`, "#" + in.ID,
	} {
		if !strings.Contains(xmlText, want) {
			t.Errorf("expected %q in the document:\n%s", want, xmlText)
		}
	}

	if doc.ObjectID != root.ID {
		t.Errorf("expected the root decision id as ObjectID, got %v", doc.ObjectID)
	}
}

func TestAssembleRejectsDanglingRequirement(t *testing.T) {
	ctx := NewCompileContext("test", util.NewNullLogger())

	root := &Decision{ID: ctx.NewXMLID("Decision_"), Name: "root"}
	root.Table = &DecisionTable{Output: "result"}
	root.Reqs = []InformationRequirement{requireDecision(ctx, "Decision_MISSING")}

	_, err := Assemble(ctx, root, nil)
	if err == nil {
		t.Fatal("expected a dependency error")
	}
	if !errors.Is(err, util.ErrDependencyMissing) {
		t.Fatalf("expected ErrDependencyMissing, got %v", err)
	}
}
