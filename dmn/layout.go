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
layout.go turns the decision/inputData graph into a dmndi diagram - one
shape per element, one edge per informationRequirement, laid out by
level so that nothing points upward.

The root decision sits at level 0; every other element's level is the
longest path from the root that reaches it (a breadth-first relaxation,
not a single pass, since an element can be reached through more than one
dependency chain at different depths). Elements sharing a level are laid
out left to right at config.LayoutXStep intervals; levels stack downward
at config.LayoutYStep intervals.
*/
package dmn

import "github.com/jelfeel/drd/config"

/*
Shape is one dmndi:DMNShape: the diagram element a decision or inputData
gets, positioned on a grid cell of the layout.
*/
type Shape struct {
	ID    string
	RefID string
	X, Y  int
	W, H  int
}

/*
Point is one di:waypoint of an Edge.
*/
type Point struct {
	X, Y int
}

/*
Edge is one dmndi:DMNEdge, rendering a single informationRequirement as a
line from the required element up to the dependent decision. ReqID is the
informationRequirement's own xml id - that is what the DMNEdge's
dmnElementRef must point at. The two waypoints run child first, then
parent, the emission order the diagram schema expects.
*/
type Edge struct {
	ID        string
	ReqID     string
	Waypoints [2]Point
}

/*
Layout is the complete diagram: every shape and edge the document
assembler needs to emit inside dmndi:DMNDiagram.
*/
type Layout struct {
	Shapes []Shape
	Edges  []Edge
}

/*
BuildLayout lays out root and every decision reachable from it (decisions
is the flat list the compile package collected while building root, root
included or not - BuildLayout dedupes by id either way) plus every
InputData any of them requires.
*/
func BuildLayout(ctx *CompileContext, root *Decision, decisions []*Decision) *Layout {
	byID := map[string]*Decision{}
	var order []string
	add := func(d *Decision) {
		if d == nil {
			return
		}
		if _, ok := byID[d.ID]; ok {
			return
		}
		byID[d.ID] = d
		order = append(order, d.ID)
	}

	add(root)
	for _, d := range decisions {
		add(d)
	}

	level := map[string]int{root.ID: 0}
	queue := []string{root.ID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := byID[cur]
		if d == nil {
			continue
		}
		for _, req := range d.Reqs {
			if req.RequiredDecision == "" {
				continue
			}
			nl := level[cur] + 1
			if existing, ok := level[req.RequiredDecision]; !ok || nl > existing {
				level[req.RequiredDecision] = nl
				queue = append(queue, req.RequiredDecision)
			}
		}
	}

	inputLevel := map[string]int{}
	var inputOrder []string
	for _, id := range order {
		d := byID[id]
		for _, req := range d.Reqs {
			if req.RequiredInput == "" {
				continue
			}
			nl := level[id] + 1
			if existing, ok := inputLevel[req.RequiredInput]; !ok || nl > existing {
				if !ok {
					inputOrder = append(inputOrder, req.RequiredInput)
				}
				inputLevel[req.RequiredInput] = nl
			}
		}
	}

	byLevel := map[int][]string{}
	var maxLevel int
	for _, id := range order {
		l := level[id]
		byLevel[l] = append(byLevel[l], id)
		if l > maxLevel {
			maxLevel = l
		}
	}
	for _, id := range inputOrder {
		l := inputLevel[id]
		byLevel[l] = append(byLevel[l], id)
		if l > maxLevel {
			maxLevel = l
		}
	}

	xStep := config.Int(config.LayoutXStep)
	yStep := config.Int(config.LayoutYStep)
	w := config.Int(config.ShapeWidth)
	h := config.Int(config.ShapeHeight)

	var shapes []Shape
	shapeByRef := map[string]Shape{}
	for l := 0; l <= maxLevel; l++ {
		for i, refID := range byLevel[l] {
			s := Shape{
				ID:    ctx.NewXMLID("DMNShape_"),
				RefID: refID,
				X:     i * xStep,
				Y:     l * yStep,
				W:     w,
				H:     h,
			}
			shapes = append(shapes, s)
			shapeByRef[refID] = s
		}
	}

	var edges []Edge
	for _, id := range order {
		d := byID[id]
		parent := shapeByRef[d.ID]
		for _, req := range d.Reqs {
			target := req.RequiredDecision
			if target == "" {
				target = req.RequiredInput
			}
			child := shapeByRef[target]
			edges = append(edges, Edge{
				ID:    ctx.NewXMLID("DMNEdge_"),
				ReqID: req.ID,
				Waypoints: [2]Point{
					{X: child.X + child.W/2, Y: child.Y},
					{X: parent.X + parent.W/2, Y: parent.Y + parent.H},
				},
			})
		}
	}

	return &Layout{Shapes: shapes, Edges: edges}
}
