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
document.go assembles the root decision, every decision reachable from
it, every inputData it and they require, and the layout into one DMN 1.3
XML document.

encoding/xml is the one stdlib dependency this package reaches for:
none of the example repos ship a DMN or generic XML-tree builder, and
hand-rolling element structs over encoding/xml is exactly how the
ecosystem's own DMN libraries do it.
*/
package dmn

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"devt.de/krotik/common/sortutil"

	"github.com/jelfeel/drd/config"
	"github.com/jelfeel/drd/util"
)

const (
	nsDMN     = "https://www.omg.org/spec/DMN/20191111/MODEL/"
	nsDMNDI   = "https://www.omg.org/spec/DMN/20191111/DMNDI/"
	nsDC      = "http://www.omg.org/spec/DMN/20180521/DC/"
	nsDI      = "http://www.omg.org/spec/DMN/20180521/DI/"
	nsBiodi   = "http://bpmn.io/schema/dmn/biodi/2.0"
	nsDefault = "https://github.com/jelfeel/drd"
)

type xmlDefinitions struct {
	XMLName    xml.Name       `xml:"definitions"`
	Xmlns      string         `xml:"xmlns,attr"`
	XmlnsDMNDI string         `xml:"xmlns:dmndi,attr"`
	XmlnsDC    string         `xml:"xmlns:dc,attr"`
	XmlnsDI    string         `xml:"xmlns:di,attr"`
	XmlnsBiodi string         `xml:"xmlns:biodi,attr"`
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Namespace  string         `xml:"namespace,attr"`
	InputData  []xmlInputData `xml:"inputData"`
	Decisions  []xmlDecision  `xml:"decision"`
	Diagram    xmlDMNDI       `xml:"dmndi:DMNDI"`
}

type xmlInputData struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlDecision struct {
	ID    string           `xml:"id,attr"`
	Name  string           `xml:"name,attr"`
	Reqs  []xmlInfoReq     `xml:"informationRequirement"`
	Table xmlDecisionTable `xml:"decisionTable"`
}

type xmlInfoReq struct {
	ID               string   `xml:"id,attr"`
	RequiredDecision *xmlHref `xml:"requiredDecision"`
	RequiredInput    *xmlHref `xml:"requiredInput"`
}

type xmlHref struct {
	Href string `xml:"href,attr"`
}

type xmlDecisionTable struct {
	ID        string     `xml:"id,attr"`
	HitPolicy string     `xml:"hitPolicy,attr"`
	Inputs    []xmlInput `xml:"input"`
	Output    xmlOutput  `xml:"output"`
	Rules     []xmlRule  `xml:"rule"`
}

type xmlInput struct {
	ID              string     `xml:"id,attr"`
	Label           string     `xml:"label,attr"`
	InputExpression xmlLiteral `xml:"inputExpression"`
}

type xmlOutput struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlRule struct {
	ID          string       `xml:"id,attr"`
	InputEntry  []xmlLiteral `xml:"inputEntry"`
	OutputEntry xmlLiteral   `xml:"outputEntry"`
}

type xmlLiteral struct {
	ID   string `xml:"id,attr"`
	Text string `xml:"text"`
}

type xmlDMNDI struct {
	Diagram xmlDMNDiagram `xml:"dmndi:DMNDiagram"`
}

type xmlDMNDiagram struct {
	ID     string     `xml:"id,attr"`
	Shapes []xmlShape `xml:"dmndi:DMNShape"`
	Edges  []xmlEdge  `xml:"dmndi:DMNEdge"`
}

type xmlShape struct {
	ID            string    `xml:"id,attr"`
	DMNElementRef string    `xml:"dmnElementRef,attr"`
	Bounds        xmlBounds `xml:"dc:Bounds"`
}

type xmlBounds struct {
	X      int `xml:"x,attr"`
	Y      int `xml:"y,attr"`
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

type xmlEdge struct {
	ID            string     `xml:"id,attr"`
	DMNElementRef string     `xml:"dmnElementRef,attr"`
	Waypoints     []xmlPoint `xml:"di:waypoint"`
}

type xmlPoint struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

/*
Document is the finished compile result: the marshaled XML bytes and the
root decision's id, which the CLI uses as the output file's basename.
*/
type Document struct {
	XML      []byte
	ObjectID string
}

/*
Assemble builds the complete DMN document for root, every decision
package compile collected while building it, and every InputData any of
them requires (ctx.InputDatas).
*/
func Assemble(ctx *CompileContext, root *Decision, decisions []*Decision) (*Document, error) {
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

	// Every id an informationRequirement references must exist as a
	// decision or an inputData in this same document.
	inputIDs := map[string]bool{}
	for _, in := range ctx.InputDatas {
		inputIDs[in.ID] = true
	}
	for _, id := range order {
		for _, req := range byID[id].Reqs {
			if req.RequiredDecision != "" && byID[req.RequiredDecision] == nil {
				return nil, util.NewTranslationError(ctx.Source, util.ErrDependencyMissing,
					fmt.Sprintf("decision %v requires unknown decision %v", id, req.RequiredDecision))
			}
			if req.RequiredInput != "" && !inputIDs[req.RequiredInput] {
				return nil, util.NewTranslationError(ctx.Source, util.ErrDependencyMissing,
					fmt.Sprintf("decision %v requires unknown inputData %v", id, req.RequiredInput))
			}
		}
	}

	layout := BuildLayout(ctx, root, decisions)

	def := xmlDefinitions{
		Xmlns:      nsDMN,
		XmlnsDMNDI: nsDMNDI,
		XmlnsDC:    nsDC,
		XmlnsDI:    nsDI,
		XmlnsBiodi: nsBiodi,
		ID:         ctx.NewXMLID("Definitions_"),
		Name:       root.Name,
		Namespace:  nsDefault,
	}

	for _, id := range order {
		d := byID[id]
		def.Decisions = append(def.Decisions, toXMLDecision(ctx, d))
	}
	for _, name := range sortedInputDataNames(ctx) {
		in := ctx.InputDatas[name]
		def.InputData = append(def.InputData, xmlInputData{ID: in.ID, Name: in.Name})
	}

	for _, s := range layout.Shapes {
		def.Diagram.Diagram.Shapes = append(def.Diagram.Diagram.Shapes, xmlShape{
			ID:            s.ID,
			DMNElementRef: s.RefID,
			Bounds:        xmlBounds{X: s.X, Y: s.Y, Width: s.W, Height: s.H},
		})
	}
	for _, e := range layout.Edges {
		def.Diagram.Diagram.Edges = append(def.Diagram.Diagram.Edges, xmlEdge{
			ID:            e.ID,
			DMNElementRef: e.ReqID,
			Waypoints: []xmlPoint{
				{X: e.Waypoints[0].X, Y: e.Waypoints[0].Y},
				{X: e.Waypoints[1].X, Y: e.Waypoints[1].Y},
			},
		})
	}
	def.Diagram.Diagram.ID = ctx.NewXMLID("DMNDiagram_")

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", spaces(config.Int(config.Indent)))
	if err := enc.Encode(def); err != nil {
		return nil, err
	}

	return &Document{XML: buf.Bytes(), ObjectID: root.ID}, nil
}

func toXMLDecision(ctx *CompileContext, d *Decision) xmlDecision {
	xd := xmlDecision{ID: d.ID, Name: d.Name}
	for _, r := range d.Reqs {
		req := xmlInfoReq{ID: r.ID}
		if r.RequiredDecision != "" {
			req.RequiredDecision = &xmlHref{Href: "#" + r.RequiredDecision}
		}
		if r.RequiredInput != "" {
			req.RequiredInput = &xmlHref{Href: "#" + r.RequiredInput}
		}
		xd.Reqs = append(xd.Reqs, req)
	}

	t := d.Table
	// Rows are matched top to bottom: clause rows first, the blank
	// catch-all last, so overlapping matches resolve to the earliest row.
	table := xmlDecisionTable{
		ID:        ctx.NewXMLID("DecisionTable_"),
		HitPolicy: "FIRST",
		Output:    xmlOutput{ID: ctx.NewXMLID("Output_"), Name: t.Output},
	}
	for _, in := range t.Inputs {
		table.Inputs = append(table.Inputs, xmlInput{
			ID:              ctx.NewXMLID("Input_"),
			Label:           in.Label,
			InputExpression: xmlLiteral{ID: ctx.NewXMLID("InputExpression_"), Text: in.Label},
		})
	}
	for _, rule := range t.Rules {
		xr := xmlRule{ID: ctx.NewXMLID("DecisionRule_")}
		for _, entry := range rule.InputEntries {
			xr.InputEntry = append(xr.InputEntry, xmlLiteral{ID: ctx.NewXMLID("UnaryTest_"), Text: entry})
		}
		xr.OutputEntry = xmlLiteral{ID: ctx.NewXMLID("LiteralExpression_"), Text: rule.OutputEntry}
		table.Rules = append(table.Rules, xr)
	}
	xd.Table = table

	return xd
}

func sortedInputDataNames(ctx *CompileContext) []string {
	var keys []interface{}
	for name := range ctx.InputDatas {
		keys = append(keys, name)
	}

	sortutil.InterfaceStrings(keys)

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
