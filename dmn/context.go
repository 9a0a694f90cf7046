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
Package dmn holds the Decision Requirements Diagram data model and its
supporting registries as fields of a CompileContext value, created fresh
by package compile at the start of every compile and discarded at the
end, so that nothing survives between compilations.
*/
package dmn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jelfeel/drd/config"
	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/util"
)

/*
InputData is a leaf node of the DRD standing for an externally supplied
identifier.
*/
type InputData struct {
	ID   string
	Name string
}

/*
CompileContext is threaded through every stage of one compile: scoped,
per-compile state rather than process-wide registries, so that concurrent
compiles never share mutable state.
*/
type CompileContext struct {
	Source string
	Logger util.Logger

	// Operators maps a synthetic atom id to the original JavaEL AST
	// sub-tree it stands for.
	Operators map[string]*lang.Node

	// InputDatas dedupes InputData elements by identifier name across the
	// whole document.
	InputDatas map[string]*InputData

	// TableToDepTables: dmn_node_id -> the xml decision id actually
	// emitted for it.
	TableToDepTables map[string]string

	// TableToDepInputDatas: dmn_node_id -> the InputData elements it
	// depends on directly.
	TableToDepInputDatas map[string][]*InputData

	// InputDataToInfoReq: input_data_id -> the informationRequirement ids
	// that reference it.
	InputDataToInfoReq map[string][]string

	atomCounter int
	idSeen      map[string]bool
}

/*
NewCompileContext creates a fresh, empty CompileContext. Call once per
compile - never reuse across compiles.
*/
func NewCompileContext(source string, logger util.Logger) *CompileContext {
	if logger == nil {
		logger = util.NewNullLogger()
	}
	return &CompileContext{
		Source:               source,
		Logger:               logger,
		Operators:            make(map[string]*lang.Node),
		InputDatas:           make(map[string]*InputData),
		TableToDepTables:     make(map[string]string),
		TableToDepInputDatas: make(map[string][]*InputData),
		InputDataToInfoReq:   make(map[string][]string),
		idSeen:               make(map[string]bool),
	}
}

/*
NewAtomID allocates the next op_<N> synthetic id. A monotone per-compile
counter is used rather than a random string, since a counter needs no
collision retry.
*/
func (ctx *CompileContext) NewAtomID() string {
	ctx.atomCounter++
	return fmt.Sprintf("op_%d", ctx.atomCounter)
}

/*
NewXMLID allocates a random id of the given element-kind prefix, using
config's id alphabet/length. Collisions (astronomically unlikely at this
alphabet/length, but possible) are retried internally - an
IdCollisionError is never observed by a caller.
*/
func (ctx *CompileContext) NewXMLID(prefix string) string {
	alphabet := config.Str(config.IdAlphabet)
	length := config.Int(config.IdSuffixLength)

	for {
		var b strings.Builder
		for i := 0; i < length; i++ {
			b.WriteByte(alphabet[rand.Intn(len(alphabet))])
		}
		id := prefix + b.String()
		if !ctx.idSeen[id] {
			ctx.idSeen[id] = true
			return id
		}
		ctx.Logger.LogDebug(fmt.Sprintf("id collision on %v, retrying", id))
	}
}

/*
InternInputData returns the InputData for name, creating and registering
a fresh one (with a new xml id) the first time name is seen in this
compile. Every later reference to the same name is deduplicated to the
same InputData element.
*/
func (ctx *CompileContext) InternInputData(name string) *InputData {
	if id, ok := ctx.InputDatas[name]; ok {
		return id
	}
	id := &InputData{ID: ctx.NewXMLID("InputData_"), Name: name}
	ctx.InputDatas[name] = id
	return id
}
