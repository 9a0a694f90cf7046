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
Package util contains utility definitions and functions shared by every
stage of the JavaEL to DMN/FEEL translation pipeline: logging and the
downstream error kind (TranslationError). The JavaEL/FEEL parsers raise
their own SyntaxError (see package lang); this package only covers
invariant violations discovered after parsing.
*/
package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
TraceableTranslationError can record and show a trace of the DMN nodes a
failure was found under.
*/
type TraceableTranslationError interface {
	error

	/*
		AddTrace adds a trace step.
	*/
	AddTrace(step string)

	/*
		GetTrace returns the current trace.
	*/
	GetTrace() []string
}

/*
TranslationError is raised by a downstream pipeline phase (ternary
analysis, fragmentation, normalization, DMN construction, layout) when an
invariant it relies on does not hold - e.g. a rule row yielding more than
one literal output. It is fatal: a single TranslationError aborts the
compile, the compiler never emits a partial document.
*/
type TranslationError struct {
	Source string   // Name of the source which was given to the parser
	Type   error    // Error type (to be used for equal checks)
	Detail string   // Details of this error
	Trace  []string // Trace of DMN/AST node descriptions leading to the error
}

/*
Translation error types.
*/
var (
	ErrTranslationError  = errors.New("translation error")
	ErrUnknownConstruct  = errors.New("unknown construct")
	ErrInvalidRuleRow    = errors.New("invalid rule row")
	ErrMissingOperator   = errors.New("missing operator mapping")
	ErrDependencyMissing = errors.New("dependency missing from document")
	ErrIDCollision       = errors.New("id collision")
)

/*
NewTranslationError creates a new TranslationError object.
*/
func NewTranslationError(source string, t error, d string) error {
	return &TranslationError{source, t, d, nil}
}

/*
Error returns a human-readable string representation of this error.
*/
func (te *TranslationError) Error() string {
	return fmt.Sprintf("translation error in %s: %v (%v)", te.Source, te.Type, te.Detail)
}

/*
AddTrace adds a trace step.
*/
func (te *TranslationError) AddTrace(step string) {
	te.Trace = append(te.Trace, step)
}

/*
GetTrace returns the current trace.
*/
func (te *TranslationError) GetTrace() []string {
	return te.Trace
}

/*
Unwrap makes TranslationError compatible with errors.Is/errors.As checks
against the Type sentinel.
*/
func (te *TranslationError) Unwrap() error {
	return te.Type
}

/*
ToJSONObject returns this TranslationError as a JSON object.
*/
func (te *TranslationError) ToJSONObject() map[string]interface{} {
	t := ""
	if te.Type != nil {
		t = te.Type.Error()
	}
	return map[string]interface{}{
		"Source": te.Source,
		"Type":   t,
		"Detail": te.Detail,
		"Trace":  te.Trace,
	}
}

/*
MarshalJSON serializes this TranslationError into a JSON string.
*/
func (te *TranslationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(te.ToJSONObject())
}
