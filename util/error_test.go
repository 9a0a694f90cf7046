/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTranslationError(t *testing.T) {

	err1 := NewTranslationError("expr1", ErrInvalidRuleRow, "rule row has two literal outputs")

	if err1.Error() != "translation error in expr1: invalid rule row (rule row has two literal outputs)" {
		t.Error("Unexpected result:", err1)
		return
	}

	if !errors.Is(err1, ErrInvalidRuleRow) {
		t.Error("Expected errors.Is to unwrap to the sentinel type")
		return
	}

	err2 := NewTranslationError("expr2", ErrMissingOperator, "no table for operator kind 99")

	tr := err2.(TraceableTranslationError)
	tr.AddTrace("Expression(a eq b)")
	tr.AddTrace("Operator(eq)")

	if trace := strings.Join(tr.GetTrace(), " < "); trace != "Expression(a eq b) < Operator(eq)" {
		t.Error("Unexpected result:", trace)
		return
	}

	obj := err2.(*TranslationError).ToJSONObject()
	if obj["Type"] != ErrMissingOperator.Error() {
		t.Error("Unexpected JSON object:", obj)
		return
	}

	data, jerr := err2.(*TranslationError).MarshalJSON()
	if jerr != nil || !strings.Contains(string(data), "missing operator mapping") {
		t.Error("Unexpected marshaling result:", string(data), jerr)
		return
	}

	wrapped := fmt.Errorf("compile failed: %w", err1)
	if !errors.Is(wrapped, ErrInvalidRuleRow) {
		t.Error("Expected wrapped error to still unwrap to the sentinel")
		return
	}
}
