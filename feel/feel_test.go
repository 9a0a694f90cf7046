/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package feel

import (
	"testing"

	"github.com/jelfeel/drd/lang"
)

func mustParse(t *testing.T, expr string) *lang.Node {
	t.Helper()
	n, err := Parse("test", expr)
	if err != nil {
		t.Fatalf("Parse(%q): %v", expr, err)
	}
	return n
}

func TestParsePrintRoundTrip(t *testing.T) {
	exprs := []string{
		"op_1 or op_2",
		"op_1 and op_2 or op_3",
		"not op_1",
	}

	for _, e := range exprs {
		if got := Print(mustParse(t, e)); got != e {
			t.Errorf("round trip mismatch: parsed %q printed %q", e, got)
		}
	}
}

func TestParseReportsFEELPhase(t *testing.T) {
	_, err := Parse("test", "op_1 and")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	se, ok := err.(*lang.SyntaxError)
	if !ok {
		t.Fatalf("expected *lang.SyntaxError, got %T", err)
	}
	if se.Phase != "feel-parse" {
		t.Errorf("expected phase feel-parse, got %q", se.Phase)
	}
}

func TestOrSplitterFlattensChains(t *testing.T) {
	n := mustParse(t, "a or b or c and d")

	clauses := OrSplitter(n)
	if len(clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %v", len(clauses))
	}

	conjuncts := AndSplitter(clauses[2])
	if len(conjuncts) != 2 {
		t.Fatalf("expected 2 conjuncts in the last clause, got %v", len(conjuncts))
	}
}

func TestSplittersOnNonMatchingNode(t *testing.T) {
	n := mustParse(t, "a eq b")

	if got := OrSplitter(n); len(got) != 1 || got[0] != n {
		t.Fatalf("expected the node itself as a single clause, got %+v", got)
	}
	if got := AndSplitter(n); len(got) != 1 || got[0] != n {
		t.Fatalf("expected the node itself as a single conjunct, got %+v", got)
	}
}

func TestExtractIdentifiers(t *testing.T) {
	n := mustParse(t, "fields.a eq 'UL' and check(fields.b, 3) or items[idx] gt 0")

	got := ExtractIdentifiers(n)
	want := []string{"fields.a", "check", "fields.b", "items", "idx"}

	if len(got) != len(want) {
		t.Fatalf("got %v identifiers %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("identifier %v: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTranslateOperatorSurface(t *testing.T) {
	cases := []struct {
		javael string
		feel   string
	}{
		{"a eq 'UL'", `a = "UL"`},
		{"a ne 3", "not(a = 3)"},
		{"a gt 3 and b le 4", "a > 3 and b <= 4"},
		{"not a", "not( a )"},
		{"empty field", "field = null"},
		{"a ? b : c", "if a then b else c"},
		{"x.y.isSet()", "x.y.isSet()"},
	}

	for _, c := range cases {
		n := mustParse(t, c.javael)
		if got := Translate(n); got != c.feel {
			t.Errorf("Translate(%q): got %q, want %q", c.javael, got, c.feel)
		}
	}
}

func TestIsBooleanMethodCall(t *testing.T) {
	if !IsBooleanMethodCall(mustParse(t, "a.b.isSet()")) {
		t.Error("expected a.b.isSet() to be a boolean method call")
	}
	if IsBooleanMethodCall(mustParse(t, "a.b")) {
		t.Error("a.b has no call accessor")
	}
	if IsBooleanMethodCall(mustParse(t, "check(x)")) {
		t.Error("a call with arguments is not the zero-argument form")
	}
	if IsBooleanMethodCall(mustParse(t, "check()")) {
		t.Error("a bare call without a dotted receiver does not qualify")
	}
}
