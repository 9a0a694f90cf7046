package ternary

import (
	"testing"

	"github.com/jelfeel/drd/lang"
)

func mustParse(t *testing.T, expr string) *lang.Node {
	t.Helper()
	n, err := lang.ParseJavaEL("test", expr)
	if err != nil {
		t.Fatalf("ParseJavaEL(%q): %v", expr, err)
	}
	return n
}

func TestCollectAndDepthFlat(t *testing.T) {
	n := mustParse(t, "fields.a eq 'UL' ? 'X' : 'Y'")

	nodes := Collect(n)
	if len(nodes) != 1 {
		t.Fatalf("expected one ternary, got %v", len(nodes))
	}

	if d := NestingDepth(n); d != 1 {
		t.Fatalf("expected depth 1, got %v", d)
	}
}

func TestDepthNested(t *testing.T) {
	n := mustParse(t, "a ? b ? x : y : z")

	if d := NestingDepth(n); d != 2 {
		t.Fatalf("expected depth 2, got %v", d)
	}

	nodes := Collect(n)
	if len(nodes) != 2 {
		t.Fatalf("expected two ternary nodes, got %v", len(nodes))
	}
}

func TestDepthZeroWithoutTernary(t *testing.T) {
	n := mustParse(t, "a and b")
	if d := NestingDepth(n); d != 0 {
		t.Fatalf("expected depth 0, got %v", d)
	}
}

func TestSelectBranch(t *testing.T) {
	n := mustParse(t, "a ? b ? x : y : z")

	leaf := SelectBranch(n, []bool{true, true})
	if lang.Print(leaf) != "x" {
		t.Fatalf("expected x, got %v", lang.Print(leaf))
	}

	leaf = SelectBranch(n, []bool{true, false})
	if lang.Print(leaf) != "y" {
		t.Fatalf("expected y, got %v", lang.Print(leaf))
	}

	leaf = SelectBranch(n, []bool{false})
	if lang.Print(leaf) != "z" {
		t.Fatalf("expected z, got %v", lang.Print(leaf))
	}
}
