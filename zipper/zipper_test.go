package zipper

import (
	"testing"

	"github.com/jelfeel/drd/dmn"
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

func TestZipSimpleAnd(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "p eq '32896' and q eq '32898'")

	skeleton := Zip(ctx, n)

	if skeleton.Kind != lang.NodeAnd {
		t.Fatalf("expected top-level And, got %v", skeleton.Kind)
	}
	if skeleton.Children[0].Kind != lang.NodeAtom || skeleton.Children[1].Kind != lang.NodeAtom {
		t.Fatalf("expected both operands to be atoms")
	}
	if len(ctx.Operators) != 2 {
		t.Fatalf("expected 2 registered operators, got %v", len(ctx.Operators))
	}
}

func TestZipTernaryExpansion(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "c ? a : b")

	skeleton := Zip(ctx, n)

	if skeleton.Kind != lang.NodeOr {
		t.Fatalf("expected top-level Or, got %v", skeleton.Kind)
	}

	left := skeleton.Children[0]
	if left.Kind != lang.NodeAnd {
		t.Fatalf("expected left conjunct, got %v", left.Kind)
	}
	if left.Children[0].Kind != lang.NodeUnary || left.Children[0].Op != lang.TokenNot {
		t.Fatalf("expected not(c) as first element of left conjunct")
	}

	right := skeleton.Children[1]
	if right.Kind != lang.NodeAnd {
		t.Fatalf("expected right conjunct, got %v", right.Kind)
	}

	// three atoms: c, a, b
	if len(ctx.Operators) != 3 {
		t.Fatalf("expected 3 registered operators, got %v", len(ctx.Operators))
	}
}

func TestZipNotOverOr(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "!(A or B) and C")

	skeleton := Zip(ctx, n)

	if skeleton.Kind != lang.NodeAnd {
		t.Fatalf("expected top-level And, got %v", skeleton.Kind)
	}

	notOr := skeleton.Children[0]
	if notOr.Kind != lang.NodeUnary || notOr.Op != lang.TokenNot {
		t.Fatalf("expected not(...) on the left, got %v", notOr.Kind)
	}
	if notOr.Children[0].Kind != lang.NodeOr {
		t.Fatalf("expected an Or under the not")
	}
}
