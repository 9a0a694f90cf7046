package normalize

import (
	"testing"

	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/util"
	"github.com/jelfeel/drd/zipper"
)

func mustParse(t *testing.T, expr string) *lang.Node {
	t.Helper()
	n, err := lang.ParseJavaEL("test", expr)
	if err != nil {
		t.Fatalf("ParseJavaEL(%q): %v", expr, err)
	}
	return n
}

func TestNormalizeNotOverOr(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "!(A or B) and C")
	skeleton := zipper.Zip(ctx, n)

	dnf := Normalize(skeleton)

	if len(dnf.Clauses) != 1 {
		t.Fatalf("expected a single clause, got %v", len(dnf.Clauses))
	}
	if len(dnf.Clauses[0]) != 3 {
		t.Fatalf("expected 3 literals, got %v", len(dnf.Clauses[0]))
	}

	negCount := 0
	for _, l := range dnf.Clauses[0] {
		if l.Negated {
			negCount++
		}
	}
	if negCount != 2 {
		t.Fatalf("expected 2 negated literals (!A, !B), got %v", negCount)
	}
}

func TestNormalizeOr(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "a or b and c")
	skeleton := zipper.Zip(ctx, n)

	dnf := Normalize(skeleton)

	if len(dnf.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %v", len(dnf.Clauses))
	}
}

func TestNormalizeDistributesAndOverOr(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "(a eq 1 or b eq 2) and c eq 3")
	skeleton := zipper.Zip(ctx, n)

	dnf := Normalize(skeleton)

	if len(dnf.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %v", len(dnf.Clauses))
	}
	for i, clause := range dnf.Clauses {
		if len(clause) != 2 {
			t.Fatalf("clause %v: expected 2 literals, got %v", i, len(clause))
		}
		for _, l := range clause {
			if l.Atom.Kind != lang.NodeAtom {
				t.Fatalf("clause %v: literal is not an atom: %v", i, l.Atom.Kind)
			}
		}
	}
}

func TestNormalizeSingleAtom(t *testing.T) {
	ctx := dmn.NewCompileContext("test", util.NewNullLogger())
	n := mustParse(t, "field")
	skeleton := zipper.Zip(ctx, n)

	dnf := Normalize(skeleton)

	if len(dnf.Clauses) != 1 || len(dnf.Clauses[0]) != 1 {
		t.Fatalf("expected a single single-literal clause, got %+v", dnf)
	}
	if dnf.Clauses[0][0].Negated {
		t.Fatalf("expected the lone literal to be positive")
	}
}
