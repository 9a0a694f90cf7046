package fragment

import (
	"testing"

	"github.com/jelfeel/drd/dmn"
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

func TestFragmentEmpty(t *testing.T) {
	n := mustParse(t, "empty field")
	node := Fragment(n)

	if node.Kind != dmn.KindOperator || node.Op != dmn.OpEmpty {
		t.Fatalf("expected an empty Operator node, got %+v", node)
	}
	if len(node.Children) != 1 || node.Children[0].Kind != dmn.KindExpression {
		t.Fatalf("expected one Expression child, got %+v", node.Children)
	}
	if node.Children[0].Text != "field" {
		t.Fatalf("unexpected child text: %v", node.Children[0].Text)
	}
}

func TestFragmentNotChain(t *testing.T) {
	n := mustParse(t, "not not empty x")
	node := Fragment(n)

	if node.Op != dmn.OpNot {
		t.Fatalf("expected outermost not, got %v", node.Op)
	}
	child := node.Children[0]
	if child.Op != dmn.OpNot {
		t.Fatalf("expected second not, got %v", child.Op)
	}
	grandchild := child.Children[0]
	if grandchild.Op != dmn.OpEmpty {
		t.Fatalf("expected innermost empty, got %v", grandchild.Op)
	}
}

func TestFragmentAtomIsStable(t *testing.T) {
	atom := lang.NewAtom("op_1")

	first := Fragment(atom)
	second := Fragment(atom)

	if first.Kind != dmn.KindExpression || first.Text != "op_1" {
		t.Fatalf("expected an op_1 Expression leaf, got %+v", first)
	}
	if second.Kind != first.Kind || second.Text != first.Text {
		t.Fatalf("expected a second run to produce the identical tree shape")
	}
}

func TestFragmentEquality(t *testing.T) {
	n := mustParse(t, "p eq '32896'")
	node := Fragment(n)

	if node.Kind != dmn.KindOperator || node.Op != dmn.OpEq {
		t.Fatalf("expected an eq Operator node, got %+v", node)
	}
	if node.Children[0].Text != "p" || node.Children[1].Text != "\"32896\"" {
		t.Fatalf("unexpected operands: %+v", node.Children)
	}
}
