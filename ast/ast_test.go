package ast

import (
	"strings"
	"testing"

	"github.com/nihei9/tyrellgo/langtype"
)

func buildPlusSpec(t *testing.T) *langtype.Spec {
	t.Helper()
	types := langtype.NewTypeSpec()
	if err := types.Define(langtype.NewValueType("Int")); err != nil {
		t.Fatal(err)
	}
	intT, _ := types.Get("Int")

	prods := langtype.NewProductionSpec()
	if _, err := prods.AddFunction("plus", intT, []langtype.Type{intT, intT}); err != nil {
		t.Fatal(err)
	}

	prog, err := langtype.NewProgramSpec("p", []langtype.Type{intT, intT}, intT)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := langtype.Finalize(types, prods, prog)
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

func buildPlusNode(t *testing.T, sp *langtype.Spec) *Node {
	t.Helper()
	intT, _ := sp.Types.Get("Int")
	var plusID, param0ID, param1ID langtype.ID
	for _, p := range sp.Productions.ByLHS(intT.Name()) {
		switch {
		case p.Kind() == langtype.ProdFunction && p.Name() == "plus":
			plusID = p.ID()
		case p.Kind() == langtype.ProdParam && p.ParamIndex() == 0:
			param0ID = p.ID()
		case p.Kind() == langtype.ProdParam && p.ParamIndex() == 1:
			param1ID = p.ID()
		}
	}
	p0, err := MakeFromSpec(sp, param0ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	p1, err := MakeFromSpec(sp, param1ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	n, err := MakeFromSpec(sp, plusID, []*Node{p0, p1})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestMakeRejectsArityMismatch(t *testing.T) {
	sp := buildPlusSpec(t)
	intT, _ := sp.Types.Get("Int")
	var plusProd *langtype.Production
	for _, p := range sp.Productions.ByLHS(intT.Name()) {
		if p.Kind() == langtype.ProdFunction {
			plusProd = p
		}
	}
	if _, err := Make(plusProd, nil); err == nil {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestDepthAndInnerNodeCount(t *testing.T) {
	sp := buildPlusSpec(t)
	n := buildPlusNode(t, sp)
	if n.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", n.Depth())
	}
	if n.InnerNodeCount() != 1 {
		t.Fatalf("InnerNodeCount() = %d, want 1", n.InnerNodeCount())
	}
}

func TestEqualAndHash(t *testing.T) {
	sp := buildPlusSpec(t)
	a := buildPlusNode(t, sp)
	b := buildPlusNode(t, sp)
	if !a.Equal(b) {
		t.Fatal("expected structurally identical nodes to be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("expected structurally identical nodes to hash the same")
	}
}

func TestPrintTree(t *testing.T) {
	sp := buildPlusSpec(t)
	n := buildPlusNode(t, sp)
	out := Sprint(n)
	if !strings.Contains(out, "plus(") {
		t.Fatalf("Sprint output missing root rendering: %q", out)
	}
	if strings.Count(out, "@param") != 2 {
		t.Fatalf("Sprint output = %q, want two @param lines", out)
	}
}
