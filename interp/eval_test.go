package interp

import (
	"testing"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/langtype"
)

// testHarness builds a minimal spec whose productions cover the function
// names exercised by a given test, and exposes a convenience for wiring up
// Param/leaf/Function nodes by name without repeating the lookup dance in
// every test.
type testHarness struct {
	t    *testing.T
	spec *langtype.Spec
}

func newHarness(t *testing.T, typeNames []string, enums map[string][]string, funcs []struct {
	name string
	lhs  string
	rhs  []string
}, inputTypes []string, outputType string) *testHarness {
	t.Helper()
	types := langtype.NewTypeSpec()
	for _, n := range typeNames {
		if err := types.Define(langtype.NewValueType(n)); err != nil {
			t.Fatal(err)
		}
	}
	for name, domain := range enums {
		if err := types.Define(langtype.NewEnumType(name, domain)); err != nil {
			t.Fatal(err)
		}
	}

	prods := langtype.NewProductionSpec()
	for _, f := range funcs {
		lhs, _ := types.Get(f.lhs)
		rhs := make([]langtype.Type, len(f.rhs))
		for i, n := range f.rhs {
			rhs[i], _ = types.Get(n)
		}
		if _, err := prods.AddFunction(f.name, lhs, rhs); err != nil {
			t.Fatal(err)
		}
	}

	input := make([]langtype.Type, len(inputTypes))
	for i, n := range inputTypes {
		input[i], _ = types.Get(n)
	}
	output, _ := types.Get(outputType)
	prog, err := langtype.NewProgramSpec("p", input, output)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := langtype.Finalize(types, prods, prog)
	if err != nil {
		t.Fatal(err)
	}
	return &testHarness{t: t, spec: sp}
}

func (h *testHarness) param(typeName string, index int) *ast.Node {
	h.t.Helper()
	for _, p := range h.spec.Productions.ByLHS(typeName) {
		if p.Kind() == langtype.ProdParam && p.ParamIndex() == index {
			n, err := ast.Make(p, nil)
			if err != nil {
				h.t.Fatal(err)
			}
			return n
		}
	}
	h.t.Fatalf("no param production for %s@%d", typeName, index)
	return nil
}

func (h *testHarness) enumLit(typeName, value string) *ast.Node {
	h.t.Helper()
	for _, p := range h.spec.Productions.ByLHS(typeName) {
		if p.Kind() == langtype.ProdEnum && p.ChoiceValue() == value {
			n, err := ast.Make(p, nil)
			if err != nil {
				h.t.Fatal(err)
			}
			return n
		}
	}
	h.t.Fatalf("no enum production for %s=%q", typeName, value)
	return nil
}

func (h *testHarness) call(name, lhs string, children ...*ast.Node) *ast.Node {
	h.t.Helper()
	for _, p := range h.spec.Productions.ByLHS(lhs) {
		if p.Kind() == langtype.ProdFunction && p.Name() == name {
			n, err := ast.Make(p, children)
			if err != nil {
				h.t.Fatal(err)
			}
			return n
		}
	}
	h.t.Fatalf("no function production %s (LHS %s)", name, lhs)
	return nil
}

func TestEvalArithmetic(t *testing.T) {
	funcSpecs := []struct {
		name string
		lhs  string
		rhs  []string
	}{
		{"plus", "Int", []string{"Int", "Int"}},
		{"minus", "Int", []string{"Int", "Int"}},
		{"div", "Int", []string{"Int", "Int"}},
		{"pow", "Int", []string{"Int", "Int"}},
	}
	h := newHarness(t, []string{"Int"}, nil, funcSpecs, []string{"Int", "Int"}, "Int")

	tests := []struct {
		name string
		node *ast.Node
		want int64
	}{
		{"plus", h.call("plus", "Int", h.param("Int", 0), h.param("Int", 1)), 13},
		{"minus", h.call("minus", "Int", h.param("Int", 0), h.param("Int", 1)), 7},
		{"div truncates toward zero", h.call("div", "Int", h.param("Int", 0), h.param("Int", 1)), 3},
		{"pow", h.call("pow", "Int", h.param("Int", 0), h.param("Int", 1)), 1000},
	}
	input := []Value{Int(10), Int(3)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Eval(tt.node, input)
			if err != nil {
				t.Fatal(err)
			}
			if v.Int() != tt.want {
				t.Fatalf("got %d, want %d", v.Int(), tt.want)
			}
		})
	}
}

func TestDivTruncatesTowardZeroForNegatives(t *testing.T) {
	h := newHarness(t, []string{"Int"}, nil, []struct {
		name string
		lhs  string
		rhs  []string
	}{{"div", "Int", []string{"Int", "Int"}}}, []string{"Int", "Int"}, "Int")

	node := h.call("div", "Int", h.param("Int", 0), h.param("Int", 1))
	v, err := Eval(node, []Value{Int(-7), Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != -3 {
		t.Fatalf("-7 div 2 = %d, want -3 (truncated toward zero)", v.Int())
	}
}

func TestEvalDivisionByZeroIsEvalError(t *testing.T) {
	h := newHarness(t, []string{"Int"}, nil, []struct {
		name string
		lhs  string
		rhs  []string
	}{{"div", "Int", []string{"Int", "Int"}}}, []string{"Int", "Int"}, "Int")

	node := h.call("div", "Int", h.param("Int", 0), h.param("Int", 1))
	_, err := Eval(node, []Value{Int(5), Int(0)})
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestEvalListBuiltins(t *testing.T) {
	h := newHarness(t, []string{"Int", "List"}, nil, []struct {
		name string
		lhs  string
		rhs  []string
	}{
		{"sum", "Int", []string{"List"}},
		{"reverse", "List", []string{"List"}},
		{"sort", "List", []string{"List"}},
	}, []string{"List"}, "Int")

	input := []Value{Seq([]int64{3, 1, 2})}

	sumNode := h.call("sum", "Int", h.param("List", 0))
	v, err := Eval(sumNode, input)
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 6 {
		t.Fatalf("sum = %d, want 6", v.Int())
	}

	revNode := h.call("reverse", "List", h.param("List", 0))
	rv, err := Eval(revNode, input)
	if err != nil {
		t.Fatal(err)
	}
	if !rv.Equal(Seq([]int64{2, 1, 3})) {
		t.Fatalf("reverse = %v, want [2 1 3]", rv.Seq())
	}

	sortNode := h.call("sort", "List", h.param("List", 0))
	sv, err := Eval(sortNode, input)
	if err != nil {
		t.Fatal(err)
	}
	if !sv.Equal(Seq([]int64{1, 2, 3})) {
		t.Fatalf("sort = %v, want [1 2 3]", sv.Seq())
	}
}

func TestEvalHigherOrder(t *testing.T) {
	h := newHarness(t, []string{"Int", "List", "Fun"}, map[string][]string{
		"FnOpName": {"is_even"},
	}, []struct {
		name string
		lhs  string
		rhs  []string
	}{
		{"fn_const", "Fun", []string{"FnOpName"}},
		{"filter", "List", []string{"Fun", "List"}},
		{"count", "Int", []string{"Fun", "List"}},
	}, []string{"List"}, "List")

	input := []Value{Seq([]int64{1, 2, 3, 4, 5, 6})}

	fn := h.call("fn_const", "Fun", h.enumLit("FnOpName", "is_even"))
	filterNode := h.call("filter", "List", fn, h.param("List", 0))
	v, err := Eval(filterNode, input)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(Seq([]int64{2, 4, 6})) {
		t.Fatalf("filter(is_even) = %v, want [2 4 6]", v.Seq())
	}

	countNode := h.call("count", "Int", fn, h.param("List", 0))
	cv, err := Eval(countNode, input)
	if err != nil {
		t.Fatal(err)
	}
	if cv.Int() != 3 {
		t.Fatalf("count(is_even) = %d, want 3", cv.Int())
	}
}

func TestEvalScanl1IncludesSeed(t *testing.T) {
	h := newHarness(t, []string{"Int", "List", "Fun"}, map[string][]string{
		"FnOpName": {"plus"},
	}, []struct {
		name string
		lhs  string
		rhs  []string
	}{
		{"fn_const", "Fun", []string{"FnOpName"}},
		{"scanl1", "List", []string{"Fun", "List"}},
	}, []string{"List"}, "List")

	input := []Value{Seq([]int64{1, 2, 3, 4})}
	fn := h.call("fn_const", "Fun", h.enumLit("FnOpName", "plus"))
	node := h.call("scanl1", "List", fn, h.param("List", 0))

	v, err := Eval(node, input)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(Seq([]int64{1, 3, 6, 10})) {
		t.Fatalf("scanl1(plus) = %v, want [1 3 6 10] (first element is the unfolded seed)", v.Seq())
	}
}
