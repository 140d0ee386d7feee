package langtype

import "testing"

func buildTestSpec(t *testing.T) *Spec {
	t.Helper()
	types := NewTypeSpec()
	if err := types.Define(NewValueType("Int")); err != nil {
		t.Fatal(err)
	}
	if err := types.Define(NewEnumType("Digit", []string{"0", "1", "2"})); err != nil {
		t.Fatal(err)
	}

	prods := NewProductionSpec()
	intT, _ := types.Get("Int")
	if _, err := prods.AddFunction("plus", intT, []Type{intT, intT}); err != nil {
		t.Fatal(err)
	}

	prog, err := NewProgramSpec("p", []Type{intT, intT}, intT)
	if err != nil {
		t.Fatal(err)
	}

	sp, err := Finalize(types, prods, prog)
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

func TestTypeSpecDuplicateRejected(t *testing.T) {
	ts := NewTypeSpec()
	if err := ts.Define(NewValueType("Int")); err != nil {
		t.Fatal(err)
	}
	if err := ts.Define(NewValueType("Int")); err == nil {
		t.Fatal("expected duplicate type definition to fail")
	}
}

func TestFinalizeAddsEnumAndParamProductions(t *testing.T) {
	sp := buildTestSpec(t)

	// 1 user Function + 3 Enum (Digit domain size 3) + 2 Param (program arity 2).
	if got, want := sp.Productions.Len(), 1+3+2; got != want {
		t.Fatalf("Productions.Len() = %d, want %d", got, want)
	}

	digitT, _ := sp.Types.Get("Digit")
	enumProds := sp.Productions.ByLHS(digitT.Name())
	if len(enumProds) != 3 {
		t.Fatalf("len(enumProds) = %d, want 3", len(enumProds))
	}
	wantDomain := []string{"0", "1", "2"}
	for i, p := range enumProds {
		if p.Kind() != ProdEnum {
			t.Fatalf("enumProds[%d].Kind() = %v, want ProdEnum", i, p.Kind())
		}
		if p.ChoiceValue() != wantDomain[i] {
			t.Fatalf("enumProds[%d].ChoiceValue() = %q, want %q", i, p.ChoiceValue(), wantDomain[i])
		}
	}

	intT, _ := sp.Types.Get("Int")
	paramProds := sp.Productions.ByLHS(intT.Name())
	var paramCount int
	for _, p := range paramProds {
		if p.Kind() == ProdParam {
			paramCount++
		}
	}
	if paramCount != 2 {
		t.Fatalf("paramCount = %d, want 2", paramCount)
	}
}

func TestProductionArity(t *testing.T) {
	sp := buildTestSpec(t)
	intT, _ := sp.Types.Get("Int")
	for _, p := range sp.Productions.ByLHS(intT.Name()) {
		switch p.Kind() {
		case ProdFunction:
			if p.Arity() != 2 {
				t.Fatalf("function production arity = %d, want 2", p.Arity())
			}
		case ProdParam, ProdEnum:
			if p.Arity() != 0 {
				t.Fatalf("%v production arity = %d, want 0", p.Kind(), p.Arity())
			}
		}
	}
}

func TestProgramSpecRejectsEnumSignature(t *testing.T) {
	enumT := NewEnumType("E", []string{"a"})
	if _, err := NewProgramSpec("p", nil, enumT); err == nil {
		t.Fatal("expected enum output type to be rejected")
	}
}
