package spec

import (
	"testing"

	"github.com/nihei9/tyrellgo/langtype"
)

func TestParseAndAssemble(t *testing.T) {
	sp, err := ParseAndAssemble(testGrammar, "p", []string{"Int", "Int"}, "Int")
	if err != nil {
		t.Fatal(err)
	}
	if sp.Program.Name != "p" {
		t.Fatalf("sp.Program.Name = %q, want %q", sp.Program.Name, "p")
	}
	if sp.Program.Output.Name() != "Int" {
		t.Fatalf("sp.Program.Output.Name() = %q, want %q", sp.Program.Output.Name(), "Int")
	}

	intT, _ := sp.Types.Get("Int")
	var sawPlus bool
	for _, p := range sp.Productions.ByLHS(intT.Name()) {
		if p.Kind() == langtype.ProdFunction && p.Name() == "plus" {
			sawPlus = true
		}
	}
	if !sawPlus {
		t.Fatal("expected a plus Function production on Int")
	}
}

func TestAssembleRejectsUnknownType(t *testing.T) {
	text := `value Int;
func f: Int -> Bogus;
program p() -> Int;
`
	_, err := ParseAndAssemble(text, "p", nil, "Int")
	if err == nil {
		t.Fatal("expected an UnknownType error")
	}
}

func TestAssembleRejectsMissingProgram(t *testing.T) {
	root := &Root{Values: []*ValueDecl{{Name: "Int"}}}
	_, err := Assemble(root)
	if err == nil {
		t.Fatal("expected a BadSignature error for a missing program declaration")
	}
}
