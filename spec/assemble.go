package spec

import (
	"fmt"
	"strings"

	"github.com/nihei9/tyrellgo/langtype"
	"github.com/nihei9/tyrellgo/synerr"
)

// ProgSpecPlaceholder is the token the caller's program signature is
// substituted into before parsing, so a single grammar file serves many
// signatures (§4.C, §6).
const ProgSpecPlaceholder = "[[PROGSPEC]]"

// SubstituteProgSpec renders `program <name>(<T1>, <T2>, …) -> <Tret>;` and
// replaces ProgSpecPlaceholder with it. Grounded on the Python reference's
// parse_spec_with_progspec (original_source/listproc/listproc_util.py).
func SubstituteProgSpec(grammarText, name string, input []string, output string) string {
	progStmt := fmt.Sprintf("program %s(%s) -> %s;", name, strings.Join(input, ", "), output)
	return strings.Replace(grammarText, ProgSpecPlaceholder, progStmt, 1)
}

// Assemble turns a parsed Root into a finished langtype.Spec: it defines
// every declared type, declares every function production, validates the
// program signature, and finally calls langtype.Finalize to auto-generate
// the Enum and Param productions (§4.C, §3).
//
// Diagnostics match §4.C: duplicate type name => DuplicateType; unknown type
// reference => UnknownType; malformed program header => BadSignature.
func Assemble(root *Root) (*langtype.Spec, error) {
	if root.Program == nil {
		return nil, synerr.New(synerr.BadSignature, fmt.Errorf("grammar has no program declaration"))
	}

	types := langtype.NewTypeSpec()

	for _, v := range root.Values {
		if err := types.Define(langtype.NewValueType(v.Name)); err != nil {
			return nil, synerr.At(synerr.DuplicateType, v.Pos.row, v.Pos.col, err)
		}
	}
	for _, e := range root.Enums {
		if err := types.Define(langtype.NewEnumType(e.Name, e.Domain)); err != nil {
			return nil, synerr.At(synerr.DuplicateType, e.Pos.row, e.Pos.col, err)
		}
	}

	lookup := func(name string, pos position) (langtype.Type, error) {
		t, ok := types.Get(name)
		if !ok {
			return langtype.Type{}, synerr.At(synerr.UnknownType, pos.row, pos.col, fmt.Errorf("undefined type %q", name))
		}
		return t, nil
	}

	prods := langtype.NewProductionSpec()
	for _, f := range root.Funcs {
		lhs, err := lookup(f.LHS, f.Pos)
		if err != nil {
			return nil, err
		}
		rhs := make([]langtype.Type, len(f.RHS))
		for i, name := range f.RHS {
			t, err := lookup(name, f.Pos)
			if err != nil {
				return nil, err
			}
			rhs[i] = t
		}
		if _, err := prods.AddFunction(f.Name, lhs, rhs); err != nil {
			return nil, synerr.At(synerr.BadSignature, f.Pos.row, f.Pos.col, err)
		}
	}

	input := make([]langtype.Type, len(root.Program.Input))
	for i, name := range root.Program.Input {
		t, err := lookup(name, root.Program.Pos)
		if err != nil {
			return nil, err
		}
		input[i] = t
	}
	output, err := lookup(root.Program.Output, root.Program.Pos)
	if err != nil {
		return nil, err
	}

	prog, err := langtype.NewProgramSpec(root.Program.Name, input, output)
	if err != nil {
		return nil, synerr.At(synerr.BadSignature, root.Program.Pos.row, root.Program.Pos.col, err)
	}

	return langtype.Finalize(types, prods, prog)
}

// ParseAndAssemble is the end-to-end §4.C entry point: substitute the
// program signature, parse, and assemble.
func ParseAndAssemble(grammarText, progName string, input []string, output string) (*langtype.Spec, error) {
	full := SubstituteProgSpec(grammarText, progName, input, output)
	root, err := Parse(strings.NewReader(full))
	if err != nil {
		return nil, err
	}
	return Assemble(root)
}
