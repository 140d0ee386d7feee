package langtype

import "fmt"

// TypeSpec is a name-keyed registry of Types. Insertion order is preserved
// so that enumeration over types (and the Enum/Param productions later
// derived from them) is deterministic (§3).
//
// Grounded on the teacher's grammar.SymbolTable (grammar/symbol.go), which
// keeps parallel text<->symbol maps plus an ordered text slice for the same
// reason: deterministic iteration over a registry built once and read many
// times.
type TypeSpec struct {
	order []string
	byName map[string]Type
}

func NewTypeSpec() *TypeSpec {
	return &TypeSpec{byName: map[string]Type{}}
}

// Define registers t. It fails if a type with the same name was already
// defined (§3 invariant: type names are unique within a spec).
func (ts *TypeSpec) Define(t Type) error {
	if _, ok := ts.byName[t.Name()]; ok {
		return fmt.Errorf("type %q already defined", t.Name())
	}
	ts.byName[t.Name()] = t
	ts.order = append(ts.order, t.Name())
	return nil
}

func (ts *TypeSpec) Get(name string) (Type, bool) {
	t, ok := ts.byName[name]
	return t, ok
}

// Types returns every defined type in insertion order.
func (ts *TypeSpec) Types() []Type {
	out := make([]Type, len(ts.order))
	for i, name := range ts.order {
		out[i] = ts.byName[name]
	}
	return out
}

func (ts *TypeSpec) Len() int { return len(ts.order) }

// ProductionSpec is a vector of productions indexed by id, plus an
// LHS-name -> productions index maintained in insertion order (§3).
type ProductionSpec struct {
	byID   []*Production
	byLHS  map[string][]*Production
}

func NewProductionSpec() *ProductionSpec {
	return &ProductionSpec{byLHS: map[string][]*Production{}}
}

func (ps *ProductionSpec) nextID() ID {
	return ID(len(ps.byID))
}

func (ps *ProductionSpec) append(p *Production) {
	ps.byID = append(ps.byID, p)
	ps.byLHS[p.LHS().Name()] = append(ps.byLHS[p.LHS().Name()], p)
}

// AddEnum creates and registers a new Enum production, guaranteed to be
// distinct from every existing production by virtue of its fresh id.
func (ps *ProductionSpec) AddEnum(lhs Type, choice int) (*Production, error) {
	p, err := newEnumProduction(ps.nextID(), lhs, choice)
	if err != nil {
		return nil, err
	}
	ps.append(p)
	return p, nil
}

// AddParam creates and registers a new Param production.
func (ps *ProductionSpec) AddParam(lhs Type, index int) (*Production, error) {
	p, err := newParamProduction(ps.nextID(), lhs, index)
	if err != nil {
		return nil, err
	}
	ps.append(p)
	return p, nil
}

// AddFunction creates and registers a new Function production.
func (ps *ProductionSpec) AddFunction(name string, lhs Type, rhs []Type) (*Production, error) {
	p, err := newFunctionProduction(ps.nextID(), name, lhs, rhs)
	if err != nil {
		return nil, err
	}
	ps.append(p)
	return p, nil
}

func (ps *ProductionSpec) ByID(id ID) (*Production, bool) {
	if id < 0 || int(id) >= len(ps.byID) {
		return nil, false
	}
	return ps.byID[id], true
}

// ByLHS returns the productions whose LHS type has the given name, in
// insertion order. It returns nil if none exist.
func (ps *ProductionSpec) ByLHS(lhsName string) []*Production {
	return ps.byLHS[lhsName]
}

func (ps *ProductionSpec) All() []*Production {
	return ps.byID
}

func (ps *ProductionSpec) Len() int { return len(ps.byID) }

// ProgramSpec is the (name, input, output) signature a program must match.
// Only ValueTypes may appear here (§3).
type ProgramSpec struct {
	Name   string
	Input  []Type
	Output Type
}

func NewProgramSpec(name string, input []Type, output Type) (*ProgramSpec, error) {
	for i, t := range input {
		if t.Kind() != KindValue {
			return nil, fmt.Errorf("program input %d (%s) is not a ValueType", i, t.Name())
		}
	}
	if output.Kind() != KindValue {
		return nil, fmt.Errorf("program output (%s) is not a ValueType", output.Name())
	}
	return &ProgramSpec{Name: name, Input: input, Output: output}, nil
}

// Spec bundles a TypeSpec, ProductionSpec and ProgramSpec. It is built once
// by Finalize and shared read-only by the enumerator and the decider (§3
// lifecycle).
type Spec struct {
	Types       *TypeSpec
	Productions *ProductionSpec
	Program     *ProgramSpec
}

// Finalize auto-generates one Enum production per element of every
// EnumType's domain (in type-insertion, then domain-index order) and one
// Param production per input position (in signature order), then bundles
// everything into a Spec. Any Function productions the caller already
// registered on prods keep the ids they were assigned; this call only adds
// to the vector, never reorders it (§3 construction rule).
//
// Grounded on the Python reference's TyrellSpec.__init__
// (original_source/spec/spec.py), which performs this exact two-pass
// auto-generation before bundling.
func Finalize(types *TypeSpec, prods *ProductionSpec, prog *ProgramSpec) (*Spec, error) {
	for _, t := range types.Types() {
		if t.Kind() != KindEnum {
			continue
		}
		domain, _ := t.Domain()
		for i := range domain {
			if _, err := prods.AddEnum(t, i); err != nil {
				return nil, err
			}
		}
	}
	for i, t := range prog.Input {
		if _, err := prods.AddParam(t, i); err != nil {
			return nil, err
		}
	}
	return &Spec{Types: types, Productions: prods, Program: prog}, nil
}
