package langtype

import (
	"fmt"
	"strconv"
	"strings"
)

// ProdKind distinguishes the three closed Production variants (§3).
type ProdKind int

const (
	ProdEnum ProdKind = iota
	ProdParam
	ProdFunction
)

func (k ProdKind) String() string {
	switch k {
	case ProdEnum:
		return "enum"
	case ProdParam:
		return "param"
	case ProdFunction:
		return "function"
	default:
		return "invalid"
	}
}

// ID is a globally unique, non-negative production identifier. Ids are
// assigned by a ProductionSpec in insertion order and are stable once
// assigned (§3 construction rule).
type ID int

// Production is a single grammar rule: an Enum choice, a Param reference, or
// a Function application. Productions are immutable once added to a
// ProductionSpec.
type Production struct {
	id   ID
	kind ProdKind
	lhs  Type

	// ProdEnum
	choice int

	// ProdParam
	paramIndex int

	// ProdFunction
	name string
	rhs  []Type
}

// ID returns the production's globally unique identifier.
func (p *Production) ID() ID { return p.id }

// Kind returns which of the three closed variants p is.
func (p *Production) Kind() ProdKind { return p.kind }

// LHS returns the type this production yields.
func (p *Production) LHS() Type { return p.lhs }

// Arity is 0 for Enum and Param productions and len(RHS()) for Function
// productions.
func (p *Production) Arity() int {
	if p.kind == ProdFunction {
		return len(p.rhs)
	}
	return 0
}

// RHS returns the ordered list of types a Function production consumes. It
// is empty for Enum and Param productions.
func (p *Production) RHS() []Type {
	return p.rhs
}

// Choice returns the index into the EnumType's domain this production picks.
// It is only meaningful when Kind() == ProdEnum.
func (p *Production) Choice() int { return p.choice }

// ChoiceValue returns the concrete domain string this Enum production picks.
func (p *Production) ChoiceValue() string {
	domain, _ := p.lhs.Domain()
	return domain[p.choice]
}

// ParamIndex returns the input-parameter position this production reads.
// It is only meaningful when Kind() == ProdParam.
func (p *Production) ParamIndex() int { return p.paramIndex }

// Name returns the function name. It is only meaningful when
// Kind() == ProdFunction.
func (p *Production) Name() string { return p.name }

func newEnumProduction(id ID, lhs Type, choice int) (*Production, error) {
	if lhs.Kind() != KindEnum {
		return nil, fmt.Errorf("enum production LHS must be an EnumType, got %v", lhs)
	}
	domain, _ := lhs.Domain()
	if choice < 0 || choice >= len(domain) {
		return nil, fmt.Errorf("enum choice %d out of range for domain of size %d", choice, len(domain))
	}
	return &Production{id: id, kind: ProdEnum, lhs: lhs, choice: choice}, nil
}

func newParamProduction(id ID, lhs Type, index int) (*Production, error) {
	if lhs.Kind() != KindValue {
		return nil, fmt.Errorf("param production LHS must be a ValueType, got %v", lhs)
	}
	if index < 0 {
		return nil, fmt.Errorf("param index must be non-negative, got %d", index)
	}
	return &Production{id: id, kind: ProdParam, lhs: lhs, paramIndex: index}, nil
}

func newFunctionProduction(id ID, name string, lhs Type, rhs []Type) (*Production, error) {
	if lhs.Kind() != KindValue {
		return nil, fmt.Errorf("function production LHS must be a ValueType, got %v", lhs)
	}
	r := make([]Type, len(rhs))
	copy(r, rhs)
	return &Production{id: id, kind: ProdFunction, name: name, lhs: lhs, rhs: r}, nil
}

// Render produces the readable form used for logging and for printing
// accepted ASTs: `fn(child, child)` for Function, `@paramN` for Param, and a
// quoted domain value for Enum.
func (p *Production) Render(children []string) string {
	switch p.kind {
	case ProdEnum:
		return strconv.Quote(p.ChoiceValue())
	case ProdParam:
		return fmt.Sprintf("@param%d", p.paramIndex)
	case ProdFunction:
		return fmt.Sprintf("%s(%s)", p.name, strings.Join(children, ", "))
	default:
		return "<invalid production>"
	}
}

func (p *Production) String() string {
	return p.Render(nil)
}
