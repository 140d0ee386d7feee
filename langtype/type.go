// Package langtype implements the typed grammar/spec model of §3–§4.A/4.B
// of the synthesizer: closed tagged variants for types and productions, and
// the Spec that bundles them for the enumerator and the interpreter.
//
// Grounded on the teacher's (nihei9/vartan) grammar/symbol.go and
// grammar/production.go: a closed, numerically-identified family with a
// read-only registry built once and shared thereafter. Unlike the teacher,
// types here are name-addressed rather than bit-packed, since the DSL has at
// most a few dozen types per spec and bit-packing bought the teacher table
// compactness we have no use for.
package langtype

import "fmt"

// Kind distinguishes the two closed Type variants.
type Kind int

const (
	KindEnum Kind = iota
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindValue:
		return "value"
	default:
		return "invalid"
	}
}

// Type is a closed tagged variant: EnumType (a finite ordered domain of
// string values) or ValueType (an opaque semantic type). Only ValueType may
// appear on a program's input/output signature.
type Type struct {
	kind   Kind
	name   string
	domain []string // populated only when kind == KindEnum
}

// NewEnumType builds an EnumType with the given ordered domain. The domain
// must be non-empty; callers validate uniqueness of the type name at the
// TypeSpec level, not here.
func NewEnumType(name string, domain []string) Type {
	d := make([]string, len(domain))
	copy(d, domain)
	return Type{kind: KindEnum, name: name, domain: d}
}

// NewValueType builds an opaque ValueType such as Int, Bool, Str or List.
func NewValueType(name string) Type {
	return Type{kind: KindValue, name: name}
}

func (t Type) Kind() Kind   { return t.kind }
func (t Type) Name() string { return t.name }

// Domain returns the EnumType's ordered domain values. ok is false for a
// ValueType.
func (t Type) Domain() (domain []string, ok bool) {
	if t.kind != KindEnum {
		return nil, false
	}
	return t.domain, true
}

// IsZero reports whether t is the zero Type value (no name set).
func (t Type) IsZero() bool {
	return t.name == ""
}

// Equal compares types by name. Type names are unique within a Spec (§3
// invariant), so name equality is structural equality.
func (t Type) Equal(other Type) bool {
	return t.name == other.name
}

func (t Type) String() string {
	if t.kind == KindEnum {
		return fmt.Sprintf("enum %s%v", t.name, t.domain)
	}
	return fmt.Sprintf("value %s", t.name)
}
