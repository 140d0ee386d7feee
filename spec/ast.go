package spec

// The declarative AST produced by the parser — plain lists of type and
// function declarations, exactly as spec.md §4.C describes ("Parser output
// is declarative"). The assembly step (assemble.go) turns this into a
// langtype.Spec; the parser itself never looks at a langtype.Type.

// EnumDecl is `enum <Name> { "v1", "v2", … ;}`.
type EnumDecl struct {
	Name   string
	Domain []string
	Pos    position
}

// ValueDecl is `value <Name>;`.
type ValueDecl struct {
	Name string
	Pos  position
}

// FuncDecl is `func <name>: <Tret> -> <T1>, <T2>, …;`.
type FuncDecl struct {
	Name string
	LHS  string
	RHS  []string
	Pos  position
}

// ProgramDecl is `program <name>(<T1>, <T2>, …) -> <Tret>;`, supplied via
// the [[PROGSPEC]] substitution.
type ProgramDecl struct {
	Name   string
	Input  []string
	Output string
	Pos    position
}

// Root is the parser's full output: declaration order is preserved because
// later diagnostics (duplicate/unknown type) read better referencing the
// order the user wrote things in, and because Finalize's auto-generated
// productions are ordered by type-declaration order (§3).
type Root struct {
	Enums   []*EnumDecl
	Values  []*ValueDecl
	Funcs   []*FuncDecl
	Program *ProgramDecl
}
