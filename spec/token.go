package spec

import "fmt"

// tokenKind enumerates the lexical categories of the grammar-text surface
// fixed by spec.md §6. Grounded on the teacher's spec/lexer.go tokenKind
// pattern (a small closed string-backed enum with a constant per symbol),
// trimmed to the handful of tokens our fixed four-statement grammar needs —
// the teacher's surface (directives, tree actions, precedence) has no
// counterpart here.
type tokenKind string

const (
	tokKWEnum    = tokenKind("enum")
	tokKWValue   = tokenKind("value")
	tokKWFunc    = tokenKind("func")
	tokKWProgram = tokenKind("program")

	tokIdent  = tokenKind("ident")
	tokString = tokenKind("string")

	tokLBrace = tokenKind("{")
	tokRBrace = tokenKind("}")
	tokLParen = tokenKind("(")
	tokRParen = tokenKind(")")
	tokColon  = tokenKind(":")
	tokComma  = tokenKind(",")
	tokArrow  = tokenKind("->")
	tokSemi   = tokenKind(";")

	tokEOF     = tokenKind("eof")
	tokInvalid = tokenKind("invalid")
)

var keywords = map[string]tokenKind{
	"enum":    tokKWEnum,
	"value":   tokKWValue,
	"func":    tokKWFunc,
	"program": tokKWProgram,
}

type position struct {
	row int
	col int
}

func (p position) String() string {
	return fmt.Sprintf("%d:%d", p.row, p.col)
}

type token struct {
	kind tokenKind
	text string
	pos  position
}
