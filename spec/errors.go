package spec

import "fmt"

// Sentinel causes for synerr.Parse/synerr.ParseTree errors, grounded on the
// teacher's spec/syntax_error.go (a flat list of named *SyntaxError values
// rather than ad-hoc fmt.Errorf strings scattered through the parser).
var (
	errUnclosedString  = fmt.Errorf("unclosed string literal")
	errInvalidEscape   = fmt.Errorf("invalid escape sequence")
	errExpectedIdent   = fmt.Errorf("expected an identifier")
	errExpectedString  = fmt.Errorf("expected a quoted string")
	errExpectedKind    = func(want tokenKind, got tokenKind) error {
		return fmt.Errorf("expected %q, got %q", want, got)
	}
	errEmptyEnumDomain = fmt.Errorf("an enum type needs at least one value")
	errNoStatements    = fmt.Errorf("a grammar must declare at least one type or function")
)

func errUnexpectedChar(r rune) error {
	return fmt.Errorf("unexpected character %q", r)
}
