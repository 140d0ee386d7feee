// Package spec implements §4.C and §6: a lexer/parser for the grammar-text
// surface and the assembly step that turns the parsed declarations into a
// langtype.Spec.
//
// Grounded on the teacher's (nihei9/vartan) spec/parser.go: a hand-written
// recursive-descent parser with a single token of lookahead, wrapping every
// syntax problem in a position-carrying error. The teacher's grammar
// surface is far richer (alternatives, directives, tree actions,
// precedence); ours is the four fixed statement kinds §6 names.
package spec

import (
	"fmt"
	"io"

	"github.com/nihei9/tyrellgo/synerr"
)

type parser struct {
	lex  *lexer
	peek *token
}

// Parse reads grammar text and returns its declarative AST. Parse errors
// carry a line number and surface as *synerr.Error with Kind Parse or
// ParseTree (§6).
func Parse(r io.Reader) (*Root, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: newLexer(string(src))}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseRoot()
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *parser) at(kind tokenKind) bool {
	return p.peek.kind == kind
}

func (p *parser) expect(kind tokenKind) (*token, error) {
	if p.peek.kind != kind {
		return nil, synerr.At(synerr.Parse, p.peek.pos.row, p.peek.pos.col, errExpectedKind(kind, p.peek.kind))
	}
	tok := p.peek
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *parser) expectIdent() (*token, error) {
	if p.peek.kind != tokIdent {
		return nil, synerr.At(synerr.Parse, p.peek.pos.row, p.peek.pos.col, errExpectedIdent)
	}
	tok := p.peek
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *parser) parseRoot() (*Root, error) {
	root := &Root{}
	sawAny := false
	for {
		switch p.peek.kind {
		case tokEOF:
			if !sawAny {
				return nil, synerr.At(synerr.ParseTree, 0, 0, errNoStatements)
			}
			return root, nil
		case tokKWEnum:
			decl, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			root.Enums = append(root.Enums, decl)
			sawAny = true
		case tokKWValue:
			decl, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			root.Values = append(root.Values, decl)
			sawAny = true
		case tokKWFunc:
			decl, err := p.parseFunc()
			if err != nil {
				return nil, err
			}
			root.Funcs = append(root.Funcs, decl)
			sawAny = true
		case tokKWProgram:
			decl, err := p.parseProgram()
			if err != nil {
				return nil, err
			}
			if root.Program != nil {
				return nil, synerr.At(synerr.ParseTree, decl.Pos.row, decl.Pos.col, fmt.Errorf("a grammar must have exactly one program declaration"))
			}
			root.Program = decl
			sawAny = true
		default:
			return nil, synerr.At(synerr.Parse, p.peek.pos.row, p.peek.pos.col, fmt.Errorf("unexpected token %q", p.peek.kind))
		}
	}
}

// parseEnum parses `enum <Name> { "v1", "v2", … ;}`.
func (p *parser) parseEnum() (*EnumDecl, error) {
	kw, err := p.expect(tokKWEnum)
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var domain []string
	for {
		s, err := p.expect(tokString)
		if err != nil {
			return nil, err
		}
		domain = append(domain, s.text)
		if p.at(tokComma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if len(domain) == 0 {
		return nil, synerr.At(synerr.ParseTree, kw.pos.row, kw.pos.col, errEmptyEnumDomain)
	}
	return &EnumDecl{Name: name.text, Domain: domain, Pos: kw.pos}, nil
}

// parseValue parses `value <Name>;`.
func (p *parser) parseValue() (*ValueDecl, error) {
	kw, err := p.expect(tokKWValue)
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return &ValueDecl{Name: name.text, Pos: kw.pos}, nil
}

// parseFunc parses `func <name>: <Tret> -> <T1>, <T2>, …;`.
func (p *parser) parseFunc() (*FuncDecl, error) {
	kw, err := p.expect(tokKWFunc)
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokColon); err != nil {
		return nil, err
	}
	lhs, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokArrow); err != nil {
		return nil, err
	}
	var rhs []string
	for {
		t, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, t.text)
		if p.at(tokComma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return &FuncDecl{Name: name.text, LHS: lhs.text, RHS: rhs, Pos: kw.pos}, nil
}

// parseProgram parses `program <name>(<T1>, <T2>, …) -> <Tret>;`.
func (p *parser) parseProgram() (*ProgramDecl, error) {
	kw, err := p.expect(tokKWProgram)
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var input []string
	if !p.at(tokRParen) {
		for {
			t, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			input = append(input, t.text)
			if p.at(tokComma) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokArrow); err != nil {
		return nil, err
	}
	out, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return &ProgramDecl{Name: name.text, Input: input, Output: out.text, Pos: kw.pos}, nil
}
