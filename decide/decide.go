// Package decide implements §4.G: the example-constraint decider. A
// candidate AST is accepted iff it evaluates, via interp.Eval, to the
// expected output on every example input, with any *synerr.Error of Kind
// Eval treated as "this candidate is wrong" rather than propagated —
// exactly the non-fatal/local disposition spec.md §7's error table assigns
// to Eval.
//
// Grounded on original_source/listproc/demo.py's there_and_back_again,
// which drives a candidate program against a fixed example set and checks
// every output for equality the same way.
package decide

import (
	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/interp"
	"github.com/nihei9/tyrellgo/synerr"
)

// Example is one (input, expected output) pair a candidate must reproduce.
type Example struct {
	Input  []interp.Value
	Output interp.Value
}

// Check evaluates node against every example's input and compares the
// result to that example's expected output via interp.Value.Equal. It
// returns true iff node matches every example.
//
// A synerr.Error of Kind Eval (e.g. an out-of-range access, a division by
// zero, a type mismatch surfaced only by actually running the program) is
// swallowed and counted as a non-match, per §7: Eval is "non-fatal, local
// — the decider treats the candidate as not matching and moves on." Any
// other error (ArityMismatch, TypeMismatch against the Spec itself) is a
// bug in the enumerator, not a rejected candidate, and is returned so the
// caller can surface it loudly instead of silently discarding a malformed
// candidate.
func Check(node *ast.Node, examples []Example) (bool, error) {
	for _, ex := range examples {
		got, err := interp.Eval(node, ex.Input)
		if err != nil {
			if synerr.Is(err, synerr.Eval) {
				return false, nil
			}
			return false, err
		}
		if !got.Equal(ex.Output) {
			return false, nil
		}
	}
	return true, nil
}
