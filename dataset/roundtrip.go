package dataset

import (
	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/interp"
	"github.com/nihei9/tyrellgo/langtype"
	"github.com/nihei9/tyrellgo/synth"
)

// MakeIOSet evaluates prog against every input tuple in samples, building one
// decide.Example per tuple. Grounded on demo.py's do_make_ioset, which does
// exactly this to turn a known program into an example set.
func MakeIOSet(prog *ast.Node, samples [][]interp.Value) ([]decide.Example, error) {
	out := make([]decide.Example, len(samples))
	for i, s := range samples {
		v, err := interp.Eval(prog, s)
		if err != nil {
			return nil, err
		}
		out[i] = decide.Example{Input: s, Output: v}
	}
	return out, nil
}

// ThereAndBackAgain is the §8 roundtrip property check: given a known
// program, rebuild its example set via MakeIOSet, then ask synth.Run to
// recover a program satisfying that same example set. It does not require
// the recovered program to be syntactically identical to prog — only that
// it reproduces the same outputs, which decide.Check already guarantees for
// whatever synth.Run returns.
//
// Grounded on demo.py's there_and_back_again, which performs precisely this
// two-step "evaluate known program into examples, then resynthesize" check.
func ThereAndBackAgain(spec *langtype.Spec, prog *ast.Node, samples [][]interp.Value, opts synth.Options) (synth.Result, []decide.Example, error) {
	examples, err := MakeIOSet(prog, samples)
	if err != nil {
		return synth.Result{}, nil, err
	}
	result, err := synth.Run(spec, examples, opts)
	if err != nil {
		return synth.Result{}, examples, err
	}
	return result, examples, nil
}
