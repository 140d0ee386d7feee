package dataset

import (
	"testing"

	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/synth"
)

// TestThereAndBackAgain is §8's roundtrip property: take a hand-authored
// ground-truth program, turn it into an example set via MakeIOSet, then ask
// synth.Run to recover a program satisfying that same example set. The
// recovered program need not equal the ground truth syntactically — only
// reproduce its outputs, which decide.Check verifies directly.
func TestThereAndBackAgain(t *testing.T) {
	for _, subdomain := range []string{"bool_bool", "bool2_bool", "int2_int", "str_str", "str2_str", "list2_int"} {
		subdomain := subdomain
		t.Run(subdomain, func(t *testing.T) {
			sd := Subdomains[subdomain]
			sp, err := BuildSpec(subdomain, sd.Type)
			if err != nil {
				t.Fatal(err)
			}

			for problem := range sd.Problems {
				problem := problem
				t.Run(problem, func(t *testing.T) {
					prog, err := GroundTruth(sp, subdomain, problem)
					if err != nil {
						t.Fatal(err)
					}
					samples := SamplesForTypes(sd.Type.Input)

					result, examples, err := ThereAndBackAgain(sp, prog, samples, synth.Options{MaxDepth: 4, MaxLoc: 10})
					if err != nil {
						t.Fatal(err)
					}
					if !result.Found {
						t.Fatalf("%s/%s: expected a program reproducing %d ground-truth examples to be found", subdomain, problem, len(examples))
					}
					matched, err := decide.Check(result.Program, examples)
					if err != nil {
						t.Fatal(err)
					}
					if !matched {
						t.Fatalf("%s/%s: recovered program does not reproduce the ground truth's own example set", subdomain, problem)
					}
				})
			}
		})
	}
}
