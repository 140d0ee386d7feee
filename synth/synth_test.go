package synth

import (
	"testing"
	"time"

	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/interp"
	"github.com/nihei9/tyrellgo/langtype"
)

func buildArithSpec(t *testing.T) *langtype.Spec {
	t.Helper()
	types := langtype.NewTypeSpec()
	if err := types.Define(langtype.NewValueType("Int")); err != nil {
		t.Fatal(err)
	}
	intT, _ := types.Get("Int")

	prods := langtype.NewProductionSpec()
	if _, err := prods.AddFunction("plus", intT, []langtype.Type{intT, intT}); err != nil {
		t.Fatal(err)
	}
	if _, err := prods.AddFunction("minus", intT, []langtype.Type{intT, intT}); err != nil {
		t.Fatal(err)
	}

	prog, err := langtype.NewProgramSpec("p", []langtype.Type{intT, intT}, intT)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := langtype.Finalize(types, prods, prog)
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

func TestRunFindsPlus(t *testing.T) {
	sp := buildArithSpec(t)
	examples := []decide.Example{
		{Input: []interp.Value{interp.Int(0), interp.Int(0)}, Output: interp.Int(0)},
		{Input: []interp.Value{interp.Int(1), interp.Int(1)}, Output: interp.Int(2)},
		{Input: []interp.Value{interp.Int(10), interp.Int(3)}, Output: interp.Int(13)},
	}
	result, err := Run(sp, examples, Options{MaxDepth: 4, MaxLoc: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found {
		t.Fatal("expected a program satisfying plus-shaped examples to be found")
	}
	if got, err := checkAll(result, examples); err != nil || !got {
		t.Fatalf("recovered program does not satisfy its own examples: %v (err %v)", result.Program, err)
	}
}

func checkAll(r Result, examples []decide.Example) (bool, error) {
	return decide.Check(r.Program, examples)
}

func TestRunReportsNotFoundWithinSmallBounds(t *testing.T) {
	sp := buildArithSpec(t)
	// At loc<=1, depth<=1 the only candidates are @param0, @param1 and
	// plus/minus over them; on input (1, 1) these yield 1, 2 or 0, so an
	// expected output of 999 is out of reach.
	examples := []decide.Example{
		{Input: []interp.Value{interp.Int(1), interp.Int(1)}, Output: interp.Int(999)},
	}
	result, err := Run(sp, examples, Options{MaxDepth: 1, MaxLoc: 1})
	if err != nil {
		t.Fatal(err)
	}
	if result.Found {
		t.Fatalf("expected no program within depth=1,loc=1 to equal 999, got %v", result.Program)
	}
}

func TestRunHonorsDeadline(t *testing.T) {
	sp := buildArithSpec(t)
	examples := []decide.Example{
		{Input: []interp.Value{interp.Int(1), interp.Int(1)}, Output: interp.Int(999)},
	}
	result, err := Run(sp, examples, Options{
		MaxDepth:    8,
		MaxLoc:      10,
		Deadline:    time.Now().Add(-time.Second),
		HasDeadline: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Found {
		t.Fatal("did not expect a match with an already-expired deadline")
	}
	if !result.TimedOut {
		t.Fatal("expected TimedOut to be reported for an already-expired deadline")
	}
}
