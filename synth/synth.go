// Package synth implements §4.H: the outer synthesis loop. It increases loc
// from 1 up to a caller-supplied maximum, building a fresh enum.Enumerator
// at each loc and asking decide.Check whether any candidate it produces
// satisfies every example, returning the first accepted AST.
//
// Grounded on original_source/listproc/demo.py's top-level driver, which
// loops a growing size bound over a fresh enumerator call each iteration
// until a satisfying program turns up or the bound is exhausted.
package synth

import (
	"time"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/enum"
	"github.com/nihei9/tyrellgo/langtype"
)

// Options bounds and configures one synthesis run.
type Options struct {
	// MaxDepth bounds every enumerator call's tree depth (§4.F).
	MaxDepth int
	// MaxLoc is the largest loc the loop will try before giving up.
	MaxLoc int
	// Deadline, used only when HasDeadline is true, is passed through to
	// every enum.Enumerator so the whole run honors a single wall-clock
	// budget (§5).
	Deadline time.Time
	HasDeadline bool
	// Seed is passed through to enum.WithSeed for reproducibility (§4.F).
	Seed int64
}

// Result is the outcome of a Run: either an accepted program, or none,
// along with whether the run was cut short by the deadline rather than
// having genuinely exhausted the search space.
type Result struct {
	Program  *ast.Node
	Loc      int
	Found    bool
	TimedOut bool
}

// Run performs the §4.H loop: for loc = 1..opts.MaxLoc, build a fresh
// enumerator at (opts.MaxDepth, loc) and pull every candidate from it,
// testing each against examples via decide.Check. The first candidate that
// matches every example is returned immediately. If loc exhausts without a
// match, the loop moves to loc+1 — each loc gets its own Enumerator, so no
// search state (and no blocking-clause bookkeeping) is carried across loc
// values, matching §5's "fresh context per loc" rule.
//
// Run never runs a given loc more than once and never revisits a smaller
// loc after moving on, since every AST with InnerNodeCount() <= loc-1 is
// already a member of the loc search space — growing loc strictly adds
// candidates, it never removes any (§4.H property).
func Run(spec *langtype.Spec, examples []decide.Example, opts Options) (Result, error) {
	for loc := 1; loc <= opts.MaxLoc; loc++ {
		var enumOpts []enum.Option
		if opts.HasDeadline {
			enumOpts = append(enumOpts, enum.WithDeadline(opts.Deadline))
		}
		enumOpts = append(enumOpts, enum.WithSeed(opts.Seed))

		e, err := enum.New(spec, opts.MaxDepth, loc, enumOpts...)
		if err != nil {
			return Result{}, err
		}

		for {
			candidate, ok := e.Next()
			if !ok {
				break
			}
			matched, err := decide.Check(candidate, examples)
			if err != nil {
				return Result{}, err
			}
			if matched {
				return Result{Program: candidate, Loc: loc, Found: true}, nil
			}
		}

		if e.TimedOut() {
			return Result{TimedOut: true}, nil
		}
	}
	return Result{}, nil
}
