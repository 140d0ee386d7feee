package enum

import (
	"time"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/langtype"
)

// deadlineCheckInterval bounds how often the search consults the wall clock.
// Checking on every node would dominate runtime at the tiny bounds this
// enumerator targets (§1's depth/loc are small integers); checking this
// rarely still catches a blown deadline quickly in practice. The very first
// query also checks, so a deadline that has already passed stops the search
// before it starts.
const deadlineCheckInterval = 2048

// memoKey identifies one enumerateType query. Because the search is pure —
// the result for a given (type, depth, loc) triple never depends on where
// in the tree the query originated — every searcher instance can safely
// cache query results and reuse them across sibling branches.
type memoKey struct {
	typeName string
	depth    int
	loc      int
}

// searcher holds the per-New() mutable state: the memo cache and the
// deadline/seen-node counter. A fresh searcher is built for every call to
// New so that no state (and so no blocking-clause bookkeeping) is ever
// shared across Enumerator instances — mirroring §5's "fresh context per
// loc" rule.
type searcher struct {
	spec *langtype.Spec
	cfg  *config

	memo  map[memoKey][]*ast.Node
	seen  int
	timedOut bool
}

// enumerateType returns every AST with LHS == t, Depth() <= depth and
// InnerNodeCount() <= loc. This is the template-position search of §4.F:
// each candidate production at this position stands in for one assignment
// to that position's production variable, and depth/loc stand in for the
// leaf-ness and location-budget constraints.
func (s *searcher) enumerateType(t langtype.Type, depth, loc int) []*ast.Node {
	if s.timedOut {
		return nil
	}
	s.seen++
	if (s.seen == 1 || s.seen%deadlineCheckInterval == 0) && s.cfg.hasDL && time.Now().After(s.cfg.deadline) {
		s.timedOut = true
		return nil
	}

	key := memoKey{typeName: t.Name(), depth: depth, loc: loc}
	if cached, ok := s.memo[key]; ok {
		return cached
	}

	var out []*ast.Node
	for _, p := range s.spec.Productions.ByLHS(t.Name()) {
		if p.Arity() == 0 {
			// Constraint: leaf productions are always admissible — they
			// consume no depth and no location budget.
			n, err := ast.Make(p, nil)
			if err != nil {
				continue
			}
			out = append(out, n)
			continue
		}
		// Constraint: a Function production needs at least one level of
		// depth and one unit of location budget for itself before its
		// children are considered.
		if depth < 1 || loc < 1 {
			continue
		}
		for _, children := range s.combos(p.RHS(), depth-1, loc-1) {
			n, err := ast.Make(p, children)
			if err != nil {
				continue
			}
			out = append(out, n)
		}
	}

	s.memo[key] = out
	return out
}

// combos enumerates every children-assignment for an arity-len(types)
// Function production such that every child respects depth and the
// children's combined InnerNodeCount() does not exceed budget. This is the
// "location budget" constraint distributed across a node's RHS positions:
// each position spends some of the remaining budget and passes the rest
// on, the same way a knapsack-style SMT encoding would constrain a sum of
// per-position location variables.
func (s *searcher) combos(types []langtype.Type, depth, budget int) [][]*ast.Node {
	if s.timedOut {
		return nil
	}
	if len(types) == 0 {
		return [][]*ast.Node{{}}
	}
	if budget < 0 {
		return nil
	}

	first, rest := types[0], types[1:]
	var out [][]*ast.Node
	for _, c := range s.enumerateType(first, depth, budget) {
		used := c.InnerNodeCount()
		for _, restCombo := range s.combos(rest, depth, budget-used) {
			combo := make([]*ast.Node, 0, len(rest)+1)
			combo = append(combo, c)
			combo = append(combo, restCombo...)
			out = append(out, combo)
		}
	}
	return out
}
