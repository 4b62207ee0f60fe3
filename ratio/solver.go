package ratio

import "ratiocycle/negcycle"

// direction selects the min or max variant of the solver; the max
// variant is the mirror image of the min one.
type direction int

const (
	minimize direction = iota
	maximize
)

// Solver computes the extremal cycle ratio of a graph: the minimum (or
// maximum) break-even ratio realised by any cycle, together with the
// argmin/argmax cycle, by repeatedly driving a negcycle.NegCycleFinder
// with a ratio-parameterised weight function.
type Solver[Node comparable, Edge any, D Number, R Number] struct {
	graph         negcycle.Graph[Node, Edge]
	api           API[Edge, D, R]
	dir           direction
	maxOuterIters int // 0 = unbounded
	maxRelaxIters int // forwarded to each inner NegCycleFinder; 0 = unbounded

	onRelaxPass      func(n int)
	onCycleFound     func()
	onOuterIteration func()
	onBudgetExceeded func()
}

// SolverOption configures a Solver at construction time.
type SolverOption[Node comparable, Edge any, D Number, R Number] func(*Solver[Node, Edge, D, R])

// WithMaxOuterIterations bounds the number of times the solver re-invokes
// the negative-cycle finder with a tightened ratio before giving up.
// Exceeding it surfaces ErrBudgetExhausted alongside the best (ratio,
// cycle) pair found so far. 0 (the default) means unbounded.
func WithMaxOuterIterations[Node comparable, Edge any, D Number, R Number](n int) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.maxOuterIters = n }
}

// WithMaxRelaxIterations bounds the number of relax passes each inner
// Howard stream performs, forwarded to negcycle.WithMaxIterations. 0 (the
// default) means unbounded.
func WithMaxRelaxIterations[Node comparable, Edge any, D Number, R Number](n int) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.maxRelaxIters = n }
}

// WithOnRelaxPass registers a callback invoked after each inner Howard
// stream ends, with the number of relax passes that stream performed.
func WithOnRelaxPass[Node comparable, Edge any, D Number, R Number](fn func(n int)) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.onRelaxPass = fn }
}

// WithOnCycleFound registers a callback invoked once for every negative
// cycle the solver discovers across all outer iterations.
func WithOnCycleFound[Node comparable, Edge any, D Number, R Number](fn func()) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.onCycleFound = fn }
}

// WithOnOuterIteration registers a callback invoked once per outer
// ratio-tightening iteration, before that iteration's inner Howard stream
// runs.
func WithOnOuterIteration[Node comparable, Edge any, D Number, R Number](fn func()) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.onOuterIteration = fn }
}

// WithOnBudgetExceeded registers a callback invoked whenever an inner
// Howard stream or the outer loop itself exhausts its iteration budget
// without converging.
func WithOnBudgetExceeded[Node comparable, Edge any, D Number, R Number](fn func()) SolverOption[Node, Edge, D, R] {
	return func(s *Solver[Node, Edge, D, R]) { s.onBudgetExceeded = fn }
}

// NewMin builds a Solver computing the minimum cycle ratio.
func NewMin[Node comparable, Edge any, D Number, R Number](g negcycle.Graph[Node, Edge], api API[Edge, D, R], opts ...SolverOption[Node, Edge, D, R]) *Solver[Node, Edge, D, R] {
	s := &Solver[Node, Edge, D, R]{graph: g, api: api, dir: minimize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMax builds a Solver computing the maximum cycle ratio.
func NewMax[Node comparable, Edge any, D Number, R Number](g negcycle.Graph[Node, Edge], api API[Edge, D, R], opts ...SolverOption[Node, Edge, D, R]) *Solver[Node, Edge, D, R] {
	s := &Solver[Node, Edge, D, R]{graph: g, api: api, dir: maximize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// improves reports whether candidate strictly improves on best given the
// solver's direction: "<" for the min variant, ">" for the max variant.
func (s *Solver[Node, Edge, D, R]) improves(candidate, best R) bool {
	if s.dir == minimize {
		return candidate < best
	}
	return candidate > best
}

// Run computes r* and its argmin/argmax cycle, starting from the feasible
// bound r0 and the caller-owned potential map dist.
//
// dist is mutated in place across every inner relax pass, same as
// negcycle.NegCycleFinder.Relax documents; callers inspecting dist after
// Run reflects the last inner finder's state, which satisfies the
// potential-soundness invariant only if the final pass yielded no cycle.
//
// If r0 exposes no negative cycle at all, Run returns (r0, zero Cycle,
// nil): the caller is responsible for choosing an r0 that does expose
// one.
func (s *Solver[Node, Edge, D, R]) Run(dist map[Node]D, r0 R) (R, negcycle.Cycle[Node, Edge], error) {
	best := r0
	var bestCycle negcycle.Cycle[Node, Edge]

	r := r0
	outer := 0
	for {
		outer++
		if s.maxOuterIters > 0 && outer > s.maxOuterIters {
			if s.onBudgetExceeded != nil {
				s.onBudgetExceeded()
			}
			return best, bestCycle, ErrBudgetExhausted
		}
		if s.onOuterIteration != nil {
			s.onOuterIteration()
		}

		finderOpts := []negcycle.Option[Node, Edge, D]{}
		if s.maxRelaxIters > 0 {
			finderOpts = append(finderOpts, negcycle.WithMaxIterations[Node, Edge, D](s.maxRelaxIters))
		}
		finder := negcycle.New[Node, Edge, D](s.graph, finderOpts...)

		rCapture := r
		w := func(e Edge) D { return s.api.Distance(rCapture, e) }

		it := finder.Howard(dist, w)
		improved := false
		for {
			cyc, ok := it.Next()
			if !ok {
				break
			}
			if s.onCycleFound != nil {
				s.onCycleFound()
			}
			ri, err := s.api.ZeroCancel(cyc.Edges())
			if err != nil {
				return best, bestCycle, err
			}
			if s.improves(ri, best) {
				best = ri
				bestCycle = cyc
				improved = true
			}
		}
		if s.onRelaxPass != nil {
			s.onRelaxPass(it.Passes())
		}
		if it.BudgetExceeded() && s.onBudgetExceeded != nil {
			s.onBudgetExceeded()
		}

		if !improved {
			return best, bestCycle, nil
		}
		r = best
	}
}
