package ratio

import (
	"errors"

	"ratiocycle/negcycle"
)

// Number is the numeric constraint shared by the parametric weight domain
// D and the ratio field R. Re-exported from negcycle so callers only need
// to import one constraint, even though D and the ratio field are
// conceptually distinct (a solve never mixes ratio types, but nothing
// stops D and R from being different instantiations of Number; see API's
// two type parameters).
type Number = negcycle.Number

// ErrZeroDenominator is the domain error CostTimeAPI.ZeroCancel raises
// when a cycle's total time is zero: the break-even ratio is undefined,
// so the solver must propagate the error rather than divide by zero.
var ErrZeroDenominator = errors.New("ratio: cycle has zero total time, break-even ratio is undefined")

// ErrBudgetExhausted is returned by Solver.Run when MaxOuterIterations is
// set and exceeded without the outer loop reaching a fixed point. The
// solver's best-so-far (ratio, cycle) pair is still returned alongside
// the error.
var ErrBudgetExhausted = errors.New("ratio: outer-iteration budget exhausted before convergence")

// API is the two-method adapter contract callers implement to turn a
// ratio guess and an edge into a parametric weight, and a cycle into its
// break-even ratio.
//
// Distance must be total and pure over every edge at every ratio the
// solver might try, and must be monotone in r in one consistent direction
// across all edges of the problem; that monotonicity is what makes the
// outer fixed-point iteration converge.
type API[Edge any, D Number, R Number] interface {
	// Distance computes the parametric edge weight cost(e) - r*time(e)
	// for the cost/time formulation, or whatever analogous quantity the
	// caller's domain uses.
	Distance(r R, e Edge) D

	// ZeroCancel computes the break-even ratio for a cycle: the value of
	// r at which the parametric weight sum over the cycle is zero. It
	// must return an error, not a zero value, when that ratio is
	// undefined for the given cycle.
	ZeroCancel(cycle []Edge) (R, error)
}
