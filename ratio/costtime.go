package ratio

import "ratiocycle/negcycle"

// CostTimeAPI is the standard cost/time ratio adapter: the parametric
// weight is cost(e) - r*time(e), and a cycle's break-even ratio is
// sum(cost)/sum(time). It unifies the weight domain D and the ratio field
// R into one numeric type N, the common case. Callers whose weight domain
// and ratio field genuinely differ (e.g. exact-rational ratios over
// floating-point costs) implement API directly instead.
type CostTimeAPI[Edge any, N Number] struct {
	// Cost extracts an edge's cost attribute.
	Cost func(Edge) N
	// Time extracts an edge's time attribute.
	Time func(Edge) N
}

// Distance implements API.
func (a CostTimeAPI[Edge, N]) Distance(r N, e Edge) N {
	return a.Cost(e) - r*a.Time(e)
}

// ZeroCancel implements API: sum(cost)/sum(time), or ErrZeroDenominator
// when the cycle's total time is zero.
func (a CostTimeAPI[Edge, N]) ZeroCancel(cycle []Edge) (N, error) {
	var totalCost, totalTime N
	for _, e := range cycle {
		totalCost += a.Cost(e)
		totalTime += a.Time(e)
	}
	var zero N
	if totalTime == zero {
		return zero, ErrZeroDenominator
	}
	return totalCost / totalTime, nil
}

// NegatedCostTimeAPI mirrors CostTimeAPI but negates the parametric
// weight, turning the min-ratio fixed point into the max-ratio one.
type NegatedCostTimeAPI[Edge any, N Number] struct {
	Inner CostTimeAPI[Edge, N]
}

// Distance implements API.
func (a NegatedCostTimeAPI[Edge, N]) Distance(r N, e Edge) N {
	return -a.Inner.Distance(r, e)
}

// ZeroCancel implements API. Negating every edge weight doesn't change
// where the cost/time ratio sum crosses zero, so this delegates directly.
func (a NegatedCostTimeAPI[Edge, N]) ZeroCancel(cycle []Edge) (N, error) {
	return a.Inner.ZeroCancel(cycle)
}

// NewMinCycleRatioSolver builds the convenience wrapper for the common
// case: a Solver computing the minimum cost/time ratio cycle, given
// functions extracting each edge's cost and time.
func NewMinCycleRatioSolver[Node comparable, Edge any, N Number](g negcycle.Graph[Node, Edge], cost, time func(Edge) N, opts ...SolverOption[Node, Edge, N, N]) *Solver[Node, Edge, N, N] {
	api := CostTimeAPI[Edge, N]{Cost: cost, Time: time}
	return NewMin[Node, Edge, N, N](g, api, opts...)
}

// NewMaxCycleRatioSolver builds a Solver computing the maximum cost/time
// ratio cycle, via the negated adapter.
func NewMaxCycleRatioSolver[Node comparable, Edge any, N Number](g negcycle.Graph[Node, Edge], cost, time func(Edge) N, opts ...SolverOption[Node, Edge, N, N]) *Solver[Node, Edge, N, N] {
	api := NegatedCostTimeAPI[Edge, N]{Inner: CostTimeAPI[Edge, N]{Cost: cost, Time: time}}
	return NewMax[Node, Edge, N, N](g, api, opts...)
}
