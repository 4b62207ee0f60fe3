package ratio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ratiocycle/negcycle"
	"ratiocycle/ratio"
)

type ceEdge struct {
	id         string
	cost, time float64
}

type ceGraph struct {
	order []string
	adj   map[string][]negcycle.EdgeTo[string, ceEdge]
}

func newCEGraph(order []string) *ceGraph {
	return &ceGraph{order: order, adj: make(map[string][]negcycle.EdgeTo[string, ceEdge])}
}

func (g *ceGraph) add(from, to, id string, cost, time float64) {
	g.adj[from] = append(g.adj[from], negcycle.EdgeTo[string, ceEdge]{To: to, Edge: ceEdge{id: id, cost: cost, time: time}})
}

func (g *ceGraph) Nodes() []string { return g.order }

func (g *ceGraph) Edges(from string) []negcycle.EdgeTo[string, ceEdge] { return g.adj[from] }

func edgeCost(e ceEdge) float64 { return e.cost }
func edgeTime(e ceEdge) float64 { return e.time }

// A single 4-cycle: minimum ratio is its own cost/time ratio.
func TestSolver_MinRatio_SingleCycle(t *testing.T) {
	g := newCEGraph([]string{"0", "1", "2", "3"})
	g.add("0", "1", "e01", 2, 1)
	g.add("1", "2", "e12", 3, 1)
	g.add("2", "3", "e23", 1, 1)
	g.add("3", "0", "e30", -7, 1)

	dist := map[string]float64{"0": 0, "1": 0, "2": 0, "3": 0}
	solver := ratio.NewMinCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime)

	r, cycle, err := solver.Run(dist, 0)
	require.NoError(t, err)
	require.InDelta(t, -0.25, r, 1e-9)
	require.Equal(t, 4, cycle.Len())
}

// Two candidate cycles: the solver must converge to the true minimum
// (the 2-cycle A<->B at ratio 2), not stop at the first negative cycle
// found under the initial r0.
func TestSolver_MinRatio_MultipleCandidates(t *testing.T) {
	g := newCEGraph([]string{"A", "B", "C"})
	g.add("A", "B", "ab", 5, 1)
	g.add("B", "A", "ba", -1, 1)
	g.add("A", "C", "ac", 10, 1)
	g.add("C", "A", "ca", -2, 1)

	dist := map[string]float64{"A": 0, "B": 0, "C": 0}
	solver := ratio.NewMinCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime)

	r, cycle, err := solver.Run(dist, 10)
	require.NoError(t, err)
	require.InDelta(t, 2.0, r, 1e-9)
	require.Equal(t, 2, cycle.Len())
}

// A cycle whose total time is zero surfaces ErrZeroDenominator instead of
// a bogus ratio.
func TestSolver_ZeroDenominatorCycle(t *testing.T) {
	g := newCEGraph([]string{"A", "B"})
	g.add("A", "B", "ab", -3, 0)
	g.add("B", "A", "ba", -1, 0)

	dist := map[string]float64{"A": 0, "B": 0}
	solver := ratio.NewMinCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime)

	_, _, err := solver.Run(dist, 0)
	require.ErrorIs(t, err, ratio.ErrZeroDenominator)
}

// Max variant mirrors the min one via the negated adapter.
func TestSolver_MaxRatio(t *testing.T) {
	g := newCEGraph([]string{"A", "B", "C"})
	g.add("A", "B", "ab", 5, 1)
	g.add("B", "A", "ba", -1, 1)
	g.add("A", "C", "ac", 10, 1)
	g.add("C", "A", "ca", -2, 1)

	dist := map[string]float64{"A": 0, "B": 0, "C": 0}
	solver := ratio.NewMaxCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime)

	r, cycle, err := solver.Run(dist, -100)
	require.NoError(t, err)
	require.InDelta(t, 4.0, r, 1e-9)
	require.Equal(t, 2, cycle.Len())
}

func TestSolver_NoFeasibleCycleAtR0(t *testing.T) {
	g := newCEGraph([]string{"A", "B"})
	g.add("A", "B", "ab", 1, 1)
	g.add("B", "A", "ba", 1, 1)

	dist := map[string]float64{"A": 0, "B": 0}
	solver := ratio.NewMinCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime)

	r, cycle, err := solver.Run(dist, 0)
	require.NoError(t, err)
	require.Equal(t, float64(0), r)
	require.Equal(t, 0, cycle.Len())
}

func TestSolver_OuterIterationBudget(t *testing.T) {
	g := newCEGraph([]string{"0", "1", "2", "3"})
	g.add("0", "1", "e01", 2, 1)
	g.add("1", "2", "e12", 3, 1)
	g.add("2", "3", "e23", 1, 1)
	g.add("3", "0", "e30", -7, 1)

	dist := map[string]float64{"0": 0, "1": 0, "2": 0, "3": 0}
	solver := ratio.NewMinCycleRatioSolver[string, ceEdge, float64](g, edgeCost, edgeTime,
		ratio.WithMaxOuterIterations[string, ceEdge, float64, float64](1))

	_, cycle, err := solver.Run(dist, 100)
	require.ErrorIs(t, err, ratio.ErrBudgetExhausted)
	require.Greater(t, cycle.Len(), 0)
}
