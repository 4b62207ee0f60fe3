package graphx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ratiocycle/graphx"
	"ratiocycle/negcycle"
	"ratiocycle/ratio"
)

func TestGraph_AddEdgeRegistersNodes(t *testing.T) {
	g := graphx.New[string]()
	g.AddEdge("A", "B", graphx.Attrs{"cost": 1, "time": 1})
	g.AddEdge("B", "C", graphx.Attrs{"cost": 2, "time": 1})

	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []string{"A", "B", "C"}, g.Nodes())
}

func TestGraph_ParallelEdgesKeepDistinctIDs(t *testing.T) {
	g := graphx.New[string]()
	e1 := g.AddEdge("A", "B", graphx.Attrs{"cost": 1, "time": 1})
	e2 := g.AddEdge("A", "B", graphx.Attrs{"cost": 2, "time": 1})

	require.NotEqual(t, e1.ID, e2.ID)
	require.Len(t, g.Edges("A"), 2)
}

func TestSetDefault_OnlyFillsMissingAttribute(t *testing.T) {
	g := graphx.New[string]()
	g.AddEdge("A", "B", graphx.Attrs{"cost": 5})
	g.AddEdge("B", "A", graphx.Attrs{"cost": -1, "time": 3})

	graphx.SetDefault[string](g, "time", 1)

	edgesAB := g.Edges("A")
	require.Equal(t, float64(1), edgesAB[0].Edge.Attrs.Time())

	edgesBA := g.Edges("B")
	require.Equal(t, float64(3), edgesBA[0].Edge.Attrs.Time(), "pre-existing attribute must not be overwritten")
}

func TestInitialDist_SeedsEveryNodeToZero(t *testing.T) {
	g := graphx.New[string]()
	g.AddEdge("A", "B", graphx.Attrs{"cost": 1, "time": 1})
	g.AddNode("C")

	dist := graphx.InitialDist[string](g)
	require.Equal(t, map[string]float64{"A": 0, "B": 0, "C": 0}, dist)
}

// Graph satisfies negcycle.Graph and plugs straight into a ratio.Solver,
// exercising the full stack end to end through the container type.
func TestGraph_SatisfiesNegcycleGraphAndSolves(t *testing.T) {
	g := graphx.New[string]()
	g.AddEdge("0", "1", graphx.Attrs{"cost": 2, "time": 1})
	g.AddEdge("1", "2", graphx.Attrs{"cost": 3, "time": 1})
	g.AddEdge("2", "3", graphx.Attrs{"cost": 1, "time": 1})
	g.AddEdge("3", "0", graphx.Attrs{"cost": -7, "time": 1})

	var _ negcycle.Graph[string, graphx.Edge[string]] = g

	dist := graphx.InitialDist[string](g)
	solver := ratio.NewMinCycleRatioSolver[string, graphx.Edge[string]](g,
		func(e graphx.Edge[string]) float64 { return e.Attrs.Cost() },
		func(e graphx.Edge[string]) float64 { return e.Attrs.Time() },
	)

	r, cycle, err := solver.Run(dist, 0)
	require.NoError(t, err)
	require.InDelta(t, -0.25, r, 1e-9)
	require.Equal(t, 4, cycle.Len())
}
