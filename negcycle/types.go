package negcycle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the negcycle package.
var (
	// ErrNilGraph indicates a nil Graph was passed to New.
	ErrNilGraph = errors.New("negcycle: graph is nil")

	// ErrMissingDist indicates a node visited during relaxation has no
	// entry in the caller-supplied distance map. The caller owns dist
	// and must seed it with every node in the graph before calling
	// Relax or Howard.
	ErrMissingDist = errors.New("negcycle: distance map missing entry for a graph node")
)

// Number is the constraint satisfied by the weight domain D and, in
// package ratio, the ratio field. It covers the signed numeric types that
// support the ring operations (+, -, *) and total ordering a cycle search
// needs; unsigned types are excluded because D must support subtraction
// producing negative values (a negative cycle is, by definition, a sum
// that is less than zero).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// EdgeTo pairs a destination node with the edge handle that leads to it.
// It is the element type yielded by Graph.Edges.
type EdgeTo[Node comparable, Edge any] struct {
	To   Node
	Edge Edge
}

// Graph is the read-only view the finder consumes. Implementations must
// return nodes and per-node edge lists in a stable order: the same order
// on every call within one solve, so that relaxation and cycle detection
// are deterministic. Package graphx supplies one concrete implementation;
// any other container satisfying this interface works equally well.
type Graph[Node comparable, Edge any] interface {
	// Nodes returns every node in the graph, in a fixed iteration order.
	Nodes() []Node

	// Edges returns every edge outgoing from from, in a fixed iteration
	// order, preserving parallel edges.
	Edges(from Node) []EdgeTo[Node, Edge]
}

// WeightFunc is a pure function mapping an edge handle to its weight in
// the domain D. The finder may evaluate WeightFunc on the same edge more
// than once per relax pass; it must return identical results each time.
type WeightFunc[Edge any, D Number] func(e Edge) D

// policyLink records, for one target node, the edge that most recently
// improved its distance and the source node that edge came from. The
// policy map induces a functional graph: each node has at most one
// out-pointer in policy-space.
type policyLink[Node comparable, Edge any] struct {
	from Node
	edge Edge
}

// Cycle is a negative cycle reported by Howard, carrying both its edges
// and the nodes they depart from, both listed in reverse traversal order
// (following policy links backwards from the node the scan found).
type Cycle[Node comparable, Edge any] struct {
	edges []Edge
	nodes []Node
}

// Edges returns the cycle's edges in reverse traversal order.
func (c Cycle[Node, Edge]) Edges() []Edge { return c.edges }

// Nodes returns the cycle's nodes in reverse traversal order. len(Nodes())
// == len(Edges()): Nodes()[i] is the node Edges()[i] departs from.
func (c Cycle[Node, Edge]) Nodes() []Node { return c.nodes }

// Len returns the number of edges (equivalently, nodes) in the cycle.
func (c Cycle[Node, Edge]) Len() int { return len(c.edges) }

// String renders the cycle as its node sequence joined by "->", closing
// back on the first node.
func (c Cycle[Node, Edge]) String() string {
	if len(c.nodes) == 0 {
		return "<empty cycle>"
	}
	parts := make([]string, len(c.nodes)+1)
	for i, n := range c.nodes {
		parts[i] = fmt.Sprint(n)
	}
	parts[len(c.nodes)] = fmt.Sprint(c.nodes[0])
	return strings.Join(parts, "->")
}
