package graphx

import (
	"sync"

	"ratiocycle/negcycle"
)

// Attrs holds an edge's numeric attributes, keyed by stable attribute
// names such as "cost" and "time". Attributes absent from the map read as
// zero unless SetDefault has filled them in.
type Attrs map[string]float64

// Get returns the named attribute, or 0 if it is absent.
func (a Attrs) Get(name string) float64 {
	return a[name]
}

// Cost returns the "cost" attribute.
func (a Attrs) Cost() float64 { return a.Get("cost") }

// Time returns the "time" attribute.
func (a Attrs) Time() float64 { return a.Get("time") }

// Edge is the opaque edge handle graphx.Graph exposes to negcycle and
// ratio. ID distinguishes parallel edges between the same two nodes.
type Edge[Node comparable] struct {
	ID    int
	From  Node
	To    Node
	Attrs Attrs
}

// Graph is a generic, concurrency-safe directed multigraph. Nodes are
// added explicitly or implicitly via AddEdge; both Nodes and Edges return
// results in deterministic insertion order, as negcycle.Graph requires.
//
// A single RWMutex guards both the node list and the adjacency list,
// since the two are always read and written together here.
type Graph[Node comparable] struct {
	mu sync.RWMutex

	nodes     []Node
	nodeIndex map[Node]struct{}
	adjacency map[Node][]Edge[Node]

	nextEdgeID int
}

// New creates an empty Graph.
func New[Node comparable]() *Graph[Node] {
	return &Graph[Node]{
		nodeIndex: make(map[Node]struct{}),
		adjacency: make(map[Node][]Edge[Node]),
	}
}

// AddNode registers n if it is not already present. Safe to call more
// than once for the same node.
func (g *Graph[Node]) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(n)
}

func (g *Graph[Node]) addNodeLocked(n Node) {
	if _, ok := g.nodeIndex[n]; ok {
		return
	}
	g.nodeIndex[n] = struct{}{}
	g.nodes = append(g.nodes, n)
	g.adjacency[n] = nil
}

// AddEdge adds a directed edge from -> to carrying attrs, registering
// either endpoint if it is new. Multiple edges between the same ordered
// pair are kept as parallel edges, each with its own ID.
func (g *Graph[Node]) AddEdge(from, to Node, attrs Attrs) Edge[Node] {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)

	e := Edge[Node]{ID: g.nextEdgeID, From: from, To: to, Attrs: attrs}
	g.nextEdgeID++
	g.adjacency[from] = append(g.adjacency[from], e)
	return e
}

// Nodes returns every node in insertion order.
func (g *Graph[Node]) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns every edge outgoing from "from", in the order they were
// added. Implements negcycle.Graph.
func (g *Graph[Node]) Edges(from Node) []negcycle.EdgeTo[Node, Edge[Node]] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[from]
	out := make([]negcycle.EdgeTo[Node, Edge[Node]], len(adj))
	for i, e := range adj {
		out[i] = negcycle.EdgeTo[Node, Edge[Node]]{To: e.To, Edge: e}
	}
	return out
}

// NumNodes returns the number of distinct nodes.
func (g *Graph[Node]) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NumEdges returns the total number of directed edges (parallel edges
// counted individually).
func (g *Graph[Node]) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, adj := range g.adjacency {
		count += len(adj)
	}
	return count
}

// SetDefault fills in attribute on every edge that doesn't already carry
// it, setting it to value. This is a loader-side convenience helper; it
// mutates the graph and is not part of the algorithmic core.
func SetDefault[Node comparable](g *Graph[Node], attribute string, value float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for from, adj := range g.adjacency {
		for i, e := range adj {
			if _, ok := e.Attrs[attribute]; ok {
				continue
			}
			if e.Attrs == nil {
				e.Attrs = Attrs{}
			}
			e.Attrs[attribute] = value
			g.adjacency[from][i] = e
		}
	}
}

// InitialDist builds a distance map seeded to zero for every node
// currently in the graph, the starting point Howard's method uses. A
// generalized negative-cycle search (unlike a single-source shortest-path
// query) does not privilege one source, so every node starts at zero
// rather than at positive infinity.
func InitialDist[Node comparable](g *Graph[Node]) map[Node]float64 {
	nodes := g.Nodes()
	dist := make(map[Node]float64, len(nodes))
	for _, n := range nodes {
		dist[n] = 0
	}
	return dist
}
