package negcycle

// NegCycleFinder binds a graph view and drives Bellman-Ford relaxation
// plus policy-graph cycle detection against it. Create one per solve with
// New; the policy map it owns is cleared at the start of each Howard
// stream and is never exposed to callers.
type NegCycleFinder[Node comparable, Edge any, D Number] struct {
	graph         Graph[Node, Edge]
	policy        map[Node]policyLink[Node, Edge]
	maxIterations int // 0 means unbounded; safety net for floating-point D.
}

// Option configures a NegCycleFinder at construction time.
type Option[Node comparable, Edge any, D Number] func(*NegCycleFinder[Node, Edge, D])

// WithMaxIterations bounds the number of relax passes a single Howard
// stream will run before giving up and reporting no further cycles. This
// is a caller-configurable safety net against ulp-level cycling under
// floating-point weights, where relaxation could otherwise loop forever.
// A value of 0 (the default) means unbounded.
func WithMaxIterations[Node comparable, Edge any, D Number](n int) Option[Node, Edge, D] {
	return func(f *NegCycleFinder[Node, Edge, D]) {
		f.maxIterations = n
	}
}

// New binds a NegCycleFinder to the given graph view. The graph is never
// mutated by the finder. Panics with ErrNilGraph if g is nil.
func New[Node comparable, Edge any, D Number](g Graph[Node, Edge], opts ...Option[Node, Edge, D]) *NegCycleFinder[Node, Edge, D] {
	if g == nil {
		panic(ErrNilGraph)
	}
	f := &NegCycleFinder[Node, Edge, D]{
		graph:  g,
		policy: make(map[Node]policyLink[Node, Edge]),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Relax performs exactly one Bellman-Ford pass over the graph in its
// iteration order: for every edge (u,v,e), if dist[u]+w(e) < dist[v], it
// assigns dist[v] := dist[u]+w(e) and records (u,e) as v's policy link.
// It returns whether anything changed.
//
// dist must already contain an entry for every node the graph exposes via
// Nodes(); relaxation is the caller's Bellman-Ford seed, not a
// single-source shortest-path search, so there is no implicit "infinity"
// for missing entries. Supplying an incomplete dist is a contract
// violation and panics with ErrMissingDist.
func (f *NegCycleFinder[Node, Edge, D]) Relax(dist map[Node]D, w WeightFunc[Edge, D]) bool {
	changed := false
	for _, u := range f.graph.Nodes() {
		du, ok := dist[u]
		if !ok {
			panic(ErrMissingDist)
		}
		for _, nb := range f.graph.Edges(u) {
			dv, ok := dist[nb.To]
			if !ok {
				panic(ErrMissingDist)
			}
			cand := du + w(nb.Edge)
			if cand < dv {
				dist[nb.To] = cand
				f.policy[nb.To] = policyLink[Node, Edge]{from: u, edge: nb.Edge}
				changed = true
			}
		}
	}
	return changed
}

// CycleEdges walks the policy links from h back to h, returning the edges
// traversed in reverse traversal order. Calling CycleEdges on a node with
// no policy entry is a contract violation and panics: h must come from
// findCycle, which only ever reports nodes already on a policy cycle.
func (f *NegCycleFinder[Node, Edge, D]) CycleEdges(h Node) []Edge {
	return f.buildCycle(h).edges
}

// buildCycle walks the policy links from h back to h exactly as
// CycleEdges does, additionally recording the node each edge departs
// from, and returns both as a Cycle.
func (f *NegCycleFinder[Node, Edge, D]) buildCycle(h Node) Cycle[Node, Edge] {
	var edges []Edge
	var nodes []Node
	v := h
	for {
		link, ok := f.policy[v]
		if !ok {
			panic("negcycle: CycleEdges: node has no policy entry")
		}
		edges = append(edges, link.edge)
		nodes = append(nodes, link.from)
		v = link.from
		if v == h {
			break
		}
	}
	return Cycle[Node, Edge]{edges: edges, nodes: nodes}
}

// IsNegative confirms that the cycle reachable from h by walking policy
// links sums to a value strictly less than zero under w. The cycle is
// re-derived via CycleEdges, so h must lie on a policy cycle; dist is not
// read, since the sign depends only on the edge weights.
func (f *NegCycleFinder[Node, Edge, D]) IsNegative(h Node, dist map[Node]D, w WeightFunc[Edge, D]) bool {
	edges := f.CycleEdges(h)
	var zero, sum D
	for _, e := range edges {
		sum += w(e)
	}
	return sum < zero
}

// findCycle scans the current policy graph once, in graph iteration
// order, and returns an iterator yielding one node from each policy
// cycle, using a colour-by-seed scan: each node visited is marked with
// the seed node that started its walk, and a walk that revisits a node
// marked with its own seed has found a cycle. Each policy cycle is
// reported exactly once, via the node the scan revisited to discover it.
func (f *NegCycleFinder[Node, Edge, D]) findCycle() *handleIter[Node, Edge] {
	return &handleIter[Node, Edge]{
		nodes:   f.graph.Nodes(),
		visited: make(map[Node]Node, len(f.graph.Nodes())),
		policy:  f.policy,
	}
}
