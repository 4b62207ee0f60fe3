package negcycle

// handleIter is a pull-based iterator implementing the colour-by-seed
// cycle-detection scan. It is a user-owned state machine rather than a
// goroutine: each call to Next resumes exactly where the previous one
// left off, so a caller can stop consuming at any time with no cleanup
// required.
type handleIter[Node comparable, Edge any] struct {
	nodes   []Node
	idx     int
	visited map[Node]Node
	policy  map[Node]policyLink[Node, Edge]

	walking bool
	seed    Node
	cur     Node
}

// Next advances the scan and returns the next node lying on a newly
// discovered policy cycle, or false once the scan is exhausted.
func (it *handleIter[Node, Edge]) Next() (Node, bool) {
	for {
		if it.walking {
			link, ok := it.policy[it.cur]
			if !ok {
				it.walking = false
				continue
			}
			it.cur = link.from
			if prevSeed, seen := it.visited[it.cur]; seen {
				it.walking = false
				if prevSeed == it.seed {
					return it.cur, true
				}
				continue
			}
			it.visited[it.cur] = it.seed
			continue
		}

		if it.idx >= len(it.nodes) {
			var zero Node
			return zero, false
		}
		v := it.nodes[it.idx]
		it.idx++
		if _, ok := it.visited[v]; ok {
			continue
		}
		it.seed = v
		it.cur = v
		it.visited[v] = v
		it.walking = true
	}
}

// CycleIter is the lazy sequence of negative cycles returned by
// NegCycleFinder.Howard. A Next call with no pending cycle runs relax
// passes, each followed by one cycle scan, until a pass finds negative
// cycles, a pass produces no change, or the iteration budget is spent.
// The stream ends for good as soon as a relax pass produces no change,
// the budget is spent, or a pass's whole batch of negative cycles has
// been drained. At that point the caller re-parameterises the
// weight function and starts a fresh Howard stream.
type CycleIter[Node comparable, Edge any, D Number] struct {
	finder *NegCycleFinder[Node, Edge, D]
	dist   map[Node]D
	w      WeightFunc[Edge, D]

	pending        []Cycle[Node, Edge]
	pendingIdx     int
	terminated     bool
	budgetExceeded bool
	passes         int
}

// Howard returns the lazy sequence of negative cycles produced by
// repeatedly relaxing the graph under w and scanning the resulting policy
// graph for negative cycles (Howard's policy-iteration method). The
// finder's policy map is cleared at the start of the stream.
func (f *NegCycleFinder[Node, Edge, D]) Howard(dist map[Node]D, w WeightFunc[Edge, D]) *CycleIter[Node, Edge, D] {
	f.policy = make(map[Node]policyLink[Node, Edge])
	return &CycleIter[Node, Edge, D]{finder: f, dist: dist, w: w}
}

// Next returns the next negative cycle in the stream, or false once the
// stream has ended.
func (it *CycleIter[Node, Edge, D]) Next() (Cycle[Node, Edge], bool) {
	if it.pendingIdx < len(it.pending) {
		c := it.pending[it.pendingIdx]
		it.pendingIdx++
		return c, true
	}
	if it.terminated {
		return Cycle[Node, Edge]{}, false
	}

	for {
		if it.finder.maxIterations > 0 && it.passes >= it.finder.maxIterations {
			it.terminated = true
			it.budgetExceeded = true
			return Cycle[Node, Edge]{}, false
		}
		it.passes++

		if !it.finder.Relax(it.dist, it.w) {
			it.terminated = true
			return Cycle[Node, Edge]{}, false
		}

		var batch []Cycle[Node, Edge]
		handles := it.finder.findCycle()
		for {
			h, ok := handles.Next()
			if !ok {
				break
			}
			if it.finder.IsNegative(h, it.dist, it.w) {
				batch = append(batch, it.finder.buildCycle(h))
			}
		}

		if len(batch) > 0 {
			it.pending = batch
			it.terminated = true
			it.pendingIdx = 1
			return batch[0], true
		}
		// No cycle this pass despite dist/policy having changed: keep
		// relaxing.
	}
}

// BudgetExceeded reports whether the stream ended because MaxIterations
// was exhausted rather than because relaxation genuinely stabilised. Only
// meaningful after Next has returned false.
func (it *CycleIter[Node, Edge, D]) BudgetExceeded() bool {
	return it.budgetExceeded
}

// Passes reports how many relax passes this stream has performed so far.
func (it *CycleIter[Node, Edge, D]) Passes() int {
	return it.passes
}
