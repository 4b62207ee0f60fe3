// Package negcycle finds negative cycles in a weighted directed graph via
// iterated Bellman-Ford relaxation plus policy-graph cycle detection
// (Howard's method).
//
// The package is polymorphic over three things: the node type (any
// comparable type), the edge type (an opaque handle of any shape), and the
// weight domain D (a signed numeric type forming the ring the weight
// function maps into). The caller supplies a read-only Graph view and a
// pure weight function; NegCycleFinder mutates a caller-owned distance map
// in place and lazily yields negative cycles.
//
// A single NegCycleFinder is not safe for concurrent use: Relax, Howard,
// and the iterators they return all share the finder's internal policy
// map. Build a fresh finder per goroutine, same as sharing one Graph across
// many finders is fine.
package negcycle
