// Package graphx is a small generic directed multigraph container: the
// external collaborator that owns node and edge storage, separate from
// the negcycle/ratio algorithmic core, but still needed to actually build
// and run a problem against it.
//
// Nodes are an arbitrary comparable type and edges carry a named numeric
// attribute map (cost, time, or whatever else a caller's problem needs),
// rather than a single fixed-shape weight.
package graphx
