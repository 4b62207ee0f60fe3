// Package ratio implements the parametric API contract (L2) and the
// parametric ratio solver (L3) that drives package negcycle to compute
// the minimum or maximum cost-to-time ratio cycle of a graph via Howard's
// policy iteration.
//
// Package negcycle never logs or reports metrics; Solver follows the same
// rule, staying synchronous and side-effect free so it composes cleanly
// with whatever ambient logging/metrics layer a caller wires around it
// (see internal/metrics and cmd/ratiocycle in this repository for one
// such layer).
package ratio
