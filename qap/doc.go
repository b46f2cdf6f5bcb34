// Package qap computes the quadratic-assignment communication cost
// Σ w(u,v)·D(P(u),P(v)) used as an end-to-end correctness check (spec
// §1, §4.5, §9): D(i,j) is the distance at the deepest hierarchy level
// where the block coordinates of i and j differ, found by walking the
// hierarchy from the top level down with range-halving.
package qap
