package csrgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for csrgraph construction and access.
var (
	// ErrEmptyGraph indicates a graph with zero vertices was requested.
	ErrEmptyGraph = errors.New("csrgraph: n must be > 0")

	// ErrBadRowPointers indicates the row-pointer sequence is not
	// non-decreasing, does not start at 0, or does not end at m.
	ErrBadRowPointers = errors.New("csrgraph: row pointers malformed")

	// ErrBadNeighbor indicates a neighbor id outside [0,n) or a self-loop.
	ErrBadNeighbor = errors.New("csrgraph: neighbor id out of range or self-loop")

	// ErrBadWeight indicates a vertex or edge weight below the required minimum of 1.
	ErrBadWeight = errors.New("csrgraph: weight must be >= 1")

	// ErrLengthMismatch indicates a weight/neighbor slice whose length
	// disagrees with n or the row-pointer-implied m.
	ErrLengthMismatch = errors.New("csrgraph: slice length mismatch")

	// ErrVertexOutOfRange indicates a vertex id outside [0,n).
	ErrVertexOutOfRange = errors.New("csrgraph: vertex id out of range")
)

// Graph is an immutable weighted undirected graph in CSR form (spec §3).
//
// Fields mirror the specification directly: n vertices, m directed-entry
// count (twice the undirected edge count), a vertex-weight sequence, a
// row-pointer sequence of length n+1 with row[0]=0 and row[n]=m, a
// neighbor sequence of length m, and an edge-weight sequence of length m.
// The total vertex weight is cached at construction.
//
// Complexity: all accessors are O(1) or O(degree(v)); Graph itself
// occupies O(n+m) and is read-only for its lifetime, so concurrent
// reads from multiple goroutines need no synchronization.
type Graph struct {
	n           uint64
	vWeight     []uint64
	row         []uint64
	nbr         []uint64
	eWeight     []uint64
	totalWeight uint64
}

// New constructs a Graph from raw CSR arrays, performing the structural
// checks cheap enough to run unconditionally (length agreement, row
// monotonicity, neighbor range, no self-loops, minimum weights). The
// full input-validation predicate (duplicate neighbors, undirected
// symmetry, enum ranges) lives in package sharedmap per spec §6 — New
// guards only against slices that would make every other operation on
// Graph panic or read out of bounds.
func New(n uint64, vWeight, row, nbr, eWeight []uint64) (*Graph, error) {
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if uint64(len(vWeight)) != n {
		return nil, fmt.Errorf("%w: vertex weights len=%d want %d", ErrLengthMismatch, len(vWeight), n)
	}
	if uint64(len(row)) != n+1 {
		return nil, fmt.Errorf("%w: row pointers len=%d want %d", ErrLengthMismatch, len(row), n+1)
	}
	if row[0] != 0 {
		return nil, fmt.Errorf("%w: row[0]=%d want 0", ErrBadRowPointers, row[0])
	}
	m := row[n]
	if uint64(len(nbr)) != m || uint64(len(eWeight)) != m {
		return nil, fmt.Errorf("%w: nbr/weight len mismatch with row[n]=%d", ErrLengthMismatch, m)
	}
	for i := uint64(0); i < n; i++ {
		if row[i+1] < row[i] {
			return nil, fmt.Errorf("%w: row[%d]=%d < row[%d]=%d", ErrBadRowPointers, i+1, row[i+1], i, row[i])
		}
	}

	var total uint64
	for i := uint64(0); i < n; i++ {
		if vWeight[i] < 1 {
			return nil, fmt.Errorf("%w: vertex %d weight %d", ErrBadWeight, i, vWeight[i])
		}
		total += vWeight[i]
		for j := row[i]; j < row[i+1]; j++ {
			if nbr[j] >= n || nbr[j] == i {
				return nil, fmt.Errorf("%w: vertex %d neighbor %d", ErrBadNeighbor, i, nbr[j])
			}
			if eWeight[j] < 1 {
				return nil, fmt.Errorf("%w: edge (%d,%d) weight %d", ErrBadWeight, i, nbr[j], eWeight[j])
			}
		}
	}

	g := &Graph{
		n:           n,
		vWeight:     vWeight,
		row:         row,
		nbr:         nbr,
		eWeight:     eWeight,
		totalWeight: total,
	}

	return g, nil
}

// Empty returns the degenerate zero-vertex Graph. Spec §9 open
// question (ii) leaves the behavior of an empty block (a partitioner
// leaving zero vertices in some label) unspecified beyond "treat such
// blocks as no further recursion"; Empty lets the subgraph extractor
// represent that block without forcing every other Graph constructor
// to special-case n==0.
func Empty() *Graph {
	return &Graph{
		n:       0,
		vWeight: []uint64{},
		row:     []uint64{0},
		nbr:     []uint64{},
		eWeight: []uint64{},
	}
}

// N returns the vertex count.
func (g *Graph) N() uint64 { return g.n }

// M returns the directed-entry count (twice the undirected edge count).
func (g *Graph) M() uint64 { return uint64(len(g.nbr)) }

// TotalWeight returns the cached sum of all vertex weights (spec §3's W).
func (g *Graph) TotalWeight() uint64 { return g.totalWeight }

// VertexWeight returns the weight of vertex v.
func (g *Graph) VertexWeight(v uint64) uint64 { return g.vWeight[v] }

// Degree returns the number of neighbor entries for vertex v.
func (g *Graph) Degree(v uint64) uint64 { return g.row[v+1] - g.row[v] }

// Neighbors returns the neighbor-id and edge-weight slices for vertex v,
// sharing the underlying arrays (read-only views, no allocation).
func (g *Graph) Neighbors(v uint64) (ids []uint64, weights []uint64) {
	lo, hi := g.row[v], g.row[v+1]

	return g.nbr[lo:hi], g.eWeight[lo:hi]
}

// RowPointers exposes the underlying row-pointer slice for callers (the
// subgraph extractor, the METIS writer) that need to walk all vertices
// without repeated bounds checks through Neighbors.
func (g *Graph) RowPointers() []uint64 { return g.row }

// RawNeighbors exposes the underlying neighbor slice.
func (g *Graph) RawNeighbors() []uint64 { return g.nbr }

// RawEdgeWeights exposes the underlying edge-weight slice.
func (g *Graph) RawEdgeWeights() []uint64 { return g.eWeight }

// RawVertexWeights exposes the underlying vertex-weight slice.
func (g *Graph) RawVertexWeights() []uint64 { return g.vWeight }
