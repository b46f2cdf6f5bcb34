package csrgraph

import "sort"

// Builder assembles a Graph from individually added vertices and
// undirected edges before compiling it into the immutable CSR form.
// It exists for callers that do not already hold a METIS file or raw
// CSR arrays — tests and library embedders build graphs incrementally,
// then call Build once.
//
// Builder is not safe for concurrent use; build on one goroutine, then
// share the resulting immutable Graph freely.
type Builder struct {
	vWeight []uint64
	adj     [][]weightedEdge
}

type weightedEdge struct {
	to     uint64
	weight uint64
}

// NewBuilder allocates a Builder for n vertices, all with unit weight
// until overridden by SetVertexWeight.
func NewBuilder(n uint64) *Builder {
	b := &Builder{
		vWeight: make([]uint64, n),
		adj:     make([][]weightedEdge, n),
	}
	for i := range b.vWeight {
		b.vWeight[i] = 1
	}

	return b
}

// SetVertexWeight overrides the weight of vertex v (must be >= 1; the
// caller is expected to pass a valid weight, checked later by Build).
func (b *Builder) SetVertexWeight(v, weight uint64) *Builder {
	b.vWeight[v] = weight

	return b
}

// AddEdge records an undirected edge u—v with the given weight. Both
// directed entries (u→v and v→u) are added with identical weight, as
// required by spec §3's symmetry invariant. Self-loops are rejected by
// Build, not here, to keep AddEdge allocation-free and simple.
func (b *Builder) AddEdge(u, v, weight uint64) *Builder {
	b.adj[u] = append(b.adj[u], weightedEdge{to: v, weight: weight})
	b.adj[v] = append(b.adj[v], weightedEdge{to: u, weight: weight})

	return b
}

// Build compiles the accumulated vertices and edges into an immutable
// Graph, sorting each vertex's neighbor list by id for deterministic
// iteration order. Returns the same structural errors New would.
func (b *Builder) Build() (*Graph, error) {
	n := uint64(len(b.vWeight))
	row := make([]uint64, n+1)
	for i := uint64(0); i < n; i++ {
		row[i+1] = row[i] + uint64(len(b.adj[i]))
	}
	m := row[n]
	nbr := make([]uint64, 0, m)
	ew := make([]uint64, 0, m)
	for i := uint64(0); i < n; i++ {
		edges := append([]weightedEdge(nil), b.adj[i]...)
		sort.Slice(edges, func(a, c int) bool { return edges[a].to < edges[c].to })
		for _, e := range edges {
			nbr = append(nbr, e.to)
			ew = append(ew, e.weight)
		}
	}

	return New(n, append([]uint64(nil), b.vWeight...), row, nbr, ew)
}
