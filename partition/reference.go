package partition

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
)

// ReferenceKernel is a deterministic, seed-driven, weight-balanced
// greedy partitioner standing in for the six black-box kaffpa_*/
// mtkahypar_* kernels named in spec §4.1 and §6, none of which are
// part of this repository's scope (spec §1 "Out of scope (external
// collaborators): the actual partitioning kernels"). It satisfies the
// Kernel contract — (G,k,eps,seed[,nThreads]) -> P, approximately
// balanced — without claiming to match any real kernel's cut quality.
//
// Registering the same ReferenceKernel under all six Algorithm ids
// (see NewReferenceRegistry) lets the scheduler and Adapter dispatch
// logic — which only cares which algorithm *slot* a level selects, not
// kernel internals — be exercised and tested end to end.
type ReferenceKernel struct{}

// NewReferenceRegistry returns a Registry mapping every recognized
// algorithm id to a ReferenceKernel.
func NewReferenceRegistry() Registry {
	return Registry{
		algoconfig.KaffpaFast:              ReferenceKernel{},
		algoconfig.KaffpaEco:               ReferenceKernel{},
		algoconfig.KaffpaStrong:            ReferenceKernel{},
		algoconfig.MtkahyparDefault:        ReferenceKernel{},
		algoconfig.MtkahyparQuality:        ReferenceKernel{},
		algoconfig.MtkahyparHighestQuality: ReferenceKernel{},
	}
}

// Partition assigns each vertex, in a seed-derived pseudo-random
// order, to whichever of the k blocks currently holds the least total
// weight among those still under the eps-derived capacity — a
// standard greedy weight-balancing heuristic. capacity is
// ceil((totalWeight/k)*(1+eps)) per block (spec §4.1's "approximately
// balanced under eps"); once every block has reached capacity the
// constraint is relaxed so every vertex still lands somewhere. nThreads
// is accepted for contract conformance but does not change the
// result: ReferenceKernel has no internal concurrency to vary by
// thread count, which trivially satisfies spec invariant 6 (NAIVE and
// LAYER must agree at N=1; this kernel agrees at any N).
func (ReferenceKernel) Partition(_ context.Context, g *csrgraph.Graph, k uint64, eps float64, seed uint64, _ int) ([]uint64, error) {
	n := g.N()
	p := make([]uint64, n)
	blockWeight := make([]uint64, k)

	capacity := uint64(math.Ceil(float64(g.TotalWeight()) / float64(k) * (1 + eps)))

	order := make([]uint64, n)
	for i := range order {
		order[i] = uint64(i)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, v := range order {
		w := g.VertexWeight(v)
		best, found := uint64(0), false
		for b := uint64(0); b < k; b++ {
			if blockWeight[b]+w > capacity {
				continue
			}
			if !found || blockWeight[b] < blockWeight[best] {
				best, found = b, true
			}
		}
		if !found {
			// Every block is at or past capacity; fall back to the
			// globally lightest one so the vertex is still assigned.
			for b := uint64(1); b < k; b++ {
				if blockWeight[b] < blockWeight[best] {
					best = b
				}
			}
		}
		p[v] = best
		blockWeight[best] += w
	}

	return p, nil
}
