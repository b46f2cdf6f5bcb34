package scheduler

import (
	"context"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/imbalance"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/stats"
	"github.com/katalvlaran/sharedmap/subgraph"
)

// processItem runs one Item through a single level of recursive
// bisection (spec §4.3-§4.5): it computes the adaptive local imbalance,
// invokes the partitioner adapter, and either folds the result directly
// into pGlobal (at the bottom level, depth 0) or extracts the k child
// subgraphs and returns them for the caller's strategy-specific
// recursion. A nil, nil return (no error, no children) means it either
// folded or hit an empty block (spec §9 open question ii) — in both
// cases this task's line of recursion is finished.
//
// Writes into pGlobal from distinct Items never collide: every leaf
// Item's translation table maps a disjoint subset of root vertex ids
// (spec §4.5), so concurrent callers across strategies need no lock
// around this step.
func processItem(
	ctx context.Context,
	it *item.Item,
	cfg *algoconfig.Config,
	adapter *partition.Adapter,
	sink stats.Sink,
	nThreads int,
	pGlobal []uint64,
	rootWeight uint64,
) ([]*item.Item, error) {
	if it.Graph == nil || it.Graph.N() == 0 {
		return nil, nil
	}

	depth := it.Depth(cfg.Ell())
	kLevel := cfg.Hierarchy[depth]
	kRem := cfg.KRemAtDepth(depth)
	r := depth + 1

	eps, err := imbalance.Adaptive(cfg.Imbalance, kRem, rootWeight, cfg.K, it.Graph.TotalWeight(), r)
	if err != nil {
		return nil, err
	}

	p, err := adapter.Partition(ctx, it.Graph, kLevel, eps, depth, nThreads, cfg.SerialAlgorithms, cfg.ParallelAlgorithms, cfg.Seed)
	if err != nil {
		return nil, err
	}

	if depth == 0 {
		base := cfg.Offset(it.Identifier)
		for i := uint64(0); i < it.Graph.N(); i++ {
			rootID := it.Table.ToParent(i)
			pGlobal[rootID] = base + p[i]
		}

		return nil, nil
	}

	children, err := subgraph.Extract(ctx, it, p, kLevel, nThreads, sink)
	if err != nil {
		return nil, err
	}

	return children, nil
}

// share applies the floor/remainder thread-distribution formula common
// to LAYER (spec §4.6) and NB_LAYER: of a budget of total units spread
// across count recipients, recipient idx gets floor(total/count), plus
// one more if idx falls within the remainder, clamped to at least 1.
func share(total, count, idx int) int {
	s := total/count + boolInt(idx < total%count)
	if s < 1 {
		s = 1
	}

	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return a
	}

	return (a + b - 1) / b
}
