package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/stats"
)

// Layer implements the LAYER strategy (spec §4.6, original:
// partitioning/layer.h/.cpp): a barrier-per-level driver. At each
// level, T = min(|layer|, N) workers are fanned out; each worker owns a
// fixed per-level thread share computed once from its worker index
// (the floor/remainder formula), and claims successive slots from the
// current layer via a shared atomic counter until the layer is
// exhausted. The driver waits for every worker in the layer to finish
// (the barrier) before advancing to the next layer.
func Layer(ctx context.Context, root *item.Item, cfg *algoconfig.Config, adapter *partition.Adapter, sink stats.Sink) ([]uint64, error) {
	pGlobal := make([]uint64, root.Graph.N())
	rootWeight := root.Graph.TotalWeight()

	layer := []*item.Item{root}
	for len(layer) > 0 {
		l := len(layer)
		nWorkers := cfg.Threads
		if nWorkers > l {
			nWorkers = l
		}

		var idx atomic.Int64
		var mu sync.Mutex
		var next []*item.Item

		g, gctx := errgroup.WithContext(ctx)
		for t := 0; t < nWorkers; t++ {
			nAssigned := share(cfg.Threads, l, t)
			g.Go(func() error {
				for {
					slot := idx.Add(1) - 1
					if int(slot) >= l {
						return nil
					}

					it := layer[slot]
					children, err := processItem(gctx, it, cfg, adapter, sink, nAssigned, pGlobal, rootWeight)
					it.Release()
					if err != nil {
						return err
					}

					if len(children) > 0 {
						mu.Lock()
						next = append(next, children...)
						mu.Unlock()
					}
				}
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		layer = next
	}

	return pGlobal, nil
}
