package scheduler

import (
	"context"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/stats"
)

// Naive implements the NAIVE strategy (spec §4.6, original:
// partitioning/naive.h): a single-threaded LIFO stack driver that pops
// one Item at a time and processes it with the full thread budget.
// There is no parallelism to coordinate, so this is also the serial
// fallback every other strategy uses when n_threads==1.
func Naive(ctx context.Context, root *item.Item, cfg *algoconfig.Config, adapter *partition.Adapter, sink stats.Sink) ([]uint64, error) {
	pGlobal := make([]uint64, root.Graph.N())
	rootWeight := root.Graph.TotalWeight()

	stack := []*item.Item{root}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := processItem(ctx, it, cfg, adapter, sink, cfg.Threads, pGlobal, rootWeight)
		it.Release()
		if err != nil {
			return nil, err
		}

		stack = append(stack, children...)
	}

	return pGlobal, nil
}
