package scheduler

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/stats"
)

// Run dispatches to the strategy named by cfg.Strategy (spec §4.6),
// returning the filled global partition P_global indexed by root
// vertex id. Per spec §4.6, a thread budget of 1 always runs the
// serial (NAIVE) code path regardless of the requested strategy, since
// every strategy degenerates to the same sequential traversal when
// there is only one thread to assign.
func Run(ctx context.Context, root *item.Item, cfg *algoconfig.Config, adapter *partition.Adapter, sink stats.Sink) ([]uint64, error) {
	if sink == nil {
		sink = stats.Noop{}
	}
	if cfg.Threads == 1 {
		return Naive(ctx, root, cfg, adapter, sink)
	}

	switch cfg.Strategy {
	case algoconfig.Naive:
		return Naive(ctx, root, cfg, adapter, sink)
	case algoconfig.Layer:
		return Layer(ctx, root, cfg, adapter, sink)
	case algoconfig.Queue:
		return Queue(ctx, root, cfg, adapter, sink)
	case algoconfig.NBLayer:
		return NBLayer(ctx, root, cfg, adapter, sink)
	default:
		return nil, fmt.Errorf("scheduler: unknown strategy %v", cfg.Strategy)
	}
}
