package sharedmap

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/qap"
	"github.com/katalvlaran/sharedmap/scheduler"
	"github.com/katalvlaran/sharedmap/stats"
	"github.com/katalvlaran/sharedmap/transtable"
)

var tracer = otel.Tracer("sharedmap")

// Result is Solve's return value: the filled global partition (spec
// §4.5's P_global, indexed by root vertex id) and the communication
// cost qap.Determine computes over it (spec §1, §9).
type Result struct {
	Partition []uint64
	CommCost  uint64
}

// Solve executes the full hierarchical multisection pipeline (spec §1,
// §4; original: lib/libsharedmap.cpp's
// shared_map_hierarchical_multisection): it builds the root csrgraph.Graph
// and identity transtable.Table, assembles an algoconfig.Config with
// the same algorithm id applied to every hierarchy level (matching the
// original library entry point's scalar parallel_alg/serial_alg — the
// CLI passes the first level's ids of its --config preset, which
// expands to the same id at every level), runs the configured scheduler strategy,
// and evaluates the resulting communication cost.
//
// Solve does not call Validate; callers that want the full input
// predicate call it themselves first (spec §6: validation is a
// separate, explicitly invoked check).
func Solve(ctx context.Context, in Input, kernels partition.Registry, sink stats.Sink) (Result, error) {
	if sink == nil {
		sink = stats.Noop{}
	}

	ctx, span := tracer.Start(ctx, "Solve")
	defer span.End()
	annotateInput(span, in)

	g, err := csrgraph.New(in.N, in.VWeights, in.AdjPtrs, in.Adj, in.AdjWeights)
	if err != nil {
		return Result{}, fmt.Errorf("%ssolve: %w", prefix, err)
	}

	ell := len(in.Hierarchy)
	serialAlgs := make([]algoconfig.Algorithm, ell)
	parallelAlgs := make([]algoconfig.Algorithm, ell)
	for i := 0; i < ell; i++ {
		serialAlgs[i] = in.SerialAlg
		parallelAlgs[i] = in.ParallelAlg
	}

	cfg, err := algoconfig.New(in.Hierarchy, in.Distance, serialAlgs, parallelAlgs, in.Imbalance, in.NThreads, in.Strategy, in.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("%ssolve: %w", prefix, err)
	}

	adapter := partition.NewAdapter(kernels, sink)
	root := item.NewRoot(g, transtable.Identity(in.N))

	p, err := scheduler.Run(ctx, root, cfg, adapter, sink)
	if err != nil {
		return Result{}, fmt.Errorf("%ssolve: %w", prefix, err)
	}

	cost := qap.Determine(g, in.Hierarchy, in.Distance, p)
	span.AddEvent(fmt.Sprintf("comm_cost=%d", cost))

	return Result{Partition: p, CommCost: cost}, nil
}

// annotateInput records the shape of the request on span, typed
// explicitly against trace.Span so the entry-point's tracing surface
// is pinned to the otel/trace API rather than only whatever otel.Tracer
// happens to return (spec §9's statistics/observability note — tracing
// here is purely diagnostic and never gates correctness).
func annotateInput(span trace.Span, in Input) {
	span.AddEvent(fmt.Sprintf("n=%d levels=%d threads=%d strategy=%s", in.N, len(in.Hierarchy), in.NThreads, in.Strategy))
}
