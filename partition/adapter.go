package partition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/stats"
)

// ErrUnknownAlgorithm is returned when the selected algorithm id has
// no registered kernel (spec §4.1, §7).
var ErrUnknownAlgorithm = errors.New("partition: unknown algorithm")

// ErrPartitionerFailure is returned when a kernel reports an error or
// produces an out-of-range label (spec §4.1, §7).
var ErrPartitionerFailure = errors.New("partition: partitioner failure")

var tracer = otel.Tracer("sharedmap/partition")

// Kernel is the contract an external graph/hypergraph partitioner
// fulfils (spec §6 "Partitioner contract (imported)"):
// (G, k, eps, seed [, nThreads]) -> P, with P(v) in [0,k) and the
// result approximately balanced under eps. The actual kaffpa_*/
// mtkahypar_* kernels are native libraries outside this repository's
// scope (spec §1); Kernel is the seam a real build wires them through.
type Kernel interface {
	Partition(ctx context.Context, g *csrgraph.Graph, k uint64, eps float64, seed uint64, nThreads int) ([]uint64, error)
}

// Registry maps each recognized Algorithm to the Kernel implementing it.
type Registry map[algoconfig.Algorithm]Kernel

// Adapter is the uniform façade over the six external algorithms (spec
// §4.1): it selects serial vs. parallel algorithm by thread count,
// applies the k=1 fast path, dispatches to the matching Kernel, and
// validates and logs the result.
type Adapter struct {
	Kernels Registry
	Stats   stats.Sink
}

// NewAdapter builds an Adapter with the given kernel registry. A nil
// Stats sink is replaced with stats.Noop{} so callers never need a nil
// check (spec §9: the core must not depend on statistics for
// correctness).
func NewAdapter(kernels Registry, sink stats.Sink) *Adapter {
	if sink == nil {
		sink = stats.Noop{}
	}

	return &Adapter{Kernels: kernels, Stats: sink}
}

// Partition implements the §4.1 contract:
// partition(G, k, eps, depth, n_threads, serial_ids[], parallel_ids[], seed) -> P.
//
// If nThreads==1, serialIDs[depth] selects the algorithm; otherwise
// parallelIDs[depth] does. When k==1 the constant-0 assignment is
// returned without invoking any kernel.
func (a *Adapter) Partition(
	ctx context.Context,
	g *csrgraph.Graph,
	k uint64,
	eps float64,
	depth int,
	nThreads int,
	serialIDs, parallelIDs []algoconfig.Algorithm,
	seed uint64,
) ([]uint64, error) {
	if k == 1 {
		return make([]uint64, g.N()), nil
	}

	ctx, span := tracer.Start(ctx, "Adapter.Partition")
	defer span.End()

	var algo algoconfig.Algorithm
	if nThreads == 1 {
		algo = serialIDs[depth]
	} else {
		algo = parallelIDs[depth]
	}

	kernel, ok := a.Kernels[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}

	start := time.Now()
	p, err := kernel.Partition(ctx, g, k, eps, seed, nThreads)
	elapsed := time.Since(start)

	a.Stats.RecordPartition(stats.PartitionEvent{
		Size:      g.N(),
		K:         k,
		Depth:     depth,
		Algorithm: algo.String(),
		Imbalance: eps,
		WallTime:  elapsed,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPartitionerFailure, err)
	}
	if uint64(len(p)) != g.N() {
		return nil, fmt.Errorf("%w: result length %d want %d", ErrPartitionerFailure, len(p), g.N())
	}
	for _, b := range p {
		if b >= k {
			return nil, fmt.Errorf("%w: label %d out of range [0,%d)", ErrPartitionerFailure, b, k)
		}
	}

	return p, nil
}
