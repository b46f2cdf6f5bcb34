// Package partition implements the uniform façade over the six
// external graph/hypergraph partitioning kernels (spec.md §4.1, §6):
// three serial "kaffpa_*" variants and three parallel "mtkahypar_*"
// variants. The actual kernels are out of this repository's scope
// (spec §1); Kernel is the interface any such kernel implements, and
// ReferenceKernel is a deterministic stand-in used by the scheduler
// and by tests.
//
// What:
//
//   - Kernel: (ctx, G, k, eps, seed, nThreads) -> (P, error), P(v) in
//     [0,k) and approximately balanced under eps.
//   - Registry: maps an algoconfig.Algorithm id to the Kernel that
//     implements it.
//   - Adapter: selects serial vs. parallel algorithm ids by thread
//     count, applies the k=1 fast path without invoking any kernel,
//     dispatches to the registered Kernel, validates the result shape,
//     and records a stats.PartitionEvent.
//   - ReferenceKernel: a seed-driven greedy weight-balancer honoring
//     the eps capacity constraint; it ignores edge topology entirely,
//     so it stands in for kernel *dispatch*, not kernel *quality*.
//
// Errors: ErrUnknownAlgorithm (no kernel registered for the selected
// id) and ErrPartitionerFailure (the kernel itself errored, or
// returned a result of the wrong length or an out-of-range label).
package partition
