// Package sharedmap is the programmatic entry point for the parallel
// recursive-bisection hierarchical mapping solver (spec.md, §1, §6):
// Solve wires together csrgraph, transtable, item, algoconfig,
// imbalance, partition, subgraph, scheduler, qap, and stats into the
// single call original_source/include/libsharedmap.h exposes as
// shared_map_hierarchical_multisection, and Validate is the
// side-effect-free input predicate it exposes as
// shared_map_hierarchical_multisection_assert_input.
//
// What:
//
//   - Input: the flat-array request shape (N, VWeights, AdjPtrs,
//     AdjWeights, Adj, Hierarchy, Distance, Imbalance, NThreads, Seed,
//     Strategy, ParallelAlg, SerialAlg, Verbose), mirroring the C
//     entry point's signature before it is lifted into richer types.
//   - Validate(in) (warnings []error, err error): collects every
//     structural violation via multierr instead of stopping at the
//     first (spec §6), and separately surfaces non-fatal diagnostics
//     (distance[i]==0, imbalance==0 — spec §7's Warning kind) that do
//     not block solving.
//   - Solve(ctx, in, kernels, sink) (Result, error): builds the root
//     Graph and identity Table, assembles one algoconfig.Config with a
//     single algorithm id broadcast across every hierarchy level
//     (matching the scalar C signature), runs the configured
//     scheduler strategy, and evaluates the final communication cost
//     via qap.Determine.
//
// Validate does not require a prior Solve call and Solve does not call
// Validate itself — spec §6 treats them as two independently callable
// operations, not a single guarded pipeline.
package sharedmap
