// Package scheduler implements the four parallel recursive-bisection
// strategies of spec.md §4.6 — NAIVE, LAYER, QUEUE, NB_LAYER — that
// dispatch Items (package item) to the partitioner adapter (package
// partition) and the subgraph extractor (package subgraph), folding
// completed leaf partitions into a shared global result array (§4.5).
//
// What:
//
//   - Naive: single-threaded LIFO stack driver; every task runs with
//     the full thread budget N.
//   - Layer: barrier-per-hierarchy-level fan-out via errgroup, with a
//     fixed per-worker thread share computed once from the worker's
//     index and a shared atomic slot counter claiming successive
//     layer items.
//   - Queue: a container/heap max-priority-queue ordered by pending
//     subgraph size, a semaphore.Weighted(N) gating the thread pool,
//     and a busy-wait driver that dispatches whenever both threads and
//     work are available.
//   - NBLayer: a non-blocking, self-spawning variant of Layer rooted
//     in a single top-level errgroup.Group; a finished subtree
//     recurses straight into its children instead of waiting at a
//     level barrier, draining a shared pool of threads released by
//     siblings that finished early.
//
// Why: spec §4.6 requires these four to be interchangeable at the
// Run(ctx, root, cfg, adapter, sink) entry point, to agree bit-for-bit
// with NAIVE whenever N=1 (spec invariant 6), and to never let any
// task proceed without first having been granted its thread share —
// the concurrency-safety burden this package owns so that partition
// and subgraph stay free of scheduling concerns entirely.
//
// Run dispatches on cfg.Strategy, short-circuiting to Naive whenever
// cfg.Threads==1 regardless of the requested strategy.
package scheduler
