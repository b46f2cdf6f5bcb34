// Package subgraph implements the extractor described in spec.md
// §4.2: given a parent (graph, translation table), a partition over
// its vertices, and the parent's identifier, it produces one child
// Item per block, each holding the induced subgraph on that block
// (cut edges dropped) and a translation table back to the parent.
//
// Two implementations share identical semantics: ExtractSerial for
// n_threads==1, ExtractParallel (backed by golang.org/x/sync/errgroup)
// for n_threads>1.
package subgraph
