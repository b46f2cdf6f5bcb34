// Package stats implements the thread-safe statistics collector
// described in spec.md §4.6/§5/§9: a pure, injectable sink that logs
// partition and subgraph-extraction events and can serialize them as
// a single JSON object with nested arrays (spec §6 "Output").
//
// The core scheduler depends only on the Sink interface, never on
// Collector directly, so tests can stub it (spec §9 design note).
package stats
