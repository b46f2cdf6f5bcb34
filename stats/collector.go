package stats

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// PartitionEvent records one call into the partitioner adapter (spec
// §4.1: "statistics of wall time, size, k, depth, algorithm, imbalance
// are logged").
type PartitionEvent struct {
	Size      uint64        `json:"size"`
	K         uint64        `json:"k"`
	Depth     int           `json:"depth"`
	Algorithm string        `json:"algorithm"`
	Imbalance float64       `json:"imbalance"`
	WallTime  time.Duration `json:"wall_time_ns"`
}

// SubgraphEvent records one subgraph-extraction call (spec §4.2).
type SubgraphEvent struct {
	ParentSize uint64        `json:"parent_size"`
	K          uint64        `json:"k"`
	WallTime   time.Duration `json:"wall_time_ns"`
}

// Sink is the injectable statistics interface the scheduler, the
// partitioner adapter, and the subgraph extractor depend on (spec §9:
// "Statistics collection is best left as an injectable sink interface
// so it can be stubbed in tests; the core must not depend on its
// presence for correctness"). A nil Sink is never passed by the core —
// callers that want no statistics pass Noop{}.
type Sink interface {
	RecordPartition(PartitionEvent)
	RecordSubgraph(SubgraphEvent)
}

// Noop is a Sink that discards every event, for callers uninterested
// in statistics.
type Noop struct{}

// RecordPartition discards e.
func (Noop) RecordPartition(PartitionEvent) {}

// RecordSubgraph discards e.
func (Noop) RecordSubgraph(SubgraphEvent) {}

// Collector is a mutex-guarded Sink that accumulates every event it
// receives, for later JSON emission (original:
// src/profiling/stat_collector.h's parallel-array event log,
// restructured here as parallel slices of structs instead of parallel
// arrays of scalars — Go's encoding/json marshals a []T of structs
// directly into the nested-array shape spec §6 calls for).
type Collector struct {
	mu         sync.Mutex
	partitions []PartitionEvent
	subgraphs  []SubgraphEvent
}

// NewCollector allocates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordPartition appends e under the collector's mutex.
func (c *Collector) RecordPartition(e PartitionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partitions = append(c.partitions, e)
}

// RecordSubgraph appends e under the collector's mutex.
func (c *Collector) RecordSubgraph(e SubgraphEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subgraphs = append(c.subgraphs, e)
}

// Snapshot is the JSON-serializable shape of a Collector's accumulated
// events (spec §6: "Statistics are emitted as a single JSON object
// with nested arrays").
type Snapshot struct {
	Partitions []PartitionEvent `json:"partitions"`
	Subgraphs  []SubgraphEvent  `json:"subgraphs"`
}

// Snapshot returns a copy of the currently accumulated events, safe to
// read after all joinable work finishes (spec §5).
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Partitions: append([]PartitionEvent(nil), c.partitions...),
		Subgraphs:  append([]SubgraphEvent(nil), c.subgraphs...),
	}
}

// WriteJSON serializes the current Snapshot to w as a single JSON
// object.
func (c *Collector) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(c.Snapshot())
}
