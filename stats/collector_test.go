package stats_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/stats"
)

func TestCollector_ConcurrentRecording(t *testing.T) {
	c := stats.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.RecordPartition(stats.PartitionEvent{Size: uint64(i), K: 2, WallTime: time.Microsecond})
			c.RecordSubgraph(stats.SubgraphEvent{ParentSize: uint64(i), K: 2})
		}(i)
	}
	wg.Wait()

	snap := c.Snapshot()
	require.Len(t, snap.Partitions, 50)
	require.Len(t, snap.Subgraphs, 50)
}

func TestCollector_WriteJSON(t *testing.T) {
	c := stats.NewCollector()
	c.RecordPartition(stats.PartitionEvent{Size: 4, K: 2, Depth: 0, Algorithm: "kaffpa_fast", Imbalance: 0.05})

	var buf strings.Builder
	require.NoError(t, c.WriteJSON(&buf))
	require.Contains(t, buf.String(), `"partitions"`)
	require.Contains(t, buf.String(), `"kaffpa_fast"`)
}

func TestNoop(t *testing.T) {
	var s stats.Sink = stats.Noop{}
	require.NotPanics(t, func() {
		s.RecordPartition(stats.PartitionEvent{})
		s.RecordSubgraph(stats.SubgraphEvent{})
	})
}
