package qap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/qap"
)

func TestDetermineDistance_TwoLevelHierarchy(t *testing.T) {
	hierarchy := []uint64{2, 2}
	distance := []uint64{10, 1}
	k := uint64(4)
	uLoc := make([]uint64, 2)
	vLoc := make([]uint64, 2)

	// Blocks 0 and 1 share the same top-level group (differ only at
	// the bottom split) -> distance[0].
	require.EqualValues(t, 10, qap.DetermineDistance(0, 1, k, hierarchy, distance, uLoc, vLoc))
	// Blocks 0 and 2 differ at the top level -> distance[1].
	require.EqualValues(t, 1, qap.DetermineDistance(0, 2, k, hierarchy, distance, uLoc, vLoc))
	require.EqualValues(t, 0, qap.DetermineDistance(3, 3, k, hierarchy, distance, uLoc, vLoc))
}

func TestDetermine_PathGraphS1(t *testing.T) {
	// S1: path 0-1-2-3, unit weights; partition groups {0,1} and {2,3}.
	b := csrgraph.NewBuilder(4)
	b.AddEdge(0, 1, 1)
	b.AddEdge(1, 2, 1)
	b.AddEdge(2, 3, 1)
	g, err := b.Build()
	require.NoError(t, err)

	hierarchy := []uint64{2}
	distance := []uint64{1}
	partition := []uint64{0, 0, 1, 1}

	// Exactly one cut edge (1-2), counted from both directions (each
	// undirected edge contributes twice, per the original's behavior).
	require.EqualValues(t, 2, qap.Determine(g, hierarchy, distance, partition))
}

func TestDetermine_NoCutEdgesIsZero(t *testing.T) {
	b := csrgraph.NewBuilder(4)
	b.AddEdge(0, 1, 1)
	b.AddEdge(2, 3, 1)
	g, err := b.Build()
	require.NoError(t, err)

	partition := []uint64{0, 0, 1, 1}
	require.EqualValues(t, 0, qap.Determine(g, []uint64{2}, []uint64{1}, partition))
}
