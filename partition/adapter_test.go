package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/partition"
)

func chainGraph(t *testing.T, n uint64) *csrgraph.Graph {
	t.Helper()
	b := csrgraph.NewBuilder(n)
	for i := uint64(0); i+1 < n; i++ {
		b.AddEdge(i, i+1, 1)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestAdapter_KEqualsOneFastPath(t *testing.T) {
	g := chainGraph(t, 5)
	a := partition.NewAdapter(nil, nil) // no kernels registered at all
	p, err := a.Partition(context.Background(), g, 1, 0, 0, 1, nil, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 0, 0, 0, 0}, p)
}

func TestAdapter_SelectsSerialVsParallelByThreadCount(t *testing.T) {
	g := chainGraph(t, 8)
	a := partition.NewAdapter(partition.NewReferenceRegistry(), nil)
	serialIDs := []algoconfig.Algorithm{algoconfig.KaffpaEco}
	parallelIDs := []algoconfig.Algorithm{algoconfig.MtkahyparQuality}

	p, err := a.Partition(context.Background(), g, 2, 0.1, 0, 1, serialIDs, parallelIDs, 7)
	require.NoError(t, err)
	require.Len(t, p, 8)
	for _, b := range p {
		require.Less(t, b, uint64(2))
	}

	p2, err := a.Partition(context.Background(), g, 2, 0.1, 0, 4, serialIDs, parallelIDs, 7)
	require.NoError(t, err)
	require.Len(t, p2, 8)
}

func TestAdapter_UnknownAlgorithm(t *testing.T) {
	g := chainGraph(t, 4)
	a := partition.NewAdapter(partition.Registry{}, nil)
	_, err := a.Partition(context.Background(), g, 2, 0, 0, 1, []algoconfig.Algorithm{algoconfig.KaffpaFast}, nil, 1)
	require.ErrorIs(t, err, partition.ErrUnknownAlgorithm)
}

func TestAdapter_DeterministicForFixedSeed(t *testing.T) {
	g := chainGraph(t, 12)
	a := partition.NewAdapter(partition.NewReferenceRegistry(), nil)
	ids := []algoconfig.Algorithm{algoconfig.KaffpaFast}

	p1, err := a.Partition(context.Background(), g, 3, 0.1, 0, 1, ids, ids, 42)
	require.NoError(t, err)
	p2, err := a.Partition(context.Background(), g, 3, 0.1, 0, 1, ids, ids, 42)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
