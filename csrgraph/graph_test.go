package csrgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/csrgraph"
)

// path4 returns the S1 scenario's 4-vertex path: 0-1-2-3, unit weights.
func path4(t *testing.T) *csrgraph.Graph {
	t.Helper()
	b := csrgraph.NewBuilder(4)
	b.AddEdge(0, 1, 1)
	b.AddEdge(1, 2, 1)
	b.AddEdge(2, 3, 1)
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestBuilder_SimplePath(t *testing.T) {
	g := path4(t)
	require.EqualValues(t, 4, g.N())
	require.EqualValues(t, 6, g.M()) // 3 undirected edges -> 6 directed entries
	require.EqualValues(t, 4, g.TotalWeight())

	ids, weights := g.Neighbors(0)
	require.Equal(t, []uint64{1}, ids)
	require.Equal(t, []uint64{1}, weights)

	ids, _ = g.Neighbors(1)
	require.Equal(t, []uint64{0, 2}, ids)
}

func TestNew_RejectsBadInput(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := csrgraph.New(0, nil, nil, nil, nil)
		require.ErrorIs(t, err, csrgraph.ErrEmptyGraph)
	})

	t.Run("bad row start", func(t *testing.T) {
		_, err := csrgraph.New(1, []uint64{1}, []uint64{1, 0}, nil, nil)
		require.ErrorIs(t, err, csrgraph.ErrBadRowPointers)
	})

	t.Run("self loop", func(t *testing.T) {
		_, err := csrgraph.New(1, []uint64{1}, []uint64{0, 1}, []uint64{0}, []uint64{1})
		require.ErrorIs(t, err, csrgraph.ErrBadNeighbor)
	})

	t.Run("zero vertex weight", func(t *testing.T) {
		_, err := csrgraph.New(1, []uint64{0}, []uint64{0, 0}, nil, nil)
		require.ErrorIs(t, err, csrgraph.ErrBadWeight)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := csrgraph.New(2, []uint64{1}, []uint64{0, 0, 0}, nil, nil)
		require.ErrorIs(t, err, csrgraph.ErrLengthMismatch)
	})
}

func TestMETIS_RoundTrip(t *testing.T) {
	g := path4(t)

	var buf strings.Builder
	require.NoError(t, csrgraph.WriteMETIS(&buf, g))

	got, err := csrgraph.ReadMETIS(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.EqualValues(t, g.N(), got.N())
	require.EqualValues(t, g.M(), got.M())
	require.EqualValues(t, g.TotalWeight(), got.TotalWeight())

	for v := uint64(0); v < g.N(); v++ {
		wantIDs, wantW := g.Neighbors(v)
		gotIDs, gotW := got.Neighbors(v)
		require.Equal(t, wantIDs, gotIDs)
		require.Equal(t, wantW, gotW)
	}
}

func TestReadMETIS_CommentsAndMissingHeader(t *testing.T) {
	_, err := csrgraph.ReadMETIS(strings.NewReader("% just a comment\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, csrgraph.ErrMETISFormat))
}

func TestReadMETIS_RejectsSelfLoop(t *testing.T) {
	src := "2 1\n1 1\n1\n"
	_, err := csrgraph.ReadMETIS(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, csrgraph.ErrMETISFormat))
}

func TestReadMETIS_WithWeights(t *testing.T) {
	src := "% comment\n3 2 011\n2 2 5\n3 1 5 3 7\n1 2 7\n"
	g, err := csrgraph.ReadMETIS(strings.NewReader(src))
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())
	require.EqualValues(t, 2, g.VertexWeight(0))
	ids, weights := g.Neighbors(1)
	require.Equal(t, []uint64{0, 2}, ids)
	require.Equal(t, []uint64{5, 7}, weights)
}
