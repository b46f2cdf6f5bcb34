package algoconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/algoconfig"
)

func TestParseAlgorithmAndStrategy(t *testing.T) {
	a, err := algoconfig.ParseAlgorithm("kaffpa_eco")
	require.NoError(t, err)
	require.Equal(t, algoconfig.KaffpaEco, a)
	require.True(t, a.Serial())

	_, err = algoconfig.ParseAlgorithm("bogus")
	require.ErrorIs(t, err, algoconfig.ErrUnknownAlgorithm)

	s, err := algoconfig.ParseStrategy("nb_layer")
	require.NoError(t, err)
	require.Equal(t, algoconfig.NBLayer, s)

	_, err = algoconfig.ParseStrategy("bogus")
	require.ErrorIs(t, err, algoconfig.ErrUnknownStrategy)
}

func TestParseConfigPresets(t *testing.T) {
	serial, err := algoconfig.ParseConfigToSerial("fast", 3)
	require.NoError(t, err)
	require.Equal(t, []algoconfig.Algorithm{algoconfig.KaffpaFast, algoconfig.KaffpaFast, algoconfig.KaffpaFast}, serial)

	parallel, err := algoconfig.ParseConfigToParallel("strong", 2)
	require.NoError(t, err)
	require.Equal(t, []algoconfig.Algorithm{algoconfig.MtkahyparHighestQuality, algoconfig.MtkahyparHighestQuality}, parallel)

	_, err = algoconfig.ParseConfigToSerial("ultra", 1)
	require.Error(t, err)
}

func TestNew_PrecomputesIndexAndKRemVec(t *testing.T) {
	hierarchy := []uint64{2, 2}
	distance := []uint64{10, 1}
	algs := []algoconfig.Algorithm{algoconfig.KaffpaFast, algoconfig.KaffpaFast}

	cfg, err := algoconfig.New(hierarchy, distance, algs, algs, 0.05, 4, algoconfig.Naive, 1)
	require.NoError(t, err)
	require.EqualValues(t, 4, cfg.K)
	require.Equal(t, []uint64{1, 2}, cfg.IndexVec)
	require.Equal(t, []uint64{2, 4}, cfg.KRemVec)
	require.Equal(t, 2, cfg.Ell())
}

func TestNew_RejectsMismatch(t *testing.T) {
	_, err := algoconfig.New([]uint64{2}, []uint64{1, 2}, nil, nil, 0, 1, algoconfig.Naive, 0)
	require.ErrorIs(t, err, algoconfig.ErrDimensionMismatch)
}

func TestOffset(t *testing.T) {
	hierarchy := []uint64{2, 2}
	distance := []uint64{10, 1}
	algs := []algoconfig.Algorithm{algoconfig.KaffpaFast, algoconfig.KaffpaFast}
	cfg, err := algoconfig.New(hierarchy, distance, algs, algs, 0.05, 4, algoconfig.Naive, 1)
	require.NoError(t, err)

	// identifier (1,1) should be the last of the 4 leaf blocks: offset 3.
	require.EqualValues(t, 3, cfg.Offset([]uint64{1, 1}))
	require.EqualValues(t, 0, cfg.Offset([]uint64{0, 0}))
	require.EqualValues(t, 2, cfg.Offset([]uint64{1, 0}))
}
