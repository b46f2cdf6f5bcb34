package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/qap"
	"github.com/katalvlaran/sharedmap/scheduler"
	"github.com/katalvlaran/sharedmap/stats"
	"github.com/katalvlaran/sharedmap/transtable"
)

// pathGraph builds an n-vertex path 0-1-...-(n-1) with unit weights,
// the scenario used across the strategy tests below.
func pathGraph(t *testing.T, n uint64) *csrgraph.Graph {
	t.Helper()
	b := csrgraph.NewBuilder(n)
	for v := uint64(0); v < n-1; v++ {
		b.AddEdge(v, v+1, 1)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func newConfig(t *testing.T, threads int, strategy algoconfig.Strategy) *algoconfig.Config {
	t.Helper()
	hierarchy := []uint64{2, 2}
	distance := []uint64{1, 10}
	serial, err := algoconfig.ParseConfigToSerial("fast", len(hierarchy))
	require.NoError(t, err)
	parallel, err := algoconfig.ParseConfigToParallel("fast", len(hierarchy))
	require.NoError(t, err)

	cfg, err := algoconfig.New(hierarchy, distance, serial, parallel, 0.1, threads, strategy, 42)
	require.NoError(t, err)

	return cfg
}

func newAdapter() *partition.Adapter {
	return partition.NewAdapter(partition.NewReferenceRegistry(), stats.Noop{})
}

func isValidPartition(p []uint64, n, k uint64) bool {
	if uint64(len(p)) != n {
		return false
	}
	for _, b := range p {
		if b >= k {
			return false
		}
	}

	return true
}

func TestNaive_ProducesValidPartition(t *testing.T) {
	g := pathGraph(t, 8)
	root := item.NewRoot(g, transtable.Identity(8))
	cfg := newConfig(t, 1, algoconfig.Naive)

	p, err := scheduler.Naive(context.Background(), root, cfg, newAdapter(), stats.Noop{})
	require.NoError(t, err)
	require.True(t, isValidPartition(p, 8, cfg.K))
}

func TestLayer_ProducesValidPartition(t *testing.T) {
	g := pathGraph(t, 8)
	root := item.NewRoot(g, transtable.Identity(8))
	cfg := newConfig(t, 4, algoconfig.Layer)

	p, err := scheduler.Layer(context.Background(), root, cfg, newAdapter(), stats.Noop{})
	require.NoError(t, err)
	require.True(t, isValidPartition(p, 8, cfg.K))
}

func TestQueue_ProducesValidPartition(t *testing.T) {
	g := pathGraph(t, 8)
	root := item.NewRoot(g, transtable.Identity(8))
	cfg := newConfig(t, 4, algoconfig.Queue)

	p, err := scheduler.Queue(context.Background(), root, cfg, newAdapter(), stats.Noop{})
	require.NoError(t, err)
	require.True(t, isValidPartition(p, 8, cfg.K))
}

func TestNBLayer_ProducesValidPartition(t *testing.T) {
	g := pathGraph(t, 8)
	root := item.NewRoot(g, transtable.Identity(8))
	cfg := newConfig(t, 4, algoconfig.NBLayer)

	p, err := scheduler.NBLayer(context.Background(), root, cfg, newAdapter(), stats.Noop{})
	require.NoError(t, err)
	require.True(t, isValidPartition(p, 8, cfg.K))
}

// TestStrategyEquivalence_AtOneThread checks spec invariant 6: with
// n_threads=1, every strategy must agree with NAIVE, since Run routes
// all of them through the same serial code path.
func TestStrategyEquivalence_AtOneThread(t *testing.T) {
	for _, strat := range []algoconfig.Strategy{algoconfig.Naive, algoconfig.Layer, algoconfig.Queue, algoconfig.NBLayer} {
		g := pathGraph(t, 8)
		root := item.NewRoot(g, transtable.Identity(8))
		cfg := newConfig(t, 1, strat)

		p, err := scheduler.Run(context.Background(), root, cfg, newAdapter(), stats.Noop{})
		require.NoError(t, err)

		gNaive := pathGraph(t, 8)
		rootNaive := item.NewRoot(gNaive, transtable.Identity(8))
		cfgNaive := newConfig(t, 1, algoconfig.Naive)
		want, err := scheduler.Naive(context.Background(), rootNaive, cfgNaive, newAdapter(), stats.Noop{})
		require.NoError(t, err)

		require.Equal(t, want, p, "strategy %v must match NAIVE at n_threads=1", strat)
	}
}

// TestAllStrategies_AgreeOnQAPShape exercises the full fold-to-root
// path (spec §4.5) for every strategy and confirms the resulting
// partition feeds qap.Determine without panicking, on a graph deep
// enough to hit every hierarchy level multiple times.
func TestAllStrategies_AgreeOnQAPShape(t *testing.T) {
	hierarchy := []uint64{2, 2}
	distance := []uint64{1, 10}

	for _, strat := range []algoconfig.Strategy{algoconfig.Naive, algoconfig.Layer, algoconfig.Queue, algoconfig.NBLayer} {
		g := pathGraph(t, 16)
		root := item.NewRoot(g, transtable.Identity(16))
		cfg := newConfig(t, 3, strat)

		p, err := scheduler.Run(context.Background(), root, cfg, newAdapter(), stats.Noop{})
		require.NoError(t, err)
		require.True(t, isValidPartition(p, 16, cfg.K))

		g2 := pathGraph(t, 16)
		cost := qap.Determine(g2, hierarchy, distance, p)
		require.GreaterOrEqual(t, cost, uint64(0))
	}
}

func TestRun_UnknownStrategy(t *testing.T) {
	g := pathGraph(t, 4)
	root := item.NewRoot(g, transtable.Identity(4))
	cfg := newConfig(t, 2, algoconfig.Strategy(99))

	_, err := scheduler.Run(context.Background(), root, cfg, newAdapter(), stats.Noop{})
	require.Error(t, err)
}
