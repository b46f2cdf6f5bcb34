package cmd

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/sharedmap"
	"github.com/katalvlaran/sharedmap/stats"
)

// prefix is the diagnostic line prefix the original CLI prints ahead
// of every message (original: main.cpp / libsharedmap.cpp's
// "---SharedMap--- "), reused here for CLI-facing failures.
const prefix = "---SharedMap--- "

func runSolve(cmd *cobra.Command, _ []string) error {
	if graphIn == "" {
		return fmt.Errorf("--graph is required")
	}

	hierarchy, err := parseColonList(hierarchyString)
	if err != nil {
		return fmt.Errorf("--hierarchy: %w", err)
	}
	distance, err := parseColonList(distanceString)
	if err != nil {
		return fmt.Errorf("--distance: %w", err)
	}

	strategy, err := algoconfig.ParseStrategy(strategyString)
	if err != nil {
		return err
	}

	serialAlgs, err := algoconfig.ParseConfigToSerial(config, len(hierarchy))
	if err != nil {
		return err
	}
	parallelAlgs, err := algoconfig.ParseConfigToParallel(config, len(hierarchy))
	if err != nil {
		return err
	}

	f, err := os.Open(graphIn)
	if err != nil {
		return fmt.Errorf("--graph: %w", err)
	}
	defer f.Close()

	g, err := csrgraph.ReadMETIS(f)
	if err != nil {
		return fmt.Errorf("--graph: %w", err)
	}

	actualSeed, err := resolveSeed(seed)
	if err != nil {
		return err
	}

	in := sharedmap.Input{
		N:          g.N(),
		VWeights:   g.RawVertexWeights(),
		AdjPtrs:    g.RowPointers(),
		Adj:        g.RawNeighbors(),
		AdjWeights: g.RawEdgeWeights(),
		Hierarchy:  hierarchy,
		Distance:   distance,
		Imbalance:  imbalance,
		NThreads:   threads,
		Seed:       actualSeed,
		Strategy:   strategy,
		// The scalar Solve entry point takes one algorithm id per
		// call (original: shared_map_hierarchical_multisection);
		// ParseConfigToSerial/Parallel above already expand --config
		// into per-level ids, so the first level's id stands in for
		// the uniform choice Solve broadcasts across every level.
		ParallelAlg: parallelAlgs[0],
		SerialAlg:   serialAlgs[0],
		Verbose:     verbose,
	}

	warnings, err := sharedmap.Validate(in)
	if err != nil {
		return err
	}
	if verbose {
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", w)
		}
	}

	collector := stats.NewCollector()
	var sink stats.Sink = collector
	if statsOut == "" {
		sink = stats.Noop{}
	}

	res, err := sharedmap.Solve(context.Background(), in, partition.NewReferenceRegistry(), sink)
	if err != nil {
		return err
	}

	if err := writeMapping(mappingOut, res.Partition); err != nil {
		return err
	}

	if statsOut != "" {
		sf, err := os.Create(statsOut)
		if err != nil {
			return fmt.Errorf("--stats: %w", err)
		}
		defer sf.Close()
		if err := collector.WriteJSON(sf); err != nil {
			return fmt.Errorf("--stats: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%scommunication cost: %d\n", prefix, res.CommCost)
		fmt.Fprintf(cmd.OutOrStdout(), "%smapping written to: %s\n", prefix, mappingOut)
	}

	return nil
}

// writeMapping writes one partition label per line (original:
// solver.h's write_solution).
func writeMapping(path string, p []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("--mapping: %w", err)
	}
	defer f.Close()

	for _, b := range p {
		if _, err := fmt.Fprintln(f, b); err != nil {
			return fmt.Errorf("--mapping: %w", err)
		}
	}

	return nil
}

// resolveSeed returns requested as-is when non-negative, or a
// crypto/rand-derived seed otherwise (original: main.cpp's
// `std::random_device{}()` default, ported to Go's crypto/rand since
// math/rand/v2 has no direct non-deterministic source of its own).
func resolveSeed(requested int64) (uint64, error) {
	if requested >= 0 {
		return uint64(requested), nil
	}

	upperBound := new(big.Int).SetUint64(^uint64(0))
	n, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	var buf [8]byte
	n.FillBytes(buf[:])

	return binary.BigEndian.Uint64(buf[:]), nil
}
