package sharedmap

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/sharedmap/algoconfig"
)

// prefix is the diagnostic line prefix the original CLI and library
// print ahead of every validation message (original:
// libsharedmap.cpp's `std::string prefix = "---SharedMap--- ";`),
// carried here so Validate's aggregated error reads the same way.
const prefix = "---SharedMap--- "

// Input is the raw CSR graph plus algorithm parameters, mirroring the
// flat-array signature of shared_map_hierarchical_multisection
// (original: include/libsharedmap.h) before it is lifted into a
// csrgraph.Graph and algoconfig.Config.
type Input struct {
	N          uint64
	VWeights   []uint64
	AdjPtrs    []uint64
	AdjWeights []uint64
	Adj        []uint64
	Hierarchy  []uint64
	Distance   []uint64
	Imbalance  float64
	NThreads   int
	Seed       uint64
	Strategy   algoconfig.Strategy
	ParallelAlg algoconfig.Algorithm
	SerialAlg   algoconfig.Algorithm

	// Verbose controls, per spec §9 open question (i), whether Validate
	// runs the per-row duplicate-neighbor scan the original gated
	// behind the same flag. Validate's error and warning text is the
	// same either way.
	Verbose bool
}

// Validate checks that in is consistent enough to hand to Solve,
// mirroring shared_map_hierarchical_multisection_assert_input
// (original: lib/libsharedmap.cpp) field for field. Unlike the
// original's bool-returning short-circuit, Validate collects every
// violation it finds via multierr so a caller sees the full list in
// one pass (spec §6's predicate is side-effect-free; it does not
// itself decide how many errors to surface).
//
// The returned warnings are non-fatal diagnostics (spec §7's Warning
// kind, e.g. distance[i]==0 or imbalance==0): the original prints them
// to stderr and proceeds (lib/libsharedmap.cpp:360-372); Validate
// surfaces them to the caller instead of printing, alongside err,
// which is nil exactly when in is fit to hand to Solve.
func Validate(in Input) (warnings []error, err error) {
	var errs error

	if in.N == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%sn == 0 is not allowed", prefix))
		return warnings, errs // nothing else can be safely checked without n
	}
	if len(in.AdjPtrs) != int(in.N)+1 {
		errs = multierr.Append(errs, fmt.Errorf("%sadj_ptrs length %d, want %d", prefix, len(in.AdjPtrs), in.N+1))
		return warnings, errs
	}
	if len(in.VWeights) != int(in.N) {
		errs = multierr.Append(errs, fmt.Errorf("%sv_weights length %d, want %d", prefix, len(in.VWeights), in.N))
	}
	if in.AdjPtrs[0] != 0 {
		errs = multierr.Append(errs, fmt.Errorf("%sadj_ptrs[0] != 0 (is %d), invalid CSR", prefix, in.AdjPtrs[0]))
	}
	for i := uint64(0); i < in.N; i++ {
		if in.AdjPtrs[i] > in.AdjPtrs[i+1] {
			errs = multierr.Append(errs, fmt.Errorf("%sadj_ptrs not nondecreasing at i=%d (%d > %d)", prefix, i, in.AdjPtrs[i], in.AdjPtrs[i+1]))
		}
	}

	m := in.AdjPtrs[len(in.AdjPtrs)-1]
	if uint64(len(in.Adj)) != m || uint64(len(in.AdjWeights)) != m {
		errs = multierr.Append(errs, fmt.Errorf("%sadj/adj_weights length mismatch with adj_ptrs[n]=%d", prefix, m))
		return warnings, errs
	}

	for i := uint64(0); i < in.N && i < uint64(len(in.VWeights)); i++ {
		if in.VWeights[i] == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%svertex %d has weight 0, which is not allowed", prefix, i))
		}

		lo, hi := in.AdjPtrs[i], in.AdjPtrs[i+1]
		var seen map[uint64]struct{}
		if in.Verbose {
			seen = make(map[uint64]struct{}, hi-lo)
		}
		for j := lo; j < hi; j++ {
			nb := in.Adj[j]
			w := in.AdjWeights[j]
			if nb == i {
				errs = multierr.Append(errs, fmt.Errorf("%svertex %d has itself as neighbor, which is not allowed", prefix, i))
				continue
			}
			if nb >= in.N {
				errs = multierr.Append(errs, fmt.Errorf("%svertex %d has neighbor %d out of range [0,%d)", prefix, i, nb, in.N))
				continue
			}
			if w == 0 {
				errs = multierr.Append(errs, fmt.Errorf("%svertex %d neighbor %d has edge weight 0, not allowed", prefix, i, nb))
			}
			if in.Verbose {
				if _, dup := seen[nb]; dup {
					errs = multierr.Append(errs, fmt.Errorf("%svertex %d has duplicate neighbor %d in its CSR row (parallel edges)", prefix, i, nb))
				}
				seen[nb] = struct{}{}
			}
		}
	}

	// Symmetry: every undirected edge {u,v} must appear exactly twice
	// (u->v and v->u) with matching weight (original's edge_weight /
	// dir_count maps, O(m) expected).
	type key struct{ a, b uint64 }
	weightOf := make(map[key]uint64, m)
	count := make(map[key]int, m)
	for u := uint64(0); u < in.N && u < uint64(len(in.AdjPtrs))-1; u++ {
		for j := in.AdjPtrs[u]; j < in.AdjPtrs[u+1]; j++ {
			v := in.Adj[j]
			w := in.AdjWeights[j]
			a, b := u, v
			if a > b {
				a, b = b, a
			}
			k := key{a, b}
			if existing, ok := weightOf[k]; ok && existing != w {
				errs = multierr.Append(errs, fmt.Errorf("%sedge (%d,%d) appears with inconsistent weights: %d vs %d", prefix, a, b, existing, w))
			} else {
				weightOf[k] = w
			}
			count[k]++
		}
	}
	for k, c := range count {
		if c != 2 {
			errs = multierr.Append(errs, fmt.Errorf("%sundirected edge (%d,%d) appears %d times in CSR, expected 2", prefix, k.a, k.b, c))
		}
	}

	if len(in.Hierarchy) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%sl <= 0 is not allowed", prefix))
	}
	if len(in.Hierarchy) != len(in.Distance) {
		errs = multierr.Append(errs, fmt.Errorf("%shierarchy length %d and distance length %d are not equal", prefix, len(in.Hierarchy), len(in.Distance)))
	}
	for i, h := range in.Hierarchy {
		if h == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%shierarchy position %d is 0, not allowed", prefix, i))
		}
	}
	for i, d := range in.Distance {
		if d == 0 {
			warnings = append(warnings, fmt.Errorf("%sdistance position %d is 0, communication cost at this level will not be counted", prefix, i))
		}
	}

	if in.Imbalance < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%simbalance %v < 0, not allowed", prefix, in.Imbalance))
	} else if in.Imbalance == 0 {
		warnings = append(warnings, fmt.Errorf("%simbalance is 0.0, partitions at every level must be perfectly balanced", prefix))
	}
	if in.NThreads <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s#threads %d <= 0, not allowed", prefix, in.NThreads))
	}
	if in.Strategy.String() == "unknown" {
		errs = multierr.Append(errs, fmt.Errorf("%sstrategy %v is not known", prefix, in.Strategy))
	}
	if in.ParallelAlg.String() == "unknown" {
		errs = multierr.Append(errs, fmt.Errorf("%sparallel algorithm %v is not known", prefix, in.ParallelAlg))
	}
	if in.SerialAlg.String() == "unknown" {
		errs = multierr.Append(errs, fmt.Errorf("%sserial algorithm %v is not known", prefix, in.SerialAlg))
	}

	return warnings, errs
}
