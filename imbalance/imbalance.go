package imbalance

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadExponent is returned when r (splits remaining, including the
// current one) is not positive — the formula's exponent 1/r would be
// undefined or meaningless.
var ErrBadExponent = errors.New("imbalance: r (splits remaining) must be >= 1")

// Adaptive computes the per-level imbalance budget epsilon_local from
// the global target (spec §4.3):
//
//	eps_local = ((1+eps_global) * (kRem*wGlobal) / (k*wLocal))^(1/r) - 1
//
// r is the number of splits still to perform including the current
// one (under Item.Depth's convention, where the bottom level is depth
// 0, r = depth+1). kRem is the number of leaf blocks
// descended from the current subtree (algoconfig.Config.KRemAtDepth).
// k is the global leaf count and wGlobal the root graph's total
// weight; wLocal is the current subgraph's total weight.
//
// Per spec §9 open question (ii), a subgraph with wLocal==0 has no
// well-defined imbalance (its existence already means no further
// recursion is meaningful); Adaptive reports that case as eps_local=0
// rather than dividing by zero, leaving the "no further recursion"
// decision to the caller (package scheduler).
func Adaptive(epsGlobal float64, kRem, wGlobal, k, wLocal uint64, r int) (float64, error) {
	if r < 1 {
		return 0, fmt.Errorf("%w: r=%d", ErrBadExponent, r)
	}
	if wLocal == 0 {
		return 0, nil
	}

	ratio := (1 + epsGlobal) * float64(kRem) * float64(wGlobal) / (float64(k) * float64(wLocal))
	eps := math.Pow(ratio, 1/float64(r)) - 1
	if eps < 0 {
		eps = 0
	}

	return eps, nil
}
