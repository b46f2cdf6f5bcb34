// Package algoconfig parses and precomputes the configuration the
// scheduler runs under: hierarchy, distance, imbalance, algorithm
// choices, strategy, thread budget, and seed (spec.md §3, §6), plus
// the index_vec/k_rem_vec tables used by solution folding (§4.5) and
// the adaptive imbalance rule (§4.3).
package algoconfig
