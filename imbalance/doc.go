// Package imbalance implements the adaptive per-level imbalance rule
// of spec.md §4.3: given the global imbalance target, it derives the
// looser imbalance bound a single level's partitioner call should use
// so that the product of per-level bounds still respects the global
// target against the original total weight.
package imbalance
