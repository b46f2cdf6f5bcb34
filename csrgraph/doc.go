// Package csrgraph defines the immutable, weighted, undirected graph
// representation SharedMap partitions: a compressed-sparse-row (CSR)
// layout over vertex weights, row pointers, neighbor ids, and edge
// weights, plus a reader/writer for the METIS graph file format.
//
// A Graph is built once (via New, ReadMETIS, or a Builder) and never
// mutated afterward; every partitioning task reads it concurrently
// without locking.
package csrgraph
