// Package transtable implements the bidirectional translation table
// between a parent graph's vertex ids and a child subgraph's compacted
// local ids [0,n'), as specified in spec.md §3. It is the O(1)
// array-based variant (FlatTranslationTable in the original source);
// the root table is the identity on the caller's vertex set.
package transtable
