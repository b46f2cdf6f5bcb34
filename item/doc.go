// Package item defines the scheduler's task descriptor ("Item"): the
// identifier path, owned subgraph, translation table, and ownership
// flag described in spec.md §3 and §4.4. Items form the unit of work
// every scheduler strategy in package scheduler consumes and produces.
package item
