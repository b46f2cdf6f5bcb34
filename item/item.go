package item

import (
	"github.com/katalvlaran/sharedmap/csrgraph"
	"github.com/katalvlaran/sharedmap/transtable"
)

// Item is one partitioning task on one subgraph at one level (spec §3,
// §4.4): the path of block indices chosen from the top level down to
// here, the subgraph itself, its translation table back to the root,
// and whether this Item owns (and must release) that subgraph and
// table.
//
// Owned is false only for the single synthetic root Item, which
// references the caller-supplied graph and identity table; every
// child Item produced by package subgraph has Owned=true and is
// responsible for releasing its own Graph and Table once its
// partitioning completes and any children have been handed off.
type Item struct {
	Identifier []uint64
	Graph      *csrgraph.Graph
	Table      *transtable.Table
	Owned      bool
}

// NewRoot wraps the caller's graph and identity table as the borrowed
// root Item (spec §3: "owned is false only for the single synthetic
// root Item").
func NewRoot(g *csrgraph.Graph, tt *transtable.Table) *Item {
	return &Item{
		Identifier: []uint64{},
		Graph:      g,
		Table:      tt,
		Owned:      false,
	}
}

// NewChild builds a scheduler-owned child Item whose identifier is the
// parent's identifier with block appended (spec §3, §4.2).
func NewChild(parent *Item, block uint64, g *csrgraph.Graph, tt *transtable.Table) *Item {
	id := make([]uint64, len(parent.Identifier)+1)
	copy(id, parent.Identifier)
	id[len(parent.Identifier)] = block

	return &Item{
		Identifier: id,
		Graph:      g,
		Table:      tt,
		Owned:      true,
	}
}

// Depth returns this Item's current recursion depth under a hierarchy
// of length ell, per spec §3's depth convention: level ell-1 is the
// top, level 0 is the bottom, and depth = ell-1-len(identifier).
func (it *Item) Depth(ell int) int {
	return ell - 1 - len(it.Identifier)
}

// Size returns the vertex count of this Item's subgraph, the ordering
// key for priority-queue scheduling (spec §4.4: the scheduler consumes
// the largest pending subgraph first).
func (it *Item) Size() uint64 {
	if it.Graph == nil {
		return 0
	}

	return it.Graph.N()
}

// Less implements the §4.4 ordering: a < b iff |V(a.G)| < |V(b.G)|.
func Less(a, b *Item) bool { return a.Size() < b.Size() }

// Release frees this Item's Graph and Table iff Owned is true (spec
// §3/§4.4: "the destructor/free operation always releases the
// identifier, and G and T iff owned=true"). Go's garbage collector
// reclaims the memory; Release's role is to drop the last live
// reference promptly so large intermediate subgraphs do not outlive
// their task, and to make the ownership discipline explicit and
// testable rather than implicit in scope exit.
func (it *Item) Release() {
	it.Identifier = nil
	if it.Owned {
		it.Graph = nil
		it.Table = nil
	}
}
