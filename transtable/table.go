package transtable

import (
	"errors"
	"math"
)

// ErrNotFinalized is returned by ToChild before Finalize has been called.
var ErrNotFinalized = errors.New("transtable: lookup before Finalize")

// invalid marks an unrouted parent id in toChild (original:
// flat_translation_table.h's `static constexpr u64 INVALID =
// std::numeric_limits<u64>::max()`).
const invalid = math.MaxUint64

// Table is a bidirectional bijection between a parent graph's vertex
// ids and a child subgraph's local ids [0,n'), ported directly from
// the array-based variant the rest of the library actually uses
// (original: flat_translation_table.h's m_o2n/m_n2o vectors) rather
// than the sorted-vector alternative — O(1) both directions, at the
// cost of allocating toChild proportional to the parent's vertex
// count instead of to n'.
//
// toChild is partial until Finalize: unrouted slots hold invalid.
// toParent is total and grows by one entry per Add call — toParent[local]
// is always valid immediately. Per spec §3, lookups on ToChild before
// Finalize are unspecified; this implementation returns
// ErrNotFinalized rather than a wrong answer.
type Table struct {
	toParent  []uint64
	toChild   []uint64
	finalized bool
}

// New allocates a Table for a parent graph with parentSize vertices,
// with no vertices inserted yet.
func New(parentSize uint64) *Table {
	toChild := make([]uint64, parentSize)
	for i := range toChild {
		toChild[i] = invalid
	}

	return &Table{
		toParent: make([]uint64, 0, parentSize),
		toChild:  toChild,
	}
}

// Identity returns the trivial Table mapping every vertex of an n-vertex
// root graph to itself — the root Item's translation table (spec §3:
// "The root table is the identity on V_root.").
func Identity(n uint64) *Table {
	t := New(n)
	for v := uint64(0); v < n; v++ {
		t.Add(v)
	}
	t.Finalize()

	return t
}

// Add routes parent vertex id into the next local slot (local ids are
// assigned in call order, i.e. ascending parent-vertex order when the
// caller adds vertices in ascending order — the extractor's contract,
// spec §4.2). Add may not be called after Finalize.
func (t *Table) Add(id uint64) (local uint64) {
	local = uint64(len(t.toParent))
	t.toParent = append(t.toParent, id)
	if id >= uint64(len(t.toChild)) {
		grown := make([]uint64, id+1)
		copy(grown, t.toChild)
		for i := len(t.toChild); i < len(grown); i++ {
			grown[i] = invalid
		}
		t.toChild = grown
	}
	t.toChild[id] = local

	return local
}

// Finalize freezes the table, permitting ToChild lookups. It is
// idempotent; calling it more than once is a no-op, matching the
// original's "called exactly once before use" discipline being a
// caller convention rather than a hard runtime requirement.
func (t *Table) Finalize() { t.finalized = true }

// Len returns the number of vertices routed into this table (n' of the
// child subgraph).
func (t *Table) Len() uint64 { return uint64(len(t.toParent)) }

// ToParent returns the parent-graph vertex id for local id, a total
// function (every local id in [0,Len()) is defined).
func (t *Table) ToParent(local uint64) uint64 { return t.toParent[local] }

// ToChild returns the local id for parent vertex id, and whether that
// parent vertex was routed into this table at all. Returns
// ErrNotFinalized if called before Finalize.
func (t *Table) ToChild(id uint64) (local uint64, ok bool, err error) {
	if !t.finalized {
		return 0, false, ErrNotFinalized
	}
	if id >= uint64(len(t.toChild)) {
		return 0, false, nil
	}
	local = t.toChild[id]
	if local == invalid {
		return 0, false, nil
	}

	return local, true, nil
}
