package qap

import "github.com/katalvlaran/sharedmap/csrgraph"

// DetermineLocation places block id pID into its coordinate at every
// hierarchy level, writing into loc (length len(hierarchy)), by
// repeatedly halving the [r_start,r_end) range according to each
// level's branching factor, walking the hierarchy from the top level
// (the highest index, per spec §3's depth convention) down
// (original: qap.cpp's determine_location).
func DetermineLocation(pID uint64, hierarchy []uint64, k uint64, loc []uint64) {
	rStart, rEnd := uint64(0), k
	s := len(hierarchy)
	for i := 0; i < s; i++ {
		nParts := hierarchy[s-1-i]
		add := (rEnd - rStart) / nParts
		for j := uint64(0); j < nParts; j++ {
			if rStart <= pID && pID < rStart+add {
				loc[s-1-i] = j
				rEnd = rStart + add
				break
			}
			rStart += add
		}
	}
}

// DetermineDistance returns D(uID,vID): the distance at the deepest
// hierarchy level where uID's and vID's block coordinates first
// differ (scanning from the top level down), or 0 if uID==vID
// (original: qap.cpp's determine_distance). uLoc/vLoc are scratch
// buffers of length len(hierarchy), reused across calls by the caller
// to avoid per-edge allocation.
func DetermineDistance(uID, vID, k uint64, hierarchy, distance, uLoc, vLoc []uint64) uint64 {
	if uID == vID {
		return 0
	}

	DetermineLocation(uID, hierarchy, k, uLoc)
	DetermineLocation(vID, hierarchy, k, vLoc)

	s := len(hierarchy)
	for i := 0; i < s; i++ {
		if uLoc[s-1-i] != vLoc[s-1-i] {
			return distance[s-1-i]
		}
	}

	// Unreachable when uID != vID: some level must differ.
	return 0
}

// Determine computes Σ w(u,v)·D(P(u),P(v)) over g's adjacency (original:
// qap.cpp's determine_qap). Matching the original, this walks g's full
// symmetric adjacency (both directed entries of every undirected edge),
// so each undirected edge contributes twice; callers comparing costs
// across runs only need internal consistency, which this preserves.
func Determine(g *csrgraph.Graph, hierarchy, distance []uint64, partition []uint64) uint64 {
	uLoc := make([]uint64, len(hierarchy))
	vLoc := make([]uint64, len(hierarchy))
	k := product(hierarchy)

	var cost uint64
	for u := uint64(0); u < g.N(); u++ {
		ids, weights := g.Neighbors(u)
		for j, v := range ids {
			uID, vID := partition[u], partition[v]
			if uID == vID {
				continue
			}
			d := DetermineDistance(uID, vID, k, hierarchy, distance, uLoc, vLoc)
			cost += weights[j] * d
		}
	}

	return cost
}

func product(xs []uint64) uint64 {
	p := uint64(1)
	for _, x := range xs {
		p *= x
	}

	return p
}
