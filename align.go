package bkcoord

import "sort"

// NeighborFn returns v's neighbors on the adjacent layer: predecessors for
// the "up" vertical bias, successors for "down". It is applied on the
// original graph, never on an oriented view of it (section 4.7 step 2).
type NeighborFn func(v VertexID) []VertexID

// VerticalAlignment groups vertices into vertical blocks (section 4.4). l
// must already be oriented: callers reverse the layer sequence for the
// "down" bias and reverse within-layer order for the "r" bias before
// calling this. Root maps each vertex to its block representative; Align
// links each block into a single cycle.
func VerticalAlignment(g Graph, l Layering, conflicts *Conflicts, neighborFn NeighborFn) (root, align map[VertexID]VertexID) {
	root = make(map[VertexID]VertexID)
	align = make(map[VertexID]VertexID)
	pos := make(map[VertexID]int)

	for _, layer := range l {
		for i, v := range layer {
			root[v] = v
			align[v] = v
			pos[v] = i
		}
	}

	for _, layer := range l {
		prevIdx := -1
		for _, v := range layer {
			ws := append([]VertexID(nil), neighborFn(v)...)
			if len(ws) == 0 {
				continue
			}
			sort.Slice(ws, func(i, j int) bool { return pos[ws[i]] < pos[ws[j]] })

			lo := (len(ws) - 1) / 2
			hi := len(ws) / 2
			indices := []int{lo}
			if hi != lo {
				indices = append(indices, hi)
			}

			for _, idx := range indices {
				w := ws[idx]
				if align[v] == v && prevIdx < pos[w] && !HasConflict(conflicts, v, w) {
					align[w] = v
					root[v] = root[w]
					align[v] = root[v]
					prevIdx = pos[w]
				}
			}
		}
	}

	return root, align
}
