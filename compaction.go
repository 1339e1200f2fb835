package bkcoord

import "math"

// HorizontalCompaction assigns an x per block root via two DFS sweeps over
// the block graph Bg (section 4.6), then extends the result to every
// vertex in G via xs[v] = xs[root[v]].
func HorizontalCompaction(g Graph, l Layering, root, align map[VertexID]VertexID, sep SepFn, reverseSep bool) map[VertexID]float64 {
	bg := BuildBlockGraph(g, l, root, sep)

	xs := make(map[VertexID]float64)
	// visited[v]: 0 = untouched, 1 = pass-1 done, 2 = pass-2 done. Pass 2
	// reuses this counter rather than a fresh visited set, so a node
	// reached again during pass 2's own recursion is memoized instead of
	// recomputed (section 4.6, design note on visit counters).
	visited := make(map[VertexID]int)

	var pass1 func(v VertexID) float64
	pass1 = func(v VertexID) float64 {
		if visited[v] == 0 {
			visited[v] = 1
			max := 0.0
			for _, e := range bg.InEdges(v) {
				c := pass1(e.From) + e.Weight
				if c > max {
					max = c
				}
			}
			xs[v] = max
		}
		return xs[v]
	}
	for _, v := range bg.Nodes() {
		pass1(v)
	}

	borderType := DummyBorderRight
	if reverseSep {
		borderType = DummyBorderLeft
	}

	var pass2 func(v VertexID) float64
	pass2 = func(v VertexID) float64 {
		if visited[v] != 2 {
			visited[v] = 2
			min := math.Inf(1)
			for _, e := range bg.OutEdges(v) {
				c := pass2(e.To) - e.Weight
				if c < min {
					min = c
				}
			}
			if !math.IsInf(min, 1) && g.Node(v).Dummy != borderType {
				if min > xs[v] {
					xs[v] = min
				}
			}
		}
		return xs[v]
	}
	for _, v := range bg.Nodes() {
		pass2(v)
	}

	out := make(map[VertexID]float64, len(root))
	for v := range root {
		out[v] = xs[root[v]]
	}
	return out
}
