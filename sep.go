package bkcoord

// SepFn is the pure function returned by Sep: the minimum center-to-center
// horizontal distance required between layer-adjacent vertices w (left)
// and v (right).
type SepFn func(g Graph, v, w VertexID) float64

// Sep returns a SepFn parameterized by the graph-level separation
// parameters and by reverseSep, which flips the sign of the label-position
// correction (used when the algorithm traverses layers right-to-left).
//
// sum = v.width/2 + sep(v)/2 + sep(w)/2 + w.width/2, where sep(x) is
// edgesep if x is a dummy node and nodesep otherwise, plus a
// label-position correction for each of v and w.
func Sep(nodesep, edgesep float64, reverseSep bool) SepFn {
	return func(g Graph, v, w VertexID) float64 {
		vn := g.Node(v)
		wn := g.Node(w)

		vSep := nodesep
		if vn.Dummy.IsDummy() {
			vSep = edgesep
		}
		wSep := nodesep
		if wn.Dummy.IsDummy() {
			wSep = edgesep
		}

		sum := vn.Width/2 + vSep/2 + wSep/2 + wn.Width/2

		// Right node v: delta is -width/2 for "l", +width/2 for "r", else 0;
		// reverseSep adds delta as-is, otherwise subtracts it.
		vDelta := labelDelta(vn)
		if reverseSep {
			sum += vDelta
		} else {
			sum += -vDelta
		}

		// Left node w: delta is +width/2 for "l", -width/2 for "r", else 0;
		// reverseSep adds delta as-is, otherwise subtracts it.
		wDelta := -labelDelta(wn)
		if reverseSep {
			sum += wDelta
		} else {
			sum += -wDelta
		}

		return sum
	}
}

// labelDelta is the "v" (right-node) convention: -width/2 for labelpos l,
// +width/2 for labelpos r, 0 otherwise. The left-node convention is its
// negation, per spec section 4.1.
func labelDelta(v Vertex) float64 {
	switch v.LabelPos.normalize() {
	case LabelLeft:
		return -v.Width / 2
	case LabelRight:
		return v.Width / 2
	default:
		return 0
	}
}
