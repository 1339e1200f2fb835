package bkcoord

import "math"

// Conflicts is a symmetric binary relation over vertex ids: hasConflict(v,
// w) holds iff hasConflict(w, v) does. Storage canonicalizes each
// unordered pair by the lexicographic min/max of the two ids, keyed by the
// smaller id (section 3).
type Conflicts struct {
	m map[VertexID]map[VertexID]bool
}

// NewConflicts returns an empty conflict set.
func NewConflicts() *Conflicts {
	return &Conflicts{m: make(map[VertexID]map[VertexID]bool)}
}

// AddConflict marks (v, w) as conflicting. Order does not matter.
func AddConflict(c *Conflicts, v, w VertexID) {
	if v == w {
		return
	}
	lo, hi := v, w
	if hi < lo {
		lo, hi = hi, lo
	}
	if c.m[lo] == nil {
		c.m[lo] = make(map[VertexID]bool)
	}
	c.m[lo][hi] = true
}

// HasConflict reports whether (v, w) was previously marked, in either
// order.
func HasConflict(c *Conflicts, v, w VertexID) bool {
	lo, hi := v, w
	if hi < lo {
		lo, hi = hi, lo
	}
	return c.m[lo][hi]
}

// Merge unions b into a and returns a.
func (a *Conflicts) Merge(b *Conflicts) *Conflicts {
	for lo, his := range b.m {
		for hi := range his {
			AddConflict(a, lo, hi)
		}
	}
	return a
}

// FindOtherInnerSegmentNode returns v's unique dummy predecessor if v is
// itself a dummy node, or "" (ok=false) otherwise. Section 3 guarantees a
// dummy node has at most one dummy predecessor.
func FindOtherInnerSegmentNode(g Graph, v VertexID) (VertexID, bool) {
	if !g.Node(v).Dummy.IsDummy() {
		return "", false
	}
	for _, u := range g.Predecessors(v) {
		if g.Node(u).Dummy.IsDummy() {
			return u, true
		}
	}
	return "", false
}

// FindType1Conflicts detects crossings between a non-inner segment and an
// inner segment (section 4.2), which must be resolved in favor of the
// inner segment staying straight.
func FindType1Conflicts(g Graph, l Layering) *Conflicts {
	conflicts := NewConflicts()

	for i := 0; i < len(l)-1; i++ {
		cur := l[i+1]
		if len(cur) == 0 {
			continue
		}

		k0 := 0
		scanPos := 0
		prevLen := len(l[i])
		last := cur[len(cur)-1]

		for idx, v := range cur {
			w, hasInner := FindOtherInnerSegmentNode(g, v)
			k1 := prevLen
			if hasInner {
				k1 = g.Node(w).Order
			}

			if hasInner || v == last {
				for _, s := range cur[scanPos : idx+1] {
					for _, u := range g.Predecessors(s) {
						uPos := g.Node(u).Order
						if (uPos < k0 || uPos > k1) && !(g.Node(u).Dummy.IsDummy() && g.Node(s).Dummy.IsDummy()) {
							AddConflict(conflicts, u, s)
						}
					}
				}
				scanPos = idx + 1
				k0 = k1
			}
		}
	}

	return conflicts
}

// FindType2Conflicts detects crossings between two inner segments (section
// 4.3).
func FindType2Conflicts(g Graph, l Layering) *Conflicts {
	conflicts := NewConflicts()

	scan := func(south []VertexID, lo, hi, nbL, nbR int) {
		for i := lo; i < hi; i++ {
			v := south[i]
			if !g.Node(v).Dummy.IsDummy() {
				continue
			}
			for _, u := range g.Predecessors(v) {
				if !g.Node(u).Dummy.IsDummy() {
					continue
				}
				uOrder := g.Node(u).Order
				if uOrder < nbL || uOrder > nbR {
					AddConflict(conflicts, u, v)
				}
			}
		}
	}

	for i := 1; i < len(l); i++ {
		north := l[i-1]
		south := l[i]

		prevNorthPos := -1
		// nextNorthPos starts "undefined": no border seen yet on this
		// layer pair, so the lower-bound check in scan must never trip.
		nextNorthPos := math.MinInt
		southPos := 0

		for southLookahead, v := range south {
			if g.Node(v).Dummy == DummyBorder {
				preds := g.Predecessors(v)
				if len(preds) > 0 {
					nextNorthPos = g.Node(preds[0]).Order
					scan(south, southPos, southLookahead, prevNorthPos, nextNorthPos)
					southPos = southLookahead
					prevNorthPos = nextNorthPos
				}
			}
			scan(south, southPos, len(south), nextNorthPos, len(north))
		}
	}

	return conflicts
}
