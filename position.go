package bkcoord

import (
	"math"
	"sort"
	"strings"
)

// vertOrient is the vertical traversal bias: "u" aligns to upper
// neighbors (predecessors), "d" to lower neighbors (successors).
type vertOrient string

const (
	vertUp   vertOrient = "u"
	vertDown vertOrient = "d"
)

// horizOrient is the horizontal traversal bias.
type horizOrient string

const (
	horizLeft  horizOrient = "l"
	horizRight horizOrient = "r"
)

// PositionX is the top-level entry point (section 4.7): it runs the
// conflict-aware vertical alignment and block-graph compaction four times
// (two vertical biases x two horizontal biases), selects the narrowest,
// aligns the four to a common origin, and balances them into one x per
// vertex.
func PositionX(g Graph) (map[VertexID]float64, error) {
	attrs := g.GraphAttrs()
	l, err := layeringFromOrder(g)
	if err != nil {
		return nil, err
	}

	conflicts := NewConflicts().Merge(FindType1Conflicts(g, l)).Merge(FindType2Conflicts(g, l))

	sepFwd := Sep(attrs.NodeSep, attrs.EdgeSep, false)
	sepRev := Sep(attrs.NodeSep, attrs.EdgeSep, true)

	vars := []struct {
		vert  vertOrient
		horiz horizOrient
		key   Align
	}{
		{vertUp, horizLeft, AlignUL},
		{vertUp, horizRight, AlignUR},
		{vertDown, horizLeft, AlignDL},
		{vertDown, horizRight, AlignDR},
	}

	xss := make(map[Align]map[VertexID]float64, 4)
	for _, cfg := range vars {
		oriented := l
		if cfg.vert == vertDown {
			oriented = reverseLayers(oriented)
		}
		if cfg.horiz == horizRight {
			oriented = reverseWithinLayers(oriented)
		}

		var neighborFn NeighborFn
		if cfg.vert == vertUp {
			neighborFn = g.Predecessors
		} else {
			neighborFn = g.Successors
		}

		root, align := VerticalAlignment(g, oriented, conflicts, neighborFn)

		reverseSep := cfg.horiz == horizRight
		sep := sepFwd
		if reverseSep {
			sep = sepRev
		}
		xs := HorizontalCompaction(g, oriented, root, align, sep, reverseSep)

		if cfg.horiz == horizRight {
			for v := range xs {
				xs[v] = -xs[v]
			}
		}

		xss[cfg.key] = xs
	}

	best := FindSmallestWidthAlignment(g, xss)
	aligned := AlignCoordinates(xss, best)

	if attrs.Align != "" {
		if x, ok := aligned[Align(strings.ToUpper(string(attrs.Align)))]; ok {
			return x, nil
		}
	}

	return Balance(aligned), nil
}

// layeringFromOrder builds L by grouping G's nodes by Rank and ordering
// each group by Order (section 4.7: "Build L from G.order").
func layeringFromOrder(g Graph) (Layering, error) {
	maxRank := -1
	for _, id := range g.Nodes() {
		if r := g.Node(id).Rank; r > maxRank {
			maxRank = r
		}
	}

	l := make(Layering, maxRank+1)
	for _, id := range g.Nodes() {
		r := g.Node(id).Rank
		l[r] = append(l[r], id)
	}
	for r := range l {
		sort.Slice(l[r], func(i, j int) bool {
			return g.Node(l[r][i]).Order < g.Node(l[r][j]).Order
		})
	}
	if err := validateLayering(g, l); err != nil {
		return nil, err
	}
	return l, nil
}

// FindSmallestWidthAlignment picks, among the four alignments, the one
// with the smallest width = max_v(xs[v]+width(v)/2) - min_v(xs[v]-width(v)/2).
// Ties keep the first encountered in iteration order over ul, ur, dl, dr.
func FindSmallestWidthAlignment(g Graph, xss map[Align]map[VertexID]float64) Align {
	order := []Align{AlignUL, AlignUR, AlignDL, AlignDR}

	var best Align
	bestWidth := 0.0
	first := true
	for _, key := range order {
		xs, ok := xss[key]
		if !ok {
			continue
		}
		w := width(g, xs)
		if first || w < bestWidth {
			best = key
			bestWidth = w
			first = false
		}
	}
	return best
}

func width(g Graph, xs map[VertexID]float64) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for v, x := range xs {
		w := g.Node(v).Width
		if x-w/2 < min {
			min = x - w/2
		}
		if x+w/2 > max {
			max = x + w/2
		}
	}
	if min > max {
		return 0
	}
	return max - min
}

// AlignCoordinates shifts each of the four alignments so that the selected
// one sits in place and the others share its min (for "l" horizontal
// alignments) or max (for "r" ones), per section 4.7.
func AlignCoordinates(xss map[Align]map[VertexID]float64, selected Align) map[Align]map[VertexID]float64 {
	selXs := xss[selected]
	selMin, selMax := extent(selXs)

	out := make(map[Align]map[VertexID]float64, len(xss))
	for key, xs := range xss {
		if key == selected {
			out[key] = xs
			continue
		}

		min, max := extent(xs)
		var shift float64
		if isLeftAlign(key) {
			shift = selMin - min
		} else {
			shift = selMax - max
		}

		shifted := make(map[VertexID]float64, len(xs))
		for v, x := range xs {
			shifted[v] = x + shift
		}
		out[key] = shifted
	}
	return out
}

func isLeftAlign(a Align) bool {
	return a == AlignUL || a == AlignDL
}

func extent(xs map[VertexID]float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min > max {
		return 0, 0
	}
	return min, max
}

// Balance produces the final per-vertex x (section 4.7) when graph.align
// does not pick one alignment; that override is handled by PositionX, which
// then returns the chosen aligned map without calling Balance. For each
// vertex, the four x values are sorted and the mean of the two middle
// values is returned; indices 1 and 2 are read unconditionally, since
// PositionX always produces exactly four alignments.
func Balance(aligned map[Align]map[VertexID]float64) map[VertexID]float64 {
	var anyMap map[VertexID]float64
	for _, xs := range aligned {
		anyMap = xs
		break
	}

	out := make(map[VertexID]float64, len(anyMap))
	for v := range anyMap {
		vals := []float64{
			aligned[AlignUL][v],
			aligned[AlignUR][v],
			aligned[AlignDL][v],
			aligned[AlignDR][v],
		}
		sort.Float64s(vals)
		out[v] = (vals[1] + vals[2]) / 2
	}
	return out
}
