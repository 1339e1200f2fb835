// Package fixture builds realistic test graphs for bkcoord. It is not part
// of the public API: it adapts the teacher's rank-assignment (BFS longest
// path) and layer-ordering (weighted median + adjacent transpose, counting
// crossings with a Fenwick tree) stages, which bkcoord itself treats as
// already-done, out-of-scope inputs (spec section 2, Non-goals: no rank
// assignment, no crossing minimization in the public API).
package fixture

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/layoutkit/bkcoord"
)

// Edge is a directed edge in the test graph's input form, before ranks,
// dummies, and ordering are assigned.
type Edge struct {
	From, To string
}

// Spec describes the graph to build.
type Spec struct {
	Nodes     []string
	Edges     []Edge
	Width     map[string]float64 // defaults to 1 when absent
	EdgeWidth float64            // width used for inserted edge dummies, default 1
	Attrs     bkcoord.GraphAttrs
	// OrderEpochs bounds how many median/transpose sweeps refine the
	// initial BFS ordering (adapted from the teacher's WarfieldOrderingOptimizer).
	OrderEpochs int
}

// Build assigns ranks (BFS longest path from roots), splits edges that span
// more than one rank with DummyEdge vertices, computes a crossing-reduced
// per-layer order, and returns a populated bkcoord.SimpleGraph.
func Build(s Spec) (*bkcoord.SimpleGraph, error) {
	r, err := BuildFull(s)
	if err != nil {
		return nil, err
	}
	return r.Graph, nil
}

// Result is BuildFull's return value: the graph plus the per-original-edge
// dummy chains Render needs to build edge paths.
type Result struct {
	Graph  *bkcoord.SimpleGraph
	Chains [][]string
}

// BuildFull is Build, additionally returning each original edge's dummy
// chain so callers can pass the chains to Render.
func BuildFull(s Spec) (*Result, error) {
	if s.EdgeWidth == 0 {
		s.EdgeWidth = 1
	}
	if s.OrderEpochs == 0 {
		s.OrderEpochs = 4
	}

	rank, err := assignRanks(s.Nodes, s.Edges)
	if err != nil {
		return nil, err
	}

	segments, dummyOf, chains, maxRank := splitLongEdges(s.Edges, rank)

	layers := buildLayers(rank, maxRank)
	initOrder(segments, layers)
	refineOrder(segments, layers, s.OrderEpochs)

	g := bkcoord.NewSimpleGraph(s.Attrs)
	order := make(map[string]int)
	for _, layer := range layers {
		for i, id := range layer {
			order[id] = i
		}
	}

	for id, r := range rank {
		v := bkcoord.Vertex{
			Rank:  r,
			Order: order[id],
			Width: width(s.Width, id),
		}
		if kind, ok := dummyOf[id]; ok {
			v.Dummy = kind
			v.Width = s.EdgeWidth
		}
		g.SetNode(bkcoord.VertexID(id), v)
	}

	for pair := range segments {
		g.SetEdge(bkcoord.Edge{From: bkcoord.VertexID(pair[0]), To: bkcoord.VertexID(pair[1])})
	}

	return &Result{Graph: g, Chains: chains}, nil
}

func width(m map[string]float64, id string) float64 {
	if m == nil {
		return 1
	}
	if w, ok := m[id]; ok {
		return w
	}
	return 1
}

// assignRanks is adapted from the teacher's assignLevels: BFS longest-path
// from every root (a node with no incoming edge), taking the max depth seen
// across all roots for shared descendants.
func assignRanks(nodes []string, edges []Edge) (map[string]int, error) {
	children := make(map[string][]string)
	hasParent := make(map[string]bool)
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n] = true
	}
	for _, e := range edges {
		if !known[e.From] || !known[e.To] {
			return nil, fmt.Errorf("fixture: edge %s->%s references unknown node", e.From, e.To)
		}
		children[e.From] = append(children[e.From], e.To)
		hasParent[e.To] = true
	}

	var roots []string
	for _, n := range nodes {
		if !hasParent[n] {
			roots = append(roots, n)
		}
	}
	sort.Strings(roots)

	rank := make(map[string]int, len(nodes))
	for _, n := range nodes {
		rank[n] = 0
	}
	for _, root := range roots {
		queue := []string{root}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, c := range children[p] {
				if r := rank[p] + 1; r > rank[c] {
					rank[c] = r
				}
				queue = append(queue, c)
			}
		}
	}
	return rank, nil
}

// splitLongEdges is adapted from the teacher's makeEdges/makeSegments/
// makeDummy: any edge spanning more than one rank gets an DummyEdge vertex
// inserted at every intermediate rank, and the resulting chain of
// rank-adjacent segments replaces the original edge.
func splitLongEdges(edges []Edge, rank map[string]int) (segments map[[2]string]bool, dummyOf map[string]bkcoord.DummyKind, chains [][]string, maxRank int) {
	segments = make(map[[2]string]bool)
	dummyOf = make(map[string]bkcoord.DummyKind)
	next := 0

	for r := range rank {
		if rank[r] > maxRank {
			maxRank = rank[r]
		}
	}

	for _, e := range edges {
		from, to := rank[e.From], rank[e.To]
		chain := []string{e.From}
		for r := from + 1; r < to; r++ {
			id := fmt.Sprintf("__dummy_%s_%s_%d", e.From, e.To, next)
			next++
			rank[id] = r
			dummyOf[id] = bkcoord.DummyEdge
			chain = append(chain, id)
		}
		chain = append(chain, e.To)
		for i := 1; i < len(chain); i++ {
			segments[[2]string{chain[i-1], chain[i]}] = true
		}
		chains = append(chains, chain)
	}
	return segments, dummyOf, chains, maxRank
}

func buildLayers(rank map[string]int, maxRank int) [][]string {
	layers := make([][]string, maxRank+1)
	for id, r := range rank {
		layers[r] = append(layers[r], id)
	}
	return layers
}

// initOrder seeds each layer's order via BFS from nodes with no predecessor
// in segments, adapted from the teacher's BFSOrderingInitializer.
func initOrder(segments map[[2]string]bool, layers [][]string) {
	children := make(map[string][]string)
	hasParent := make(map[string]bool)
	for e := range segments {
		children[e[0]] = append(children[e[0]], e[1])
		hasParent[e[1]] = true
	}

	allIDs := make(map[string]bool)
	for _, layer := range layers {
		for _, id := range layer {
			allIDs[id] = true
		}
	}
	var roots []string
	for id := range allIDs {
		if !hasParent[id] {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)

	seq := make(map[string]int)
	n := 0
	queue := append([]string(nil), roots...)
	visited := make(map[string]bool)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true
		seq[p] = n
		n++
		kids := append([]string(nil), children[p]...)
		sort.Strings(kids)
		queue = append(queue, kids...)
	}

	for _, layer := range layers {
		sort.Slice(layer, func(i, j int) bool { return seq[layer[i]] < seq[layer[j]] })
	}
}

// refineOrder runs a handful of median + adjacent-transpose sweeps, keeping
// the ordering with the fewest crossings, adapted from the teacher's
// WarfieldOrderingOptimizer / WMedianOrderingOptimizer / SwitchAdjacentOrderingOptimizer.
func refineOrder(segments map[[2]string]bool, layers [][]string, epochs int) {
	best := copyLayers(layers)
	bestN := countCrossings(segments, layers)

	for t := 0; t < epochs; t++ {
		downUp := t%2 == 0
		for i := range layers {
			y := i
			if downUp {
				y = len(layers) - 1 - i
			}
			medianSweep(segments, layers, y, downUp)
			transposeSweep(segments, layers, y, downUp)
		}
		n := countCrossings(segments, layers)
		if n < bestN {
			bestN = n
			best = copyLayers(layers)
		}
		if n == 0 {
			break
		}
	}

	for i := range layers {
		copy(layers[i], best[i])
	}
}

func copyLayers(layers [][]string) [][]string {
	out := make([][]string, len(layers))
	for i, l := range layers {
		out[i] = append([]string(nil), l...)
	}
	return out
}

func medianSweep(segments map[[2]string]bool, layers [][]string, y int, downUp bool) {
	w := make(map[string]float64, len(layers[y]))
	for i, node := range layers[y] {
		var xs []int
		if downUp {
			xs = neighborPositions(segments, layers, y, i, +1)
		} else {
			xs = neighborPositions(segments, layers, y, i, -1)
		}
		w[node] = median(xs)
	}
	sort.SliceStable(layers[y], func(i, j int) bool { return w[layers[y][i]] < w[layers[y][j]] })
}

// neighborPositions returns the positions in layer y+dir of nodes segment-
// connected to layers[y][x] (dir is +1 for the layer below, -1 for above).
func neighborPositions(segments map[[2]string]bool, layers [][]string, y, x, dir int) []int {
	ny := y + dir
	if ny < 0 || ny >= len(layers) {
		return nil
	}
	t := layers[y][x]
	var out []int
	for i, n := range layers[ny] {
		var key [2]string
		if dir > 0 {
			key = [2]string{t, n}
		} else {
			key = [2]string{n, t}
		}
		if segments[key] {
			out = append(out, i)
		}
	}
	return out
}

func median(xs []int) float64 {
	if len(xs) == 0 {
		return -1
	}
	sort.Ints(xs)
	m := len(xs) / 2
	switch {
	case len(xs)%2 == 1:
		return float64(xs[m])
	case len(xs) == 2:
		return float64(xs[0]+xs[1]) / 2
	default:
		left := float64(xs[m-1] - xs[0])
		right := float64(xs[len(xs)-1] - xs[m])
		if left+right == 0 {
			return float64(xs[m-1]+xs[m]) / 2
		}
		return (float64(xs[m-1])*right + float64(xs[m])*left) / (left + right)
	}
}

func transposeSweep(segments map[[2]string]bool, layers [][]string, y int, downUp bool) {
	if len(layers[y]) < 2 {
		return
	}
	if downUp && y == len(layers)-1 {
		return
	}
	if !downUp && y == 0 {
		return
	}

	for i := 0; i < len(layers[y])-1; i++ {
		j := i + 1
		current := []string{layers[y][i], layers[y][j]}
		swapped := []string{layers[y][j], layers[y][i]}

		var curN, swapN int
		if downUp {
			curN = crossingsBetween(segments, current, layers[y+1])
			swapN = crossingsBetween(segments, swapped, layers[y+1])
		} else {
			curN = crossingsBetween(segments, layers[y-1], current)
			swapN = crossingsBetween(segments, layers[y-1], swapped)
		}
		if swapN < curN {
			layers[y][i], layers[y][j] = layers[y][j], layers[y][i]
		}
	}
}

func countCrossings(segments map[[2]string]bool, layers [][]string) int {
	count := 0
	for i := 1; i < len(layers); i++ {
		count += crossingsBetween(segments, layers[i-1], layers[i])
	}
	return count
}

// crossingsBetween counts segment crossings between two adjacent layers
// using a Fenwick tree, adapted from the teacher's numCrossingsBetweenLayers.
func crossingsBetween(segments map[[2]string]bool, top, bottom []string) int {
	sum := 0
	bit := newFenwick(len(top))
	for i := len(bottom) - 1; i >= 0; i-- {
		node := bottom[i]
		for j := len(top) - 1; j >= 0; j-- {
			neighbor := top[j]
			if segments[[2]string{neighbor, node}] {
				bit.update(j+1, 1)
				sum += bit.query(j)
			}
		}
	}
	return sum
}

type fenwick []int

func newFenwick(n int) fenwick { return make(fenwick, n+1) }

func (b fenwick) update(i, v int) {
	for ; i < len(b); i += i & (-i) {
		b[i] += v
	}
}

func (b fenwick) query(i int) int {
	sum := 0
	for ; i > 0; i -= i & (-i) {
		sum += b[i]
	}
	return sum
}

// Shuffled returns a copy of ids in a pseudo-random order, useful for
// building adversarial initial orderings in tests.
func Shuffled(ids []string, r *rand.Rand) []string {
	out := append([]string(nil), ids...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Point is a rendered 2D coordinate.
type Point struct{ X, Y float64 }

// Render maps a PositionX result to full 2D points, adapted from the
// teacher's ScalerLayout/DirectEdge: y is rankGap*rank (rank-proportional,
// in place of the teacher's constant-factor scale), and each original
// edge's path is the straight line through the (x,y) of every node on its
// dummy chain — DirectEdge generalized from a single from/to pair to an
// arbitrary chain.
func Render(g *bkcoord.SimpleGraph, xs map[bkcoord.VertexID]float64, rankGap float64, chains [][]string) (points map[string]Point, edgePaths [][]Point) {
	points = make(map[string]Point, len(xs))
	for v, x := range xs {
		points[string(v)] = Point{X: x, Y: float64(g.Node(v).Rank) * rankGap}
	}

	for _, chain := range chains {
		path := make([]Point, len(chain))
		for i, id := range chain {
			path[i] = points[id]
		}
		edgePaths = append(edgePaths, path)
	}
	return points, edgePaths
}
