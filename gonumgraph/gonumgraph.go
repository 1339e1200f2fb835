// Package gonumgraph adapts gonum's int64-keyed directed graphs to the
// bkcoord.Graph interface, so callers already building a layout graph with
// gonum.org/v1/gonum/graph/simple can feed it straight into bkcoord.PositionX.
package gonumgraph

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/layoutkit/bkcoord"
)

// Attrs is the bkcoord-relevant attribute set for one gonum node, keyed by
// its int64 ID. gonum's graph.Node carries only an ID, so attributes live
// alongside the graph rather than on the node itself.
type Attrs struct {
	Rank     int
	Order    int
	Width    float64
	Dummy    bkcoord.DummyKind
	LabelPos bkcoord.LabelPos
}

// Graph wraps a *simple.DirectedGraph plus a side table of attributes so it
// satisfies bkcoord.Graph. VertexID is the decimal string form of the
// node's int64 ID.
type Graph struct {
	g     *simple.DirectedGraph
	attrs map[int64]Attrs
	ga    bkcoord.GraphAttrs
}

// New wraps g. Use SetAttrs to populate each node's rank/order/width/dummy
// attributes before calling bkcoord.PositionX.
func New(g *simple.DirectedGraph, ga bkcoord.GraphAttrs) *Graph {
	return &Graph{g: g, attrs: make(map[int64]Attrs), ga: ga}
}

// SetAttrs records the bkcoord attributes for the node with the given id.
// The node must already exist in the wrapped gonum graph.
func (a *Graph) SetAttrs(id int64, at Attrs) {
	a.attrs[id] = at
}

func parseID(v bkcoord.VertexID) int64 {
	id, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("gonumgraph: invalid vertex id %q: %v", v, err))
	}
	return id
}

func formatID(id int64) bkcoord.VertexID {
	return bkcoord.VertexID(strconv.FormatInt(id, 10))
}

func (a *Graph) GraphAttrs() bkcoord.GraphAttrs { return a.ga }

func (a *Graph) Nodes() []bkcoord.VertexID {
	it := a.g.Nodes()
	ids := make([]bkcoord.VertexID, 0, it.Len())
	for it.Next() {
		ids = append(ids, formatID(it.Node().ID()))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a *Graph) Node(v bkcoord.VertexID) bkcoord.Vertex {
	at := a.attrs[parseID(v)]
	return bkcoord.Vertex{
		Rank:     at.Rank,
		Order:    at.Order,
		Width:    at.Width,
		Dummy:    at.Dummy,
		LabelPos: at.LabelPos,
	}
}

func (a *Graph) order(id int64) int { return a.attrs[id].Order }

func (a *Graph) Predecessors(v bkcoord.VertexID) []bkcoord.VertexID {
	id := parseID(v)
	it := a.g.To(id)
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return a.order(ids[i]) < a.order(ids[j]) })
	out := make([]bkcoord.VertexID, len(ids))
	for i, id := range ids {
		out[i] = formatID(id)
	}
	return out
}

func (a *Graph) Successors(v bkcoord.VertexID) []bkcoord.VertexID {
	id := parseID(v)
	it := a.g.From(id)
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return a.order(ids[i]) < a.order(ids[j]) })
	out := make([]bkcoord.VertexID, len(ids))
	for i, id := range ids {
		out[i] = formatID(id)
	}
	return out
}

func (a *Graph) InEdges(v bkcoord.VertexID) []bkcoord.Edge {
	var out []bkcoord.Edge
	for _, p := range a.Predecessors(v) {
		out = append(out, bkcoord.Edge{From: p, To: v})
	}
	return out
}

func (a *Graph) OutEdges(v bkcoord.VertexID) []bkcoord.Edge {
	var out []bkcoord.Edge
	for _, s := range a.Successors(v) {
		out = append(out, bkcoord.Edge{From: v, To: s})
	}
	return out
}

func (a *Graph) SetNode(v bkcoord.VertexID, vx bkcoord.Vertex) {
	id := parseID(v)
	if a.g.Node(id) == nil {
		a.g.AddNode(simple.Node(id))
	}
	a.attrs[id] = Attrs{Rank: vx.Rank, Order: vx.Order, Width: vx.Width, Dummy: vx.Dummy, LabelPos: vx.LabelPos}
}

func (a *Graph) SetEdge(e bkcoord.Edge) {
	from, to := parseID(e.From), parseID(e.To)
	if a.g.Node(from) == nil {
		a.g.AddNode(simple.Node(from))
	}
	if a.g.Node(to) == nil {
		a.g.AddNode(simple.Node(to))
	}
	a.g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
}

func (a *Graph) Edge(u, v bkcoord.VertexID) (bkcoord.Edge, bool) {
	if !a.g.HasEdgeFromTo(parseID(u), parseID(v)) {
		return bkcoord.Edge{}, false
	}
	return bkcoord.Edge{From: u, To: v}, true
}

var _ bkcoord.Graph = (*Graph)(nil)
var _ graph.Directed = (*simple.DirectedGraph)(nil)
