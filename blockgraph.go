package bkcoord

// BuildBlockGraph constructs the weighted DAG of blocks described in
// section 4.5: an edge (a -> b) exists iff some layer contains two
// adjacent vertices u then v (same layer, consecutive positions) with
// root[u]=a, root[v]=b; its weight is the maximum, over all such adjacent
// pairs, of sep(G, v, u) — note the right-hand vertex v is the first
// argument.
func BuildBlockGraph(g Graph, l Layering, root map[VertexID]VertexID, sep SepFn) *SimpleGraph {
	bg := NewSimpleGraph(GraphAttrs{})

	for _, layer := range l {
		for _, v := range layer {
			// ensure every block root is a node, even isolated ones
			bg.SetNode(root[v], Vertex{})
		}

		for i := 1; i < len(layer); i++ {
			u := layer[i-1]
			v := layer[i]
			ru, rv := root[u], root[v]

			w := sep(g, v, u)
			if existing, ok := bg.Edge(ru, rv); !ok || w > existing.Weight {
				bg.SetEdge(Edge{From: ru, To: rv, Weight: w})
			}
		}
	}

	return bg
}
