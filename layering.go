package bkcoord

// Layering is an ordered sequence of layers, each an ordered sequence of
// vertex ids, consistent with each vertex's Order attribute. It is the "L"
// of spec section 2. layeringFromOrder (position.go) builds one from a
// Graph by grouping on Rank and sorting each group by Order, the way the
// teacher's LayeredGraph.Layers() groups by LayerPosition.Layer/Order.
type Layering [][]VertexID

// validateLayering checks the section 3 invariant that every vertex used
// in L exists in G with an Order matching its position.
func validateLayering(g Graph, l Layering) error {
	known := make(map[VertexID]bool, len(g.Nodes()))
	for _, id := range g.Nodes() {
		known[id] = true
	}

	for r, layer := range l {
		for i, id := range layer {
			if !known[id] {
				return invalidGraphf("layer %d position %d: vertex %q not found in graph", r, i, id)
			}
			if v := g.Node(id); v.Order != i {
				return invalidGraphf("layer %d position %d: vertex %q has order %d, want %d", r, i, id, v.Order, i)
			}
		}
	}
	return nil
}

// reverseLayers returns a new Layering with the layer sequence reversed
// (used to orient traversal for the "down" vertical bias).
func reverseLayers(l Layering) Layering {
	out := make(Layering, len(l))
	for i, layer := range l {
		out[len(l)-1-i] = layer
	}
	return out
}

// reverseWithinLayers returns a new Layering with each layer's internal
// order reversed (used to orient traversal for the "right" horizontal
// bias).
func reverseWithinLayers(l Layering) Layering {
	out := make(Layering, len(l))
	for i, layer := range l {
		rl := make([]VertexID, len(layer))
		for j, id := range layer {
			rl[len(layer)-1-j] = id
		}
		out[i] = rl
	}
	return out
}
