// Package rankdir implements the coordinate-system collaborator section 6
// of the core describes: the core always lays out as though rank increases
// top-to-bottom (direction TB), so a caller wanting LR or RL must swap
// width/height before calling bkcoord.PositionX, and a caller wanting LR,
// RL, or BT must transform the resulting coordinates afterward.
package rankdir

import "github.com/layoutkit/bkcoord"

// Direction is the rank direction a caller lays a graph out in. TB (the
// bkcoord native orientation) needs no transform.
type Direction string

const (
	TB Direction = "TB"
	BT Direction = "BT"
	LR Direction = "LR"
	RL Direction = "RL"
)

// Point is a vertex's final 2D coordinate.
type Point struct{ X, Y float64 }

// PrepareNode swaps Width/Height for LR/RL before the caller hands the graph
// to bkcoord.PositionX, since the core only ever reasons about a vertex's
// horizontal footprint (Width) within a top-to-bottom layering.
func PrepareNode(dir Direction, width, height float64) (w, h float64) {
	if dir == LR || dir == RL {
		return height, width
	}
	return width, height
}

// Restore maps a vertex's core-native x (from PositionX) and its rank's y
// (assigned externally, proportional to rank) to the final coordinate for
// the requested direction.
func Restore(dir Direction, x, y float64) Point {
	switch dir {
	case BT:
		return Point{X: x, Y: -y}
	case LR:
		return Point{X: y, Y: x}
	case RL:
		return Point{X: -y, Y: x}
	default: // TB
		return Point{X: x, Y: y}
	}
}

// RestoreAll applies Restore to every vertex in xs, given each vertex's rank
// y-coordinate (e.g. proportional to rank, as assigned by the ranking
// stage out of this core's scope).
func RestoreAll(dir Direction, xs map[bkcoord.VertexID]float64, y map[bkcoord.VertexID]float64) map[bkcoord.VertexID]Point {
	out := make(map[bkcoord.VertexID]Point, len(xs))
	for v, x := range xs {
		out[v] = Restore(dir, x, y[v])
	}
	return out
}
