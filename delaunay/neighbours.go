package delaunay

// Neighbours is the adjacency record returned for an exported triangle. Slot
// k holds the triangle sharing the edge opposite vertex k, or nil where that
// side is the mesh boundary (including where the true neighbor is one of the
// hidden bounding-square faces).
type Neighbours [3]*Triangle

// Get returns the neighbor in slot n, or nil for an empty or out-of-range
// slot. Absence is ordinary here, so unlike Triangle.Vertex a bad slot does
// not trip an internal error.
func (n Neighbours) Get(k int) *Triangle {
	if k < 0 || k > 2 {
		return nil
	}
	return n[k]
}
