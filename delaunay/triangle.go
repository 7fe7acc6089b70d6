package delaunay

// Triangle identifies a mesh face as a counterclockwise triple of indices
// into the point list. Equality is exact triple equality, not equality up to
// rotation; the insertion algorithm always builds faces with the newly
// inserted point in the first position, so the same face never shows up under
// two different rotations.
type Triangle struct {
	A, B, C int
}

// Vertex returns the nth vertex index. Slots outside 0..2 are an internal
// error, not a caller-visible one; every call site derives n from modular
// edge arithmetic.
func (t Triangle) Vertex(n int) int {
	switch n {
	case 0:
		return t.A
	case 1:
		return t.B
	case 2:
		return t.C
	}
	throw(ErrIndexOutOfRange, "vertex slot %d", n)
	return 0
}

// HasEdge reports whether both endpoints appear among t's vertices, in either
// order.
func (t Triangle) HasEdge(e0, e1 int) bool {
	return (t.A == e0 || t.B == e0 || t.C == e0) &&
		(t.A == e1 || t.B == e1 || t.C == e1)
}

// rotations returns the three winding-preserving rotations of t, each putting
// a different vertex in the last position. The Voronoi walk keys faces
// incident to a point by the rotation that puts that point last.
func (t Triangle) rotations() [3]Triangle {
	return [3]Triangle{
		{t.B, t.C, t.A}, // A last
		{t.C, t.A, t.B}, // B last
		{t.A, t.B, t.C}, // C last
	}
}

// Less orders triangles lexicographically by index triple. Exported triangle
// lists sort with it, so repeated exports of an unchanged mesh are identical.
func (t Triangle) Less(o Triangle) bool {
	if t.A != o.A {
		return t.A < o.A
	}
	if t.B != o.B {
		return t.B < o.B
	}
	return t.C < o.C
}

// shift moves all three indices by delta. Exports shift down to hide the
// sentinel points; lookups shift back up.
func (t Triangle) shift(delta int) Triangle {
	return Triangle{t.A + delta, t.B + delta, t.C + delta}
}

// nextEdge and prevEdge step counterclockwise and clockwise around a face's
// three edge slots.
func nextEdge(n int) int { return (n + 1) % 3 }
func prevEdge(n int) int { return (n + 2) % 3 }
