package delaunay

// Point is a 2D coordinate. It is a plain value with no identity beyond its
// coordinates: two points are the same point iff X and Y are equal, and the
// mesh never mutates a point after it has been added, so exact comparison
// stays meaningful.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Mag is the squared magnitude. All distance comparisons in the mesh are
// squared-distance comparisons, which keeps square roots out of the in-circle
// test entirely.
func (p Point) Mag() float64 {
	return p.X*p.X + p.Y*p.Y
}
