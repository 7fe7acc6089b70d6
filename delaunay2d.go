// An incremental 2D Delaunay triangulation package with Voronoi dual
// extraction.
//
// A Mesh is created around a bounding square guaranteed to contain all future
// input, then grown one point at a time with the Bowyer–Watson algorithm. At
// any moment the caller can export the triangulation, query face adjacency,
// or extract the Voronoi regions of the inserted points:
//
//	m := delaunay2d.New(delaunay2d.Point{X: 0, Y: 0}, 9999)
//	for _, p := range points {
//		if err := m.Insert(p); err != nil {
//			// out-of-bounds and degenerate points are reported, not fatal
//		}
//	}
//	triangles := m.ExportTriangles()
//	vertices, regions, err := m.ExportVoronoiRegions()
//
// All exported indices refer to inserted points only, in insertion order; the
// bounding square never leaks into exported data.
package delaunay2d

import "github.com/jaynus/delaunay2d/delaunay"

type Point = delaunay.Point
type Triangle = delaunay.Triangle
type Neighbours = delaunay.Neighbours
type Mesh = delaunay.Mesh
type Option = delaunay.Option

// New builds an empty triangulation. Every point later passed to Insert must
// fall inside the square centered at center and extending radius in each
// direction.
func New(center Point, radius float64, opts ...Option) *Mesh {
	return delaunay.NewMesh(center, radius, opts...)
}

// WithRobustInCircle selects the determinant in-circle predicate over the
// default cached fast path. See the delaunay package for the precision
// contract.
func WithRobustInCircle() Option {
	return delaunay.WithRobustInCircle()
}

// IsOutOfBounds reports whether an Insert error was a bounding-square
// precondition failure.
func IsOutOfBounds(err error) bool { return delaunay.IsOutOfBounds(err) }

// IsDegenerate reports whether an Insert error was caused by duplicate or
// collinear input.
func IsDegenerate(err error) bool { return delaunay.IsDegenerate(err) }

// IsConsistency reports whether an error was an internal mesh consistency
// violation.
func IsConsistency(err error) bool { return delaunay.IsConsistency(err) }
