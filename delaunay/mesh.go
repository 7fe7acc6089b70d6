package delaunay

import "sort"

// sentinelCount is the number of bounding-square corner points reserved at
// the front of the point list. They carry the triangulation's outer face so
// insertion never has to special-case an unbounded exterior, and they never
// appear in exported data: external indices are internal indices shifted down
// by this count.
const sentinelCount = 4

// none marks an empty neighbor slot in the arena.
const none int32 = -1

// record is one arena slot: a face, its neighbor handles (slot k is across
// the edge opposite vertex k), and its circumcircle, computed once when the
// face is created. Dead records stay in place and are recycled through the
// free list, so handles held by live records never dangle.
type record struct {
	tri      Triangle
	adj      [3]int32
	center   Point
	rSquared float64
	alive    bool
}

// Mesh is an incrementally-built Delaunay triangulation of the plane. Faces
// live in an arena addressed by stable integer handles, and neighbor links
// are handles rather than triangle values, so relinking during insertion is
// array writes with no rehashing.
//
// A Mesh is not safe for concurrent use: Insert requires exclusive access,
// and the export methods, while read-only and safe with each other, must not
// overlap an in-flight Insert. Independent triangulations want independent
// Mesh values.
type Mesh struct {
	points []Point
	arena  []record
	free   []int32
	live   int

	maxRSquared    float64
	robustInCircle bool
}

// NewMesh builds an empty triangulation whose bounding square is centered at
// center and extends radius in each direction. Every point later given to
// Insert must fall inside that square; the guarantee is the caller's, and
// breaking it surfaces as ErrOutOfBounds from Insert. The four corners become
// sentinel points 0..3, and the square is split along a diagonal into the two
// seed faces, each the other's sole neighbor.
func NewMesh(center Point, radius float64, opts ...Option) *Mesh {
	m := &Mesh{
		points: []Point{
			{center.X - radius, center.Y - radius},
			{center.X + radius, center.Y - radius},
			{center.X + radius, center.Y + radius},
			{center.X - radius, center.Y + radius},
		},
		// Legitimate slivers against the bounding square can carry very large
		// circumcircles, so the degeneracy cutoff is deliberately loose; it
		// only has to catch the truly collinear cases before they go NaN.
		maxRSquared: (radius * 1e7) * (radius * 1e7),
	}
	for _, opt := range opts {
		opt(m)
	}

	seed1 := Triangle{0, 1, 3}
	seed2 := Triangle{2, 3, 1}
	c1, r1 := circumcircle(m.points[0], m.points[1], m.points[3])
	c2, r2 := circumcircle(m.points[2], m.points[3], m.points[1])
	h1 := m.alloc(seed1, c1, r1)
	h2 := m.alloc(seed2, c2, r2)
	m.arena[h1].adj[0] = h2
	m.arena[h2].adj[0] = h1
	return m
}

// alloc places a face in the arena, reusing a dead slot when one is free.
func (m *Mesh) alloc(t Triangle, center Point, rSquared float64) int32 {
	rec := record{
		tri:      t,
		adj:      [3]int32{none, none, none},
		center:   center,
		rSquared: rSquared,
		alive:    true,
	}
	m.live++
	if n := len(m.free); n > 0 {
		h := m.free[n-1]
		m.free = m.free[:n-1]
		m.arena[h] = rec
		return h
	}
	m.arena = append(m.arena, rec)
	return int32(len(m.arena) - 1)
}

func (m *Mesh) release(h int32) {
	m.arena[h].alive = false
	m.free = append(m.free, h)
	m.live--
}

// isSentinel reports whether point index i is one of the bounding-square
// corners. This is the single place that knows how the sentinels are laid
// out; everything else asks instead of comparing against a magic threshold.
func (m *Mesh) isSentinel(i int) bool {
	return i < sentinelCount
}

// isBoundingTriangle reports whether any vertex of t is a sentinel. Such
// faces are real in the mesh but invisible outside it.
func (m *Mesh) isBoundingTriangle(t Triangle) bool {
	return m.isSentinel(t.A) || m.isSentinel(t.B) || m.isSentinel(t.C)
}

// lookup finds the live handle for an internal-indexed triangle value, or
// none. Linear over the arena, same as bad-triangle discovery; the mesh
// deliberately carries no value index or spatial acceleration.
func (m *Mesh) lookup(t Triangle) int32 {
	for h := range m.arena {
		if m.arena[h].alive && m.arena[h].tri == t {
			return int32(h)
		}
	}
	return none
}

// ExportTriangles returns every face whose three vertices are all inserted
// points, re-indexed to external indices and sorted by index triple. The
// result is a snapshot; mutating it does not touch the mesh.
func (m *Mesh) ExportTriangles() []Triangle {
	out := []Triangle{}
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive || m.isBoundingTriangle(rec.tri) {
			continue
		}
		out = append(out, rec.tri.shift(-sentinelCount))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ExportPoints returns the inserted points in insertion order, without the
// sentinel corners.
func (m *Mesh) ExportPoints() []Point {
	out := make([]Point, len(m.points)-sentinelCount)
	copy(out, m.points[sentinelCount:])
	return out
}

// Adjacent returns the neighbor record for an exported triangle: slot k holds
// the neighbor across the edge opposite vertex k, nil where that neighbor is
// a bounding-square face or the mesh edge. The second return is false when
// the triangle is not in the mesh; absence is an expected outcome, not an
// error.
func (m *Mesh) Adjacent(t Triangle) (Neighbours, bool) {
	h := m.lookup(t.shift(sentinelCount))
	if h == none {
		return Neighbours{}, false
	}
	var out Neighbours
	for k, nh := range m.arena[h].adj {
		if nh == none {
			continue
		}
		nt := m.arena[nh].tri
		if m.isBoundingTriangle(nt) {
			continue
		}
		ext := nt.shift(-sentinelCount)
		out[k] = &ext
	}
	return out, true
}
