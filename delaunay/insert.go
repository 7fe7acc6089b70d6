package delaunay

import "github.com/pkg/errors"

// boundaryEdge is one edge of the cavity polygon left by removing the bad
// faces: the edge endpoints in counterclockwise order, and the surviving face
// on the far side (none at the mesh edge).
type boundaryEdge struct {
	e0, e1  int
	outside int32
}

// Insert adds p to the triangulation and restores the Delaunay property:
// afterwards no point lies strictly inside any live face's circumcircle.
//
// The whole step is staged. Bad-face discovery and the cavity walk are
// read-only; the new faces, their circumcircles, and the neighbor slots to
// rewrite are all computed and validated before the first mutation, so on any
// returned error the mesh is exactly as it was. Errors are tagged:
// IsOutOfBounds for a point the bounding square does not cover, IsDegenerate
// for duplicate or collinear input, IsConsistency for internal corruption.
func (m *Mesh) Insert(p Point) (err error) {
	defer func() { recoverMeshError(recover(), &err) }()

	idx := len(m.points)

	// Every face whose circumcircle contains p has to go. Full scan over the
	// arena; the mesh carries no spatial index.
	bad := map[int32]bool{}
	first := none
	for h := range m.arena {
		if m.arena[h].alive && m.inCircle(int32(h), p) {
			bad[int32(h)] = true
			if first == none {
				first = int32(h)
			}
		}
	}
	if first == none {
		return errors.WithMessagef(ErrOutOfBounds, "(%g, %g)", p.X, p.Y)
	}

	// An exact duplicate of an existing point sits on every circumcircle
	// around that point, and retriangulating would silently orphan the old
	// vertex. Catch it while nothing has been touched. Only bad faces can
	// contain the duplicate, so the scan stays small.
	for h := range bad {
		t := m.arena[h].tri
		for _, v := range [3]int{t.A, t.B, t.C} {
			if m.points[v] == p {
				return errors.WithMessagef(ErrDegenerate, "duplicate of point %d", v)
			}
		}
	}

	boundary := m.walkCavity(first, bad)

	// Stage every new face before touching the arena. Each boundary edge
	// (e0, e1) becomes the face (idx, e0, e1); its circumcircle must be sane,
	// and if there is a surviving face outside the edge, the slot of that
	// face to rewrite is resolved now, while it still can fail safely.
	type staged struct {
		tri      Triangle
		center   Point
		rSquared float64
		outside  int32
		outSlot  int
	}
	newFaces := make([]staged, len(boundary))
	for i, be := range boundary {
		center, rsq := circumcircle(p, m.points[be.e0], m.points[be.e1])
		if degenerateCircle(center, rsq, m.maxRSquared) {
			return errors.WithMessagef(ErrDegenerate,
				"collinear with points %d and %d", be.e0, be.e1)
		}
		outSlot := -1
		if be.outside != none {
			outSlot = m.edgeSlotOf(be.outside, be.e0, be.e1)
		}
		newFaces[i] = staged{
			tri:      Triangle{idx, be.e0, be.e1},
			center:   center,
			rSquared: rsq,
			outside:  be.outside,
			outSlot:  outSlot,
		}
	}

	// Commit. Nothing below can fail.
	m.points = append(m.points, p)
	for h := range bad {
		m.release(h)
	}
	handles := make([]int32, len(newFaces))
	for i, nf := range newFaces {
		h := m.alloc(nf.tri, nf.center, nf.rSquared)
		handles[i] = h
		m.arena[h].adj[0] = nf.outside
		if nf.outside != none {
			m.arena[nf.outside].adj[nf.outSlot] = h
		}
	}

	// The new faces fan around idx in boundary order; each one's remaining
	// two neighbors are its successor and predecessor in that cycle.
	n := len(handles)
	for i, h := range handles {
		m.arena[h].adj[1] = handles[(i+1)%n]
		m.arena[h].adj[2] = handles[(i+n-1)%n]
	}
	return nil
}

// inCircle reports whether p lies inside or on the circumcircle of face h.
// "Or on" is deliberate: a point exactly on the circle forces a
// retriangulation instead of a silent tangency. The default path is the fast
// cached comparison; the robust option re-derives the answer from the
// vertices with the determinant form, positive for a point inside the circle
// through a counterclockwise triple.
func (m *Mesh) inCircle(h int32, p Point) bool {
	rec := &m.arena[h]
	if !m.robustInCircle {
		return rec.center.Sub(p).Mag() <= rec.rSquared
	}
	a := m.points[rec.tri.A].Sub(p)
	b := m.points[rec.tri.B].Sub(p)
	c := m.points[rec.tri.C].Sub(p)
	det := a.X*(b.Y*c.Mag()-b.Mag()*c.Y) +
		a.Y*(b.Mag()*c.X-c.Mag()*b.X) +
		a.Mag()*(b.X*c.Y-c.X*b.Y)
	return det >= 0
}

// walkCavity walks the rim of the bad-face set counterclockwise and returns
// its boundary edges in cycle order. Starting from an arbitrary bad face: if
// the far side of the current edge is not bad, that edge is on the rim —
// record it and advance to the face's next CCW edge; otherwise hop into the
// bad neighbor and resume from the edge after the shared one. The cycle
// closes when the newest edge ends where the first began.
//
// A healthy cavity touches each edge a bounded number of times, so the loop
// carries a hard step budget; running past it means the mesh or the input is
// broken, and that is reported rather than spun on.
func (m *Mesh) walkCavity(start int32, bad map[int32]bool) []boundaryEdge {
	var boundary []boundaryEdge
	h := start
	edge := 0
	for steps := 9*len(bad) + 9; ; steps-- {
		if steps <= 0 {
			throw(ErrConsistency,
				"cavity walk did not close over %d bad triangles", len(bad))
		}
		op := m.arena[h].adj[edge]
		if op == none || !bad[op] {
			t := m.arena[h].tri
			boundary = append(boundary, boundaryEdge{
				e0:      t.Vertex(nextEdge(edge)),
				e1:      t.Vertex(prevEdge(edge)),
				outside: op,
			})
			edge = nextEdge(edge)
			if boundary[0].e0 == boundary[len(boundary)-1].e1 {
				return boundary
			}
		} else {
			// The shared-edge slot of the neighbor tells us where we came in.
			edge = nextEdge(m.slotOf(op, h))
			h = op
		}
	}
}

// slotOf finds which neighbor slot of face h holds target.
func (m *Mesh) slotOf(h, target int32) int {
	for k, nh := range m.arena[h].adj {
		if nh == target {
			return k
		}
	}
	throw(ErrConsistency, "face %v does not neighbor %v",
		m.arena[h].tri, m.arena[target].tri)
	return 0
}

// edgeSlotOf finds the neighbor slot of face h facing edge (e0, e1): the slot
// of the one vertex on neither end of the edge. Matching is by shared edge,
// not by neighbor identity, because the face currently linked through that
// slot is a bad face about to be removed.
func (m *Mesh) edgeSlotOf(h int32, e0, e1 int) int {
	t := m.arena[h].tri
	if !t.HasEdge(e0, e1) {
		throw(ErrConsistency, "face %v does not border edge (%d, %d)", t, e0, e1)
	}
	for k := 0; k < 3; k++ {
		if v := t.Vertex(k); v != e0 && v != e1 {
			return k
		}
	}
	throw(ErrConsistency, "edge (%d, %d) spans all of face %v", e0, e1, t)
	return 0
}
