package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property assertions shared by the insertion and fixture tests. They check
// the whole mesh, sentinel faces included, against the invariants every
// successful insertion must preserve.

// assertDelaunay checks that no point lies strictly inside any live face's
// circumcircle. Points on the circle (the face's own vertices, cocircular
// sets) are allowed; "inside" is measured with a relative tolerance so float
// noise at the circle edge doesn't fail the build.
func assertDelaunay(t *testing.T, m *Mesh) {
	t.Helper()
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive {
			continue
		}
		slack := rec.rSquared * 1e-9
		for i, p := range m.points {
			if i == rec.tri.A || i == rec.tri.B || i == rec.tri.C {
				continue
			}
			d := rec.center.Sub(p).Mag()
			if d < rec.rSquared-slack {
				t.Fatalf("point %d is inside the circumcircle of %v\n%s",
					i, rec.tri, m.DebugString())
			}
		}
	}
}

// assertNeighbourSymmetry checks that every neighbor link is mutual and that
// linked faces actually share the edge the link claims.
func assertNeighbourSymmetry(t *testing.T, m *Mesh) {
	t.Helper()
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive {
			continue
		}
		for k, nh := range rec.adj {
			if nh == none {
				continue
			}
			other := &m.arena[nh]
			require.True(t, other.alive,
				"face %v links to dead face %v", rec.tri, other.tri)

			e0 := rec.tri.Vertex(nextEdge(k))
			e1 := rec.tri.Vertex(prevEdge(k))
			assert.True(t, other.tri.HasEdge(e0, e1),
				"face %v links to %v across edge (%d, %d), which %v does not have",
				rec.tri, other.tri, e0, e1, other.tri)

			back := false
			for _, bh := range other.adj {
				if bh == int32(h) {
					back = true
				}
			}
			assert.True(t, back, "face %v does not link back to %v\n%s",
				other.tri, rec.tri, m.DebugString())
		}
	}
}

// assertEulerCount checks the live face count against the Euler relation for
// a triangulation of the full point set. With every inserted point strictly
// inside the bounding square, the hull is the square's 4 corners, which gives
// 2n - 2 - 4 faces for n total points.
func assertEulerCount(t *testing.T, m *Mesh) {
	t.Helper()
	assert.Equal(t, 2*len(m.points)-6, m.live, "live face count off Euler relation")
}

func assertInvariants(t *testing.T, m *Mesh) {
	t.Helper()
	assertDelaunay(t, m)
	assertNeighbourSymmetry(t, m)
	assertEulerCount(t, m)
}
