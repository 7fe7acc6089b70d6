package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tri is shorthand for expected-neighbor tables.
func tri(a, b, c int) *Triangle {
	return &Triangle{a, b, c}
}

// internalAdjacent reads a face's neighbor slots as triangle values, sentinel
// faces included. Test-only; the exported Adjacent hides the sentinels.
func internalAdjacent(t *testing.T, m *Mesh, target Triangle) [3]*Triangle {
	t.Helper()
	h := m.lookup(target)
	require.NotEqual(t, none, h, "face %v is not in the mesh\n%s", target, m.DebugString())
	var out [3]*Triangle
	for k, nh := range m.arena[h].adj {
		if nh != none {
			nt := m.arena[nh].tri
			out[k] = &nt
		}
	}
	return out
}

func assertNeighbourTable(t *testing.T, m *Mesh, expected map[Triangle][3]*Triangle) {
	t.Helper()
	for target, want := range expected {
		assert.Equal(t, want, internalAdjacent(t, m, target), "neighbours of %v", target)
	}
}

// The first insertion splits the whole bounding square into a fan of four
// faces around the new point, each bounded on the outside and linked to its
// two fan-mates.
func TestInsertFirstPointFan(t *testing.T) {
	m := NewMesh(Point{0, 0}, 9999)
	require.NoError(t, m.Insert(Point{13, 12}))

	assert.Equal(t, 4, m.live)
	assertNeighbourTable(t, m, map[Triangle][3]*Triangle{
		{4, 0, 1}: {nil, tri(4, 1, 2), tri(4, 3, 0)},
		{4, 1, 2}: {nil, tri(4, 2, 3), tri(4, 0, 1)},
		{4, 3, 0}: {nil, tri(4, 0, 1), tri(4, 2, 3)},
		{4, 2, 3}: {nil, tri(4, 3, 0), tri(4, 1, 2)},
	})
	assertInvariants(t, m)
}

func TestInsertSequence(t *testing.T) {
	m := NewMesh(Point{0, 0}, 9999)
	for _, p := range []Point{{13, 12}, {18, 19}, {21, 5}, {37, -3}} {
		require.NoError(t, m.Insert(p))
		assertInvariants(t, m)
	}

	assert.Equal(t, 10, m.live)
	assertNeighbourTable(t, m, map[Triangle][3]*Triangle{
		{5, 2, 3}: {nil, tri(5, 3, 4), tri(7, 2, 5)},
		{7, 1, 2}: {nil, tri(7, 2, 5), tri(7, 0, 1)},
		{6, 4, 0}: {tri(4, 3, 0), tri(7, 6, 0), tri(6, 5, 4)},
		{7, 0, 1}: {nil, tri(7, 1, 2), tri(7, 6, 0)},
		{7, 6, 0}: {tri(6, 4, 0), tri(7, 0, 1), tri(7, 5, 6)},
		{5, 3, 4}: {tri(4, 3, 0), tri(6, 5, 4), tri(5, 2, 3)},
		{6, 5, 4}: {tri(5, 3, 4), tri(6, 4, 0), tri(7, 5, 6)},
		{7, 5, 6}: {tri(6, 5, 4), tri(7, 6, 0), tri(7, 2, 5)},
		{4, 3, 0}: {nil, tri(6, 4, 0), tri(5, 3, 4)},
		{7, 2, 5}: {tri(5, 2, 3), tri(7, 5, 6), tri(7, 1, 2)},
	})
}

func TestInsertOutOfBounds(t *testing.T) {
	m := NewMesh(Point{0, 0}, 100)
	require.NoError(t, m.Insert(Point{1, 1}))

	before := m.ExportTriangles()
	err := m.Insert(Point{5000, 5000})
	require.Error(t, err)
	assert.True(t, IsOutOfBounds(err))

	// The failed insertion must not have touched anything.
	assert.Equal(t, before, m.ExportTriangles())
	assert.Len(t, m.ExportPoints(), 1)
	assertInvariants(t, m)
}

func TestInsertDuplicatePoint(t *testing.T) {
	m := NewMesh(Point{0, 0}, 9999)
	require.NoError(t, m.Insert(Point{13, 12}))
	require.NoError(t, m.Insert(Point{18, 19}))

	before := m.ExportTriangles()
	err := m.Insert(Point{13, 12})
	require.Error(t, err)
	assert.True(t, IsDegenerate(err), "duplicate insert reported as %v", err)

	assert.Equal(t, before, m.ExportTriangles())
	assert.Len(t, m.ExportPoints(), 2)
	assertInvariants(t, m)
}

// A point exactly on an existing edge is not degenerate: both faces flanking
// the edge are bad, the edge dissolves, and the cavity retriangulates into a
// clean fan.
func TestInsertOnEdge(t *testing.T) {
	m := NewMesh(Point{0, 0}, 100)
	require.NoError(t, m.Insert(Point{10, 10}))
	require.NoError(t, m.Insert(Point{20, 20}))
	require.NoError(t, m.Insert(Point{15, 15}))
	assertInvariants(t, m)
	assert.Len(t, m.ExportPoints(), 3)
}

// A mesh with severed neighbor links must report a consistency violation
// instead of walking forever.
func TestInsertCorruptMesh(t *testing.T) {
	m := NewMesh(Point{0, 0}, 100)
	require.NoError(t, m.Insert(Point{10, 10}))
	require.NoError(t, m.Insert(Point{-20, 30}))

	// Point every neighbor slot at the first live face. The cavity walk can
	// no longer find its way back out of any hop.
	var first int32 = none
	for h := range m.arena {
		if m.arena[h].alive {
			first = int32(h)
			break
		}
	}
	require.NotEqual(t, none, first)
	for h := range m.arena {
		if m.arena[h].alive {
			m.arena[h].adj = [3]int32{first, first, first}
		}
	}

	err := m.Insert(Point{5, 5})
	require.Error(t, err)
	assert.True(t, IsConsistency(err), "corrupt mesh reported as %v", err)
}
