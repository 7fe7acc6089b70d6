package delaunay2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestMesh(t *testing.T) {
	m := New(Point{X: 0, Y: 0}, 9999)
	points := []Point{
		{X: 13, Y: 12},
		{X: 18, Y: 19},
		{X: 21, Y: 5},
		{X: 37, Y: -3},
	}
	for _, p := range points {
		require.NoError(t, m.Insert(p))
	}

	triangles := m.ExportTriangles()
	assert.Equal(t, []Triangle{{A: 2, B: 1, C: 0}, {A: 3, B: 1, C: 2}}, triangles)
	assert.Equal(t, points, m.ExportPoints())

	vertices, regions, err := m.ExportVoronoiRegions()
	require.NoError(t, err)
	assert.Len(t, vertices, 10)
	assert.Len(t, regions, 4)
}

func TestMeshErrors(t *testing.T) {
	m := New(Point{X: 0, Y: 0}, 100)
	require.NoError(t, m.Insert(Point{X: 1, Y: 1}))

	err := m.Insert(Point{X: 1, Y: 1})
	require.Error(t, err)
	assert.True(t, IsDegenerate(err))
	assert.False(t, IsOutOfBounds(err))

	err = m.Insert(Point{X: 5000, Y: 5000})
	require.Error(t, err)
	assert.True(t, IsOutOfBounds(err))
	assert.False(t, IsConsistency(err))
}
