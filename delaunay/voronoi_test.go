package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoronoiRegions(t *testing.T) {
	m := NewMesh(Point{0, 0}, 9999)
	for _, p := range []Point{{13, 12}, {18, 19}, {21, 5}, {37, -3}} {
		require.NoError(t, m.Insert(p))
	}

	vertices, regions, err := m.ExportVoronoiRegions()
	require.NoError(t, err)

	// One Voronoi vertex per live face, one region per inserted point.
	assert.Len(t, vertices, 10)
	assert.Len(t, regions, 4)

	for i, region := range regions {
		assert.NotEmpty(t, region, "region %d", i)
		seen := map[int]bool{}
		for _, vi := range region {
			require.GreaterOrEqual(t, vi, 0)
			require.Less(t, vi, len(vertices))
			assert.False(t, seen[vi], "region %d repeats vertex %d", i, vi)
			seen[vi] = true
		}
	}

	// Every region cycle is the full set of faces incident to its point.
	total := 0
	for _, region := range regions {
		total += len(region)
	}
	incidences := 0
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive {
			continue
		}
		for _, v := range [3]int{rec.tri.A, rec.tri.B, rec.tri.C} {
			if !m.isSentinel(v) {
				incidences++
			}
		}
	}
	assert.Equal(t, incidences, total)
}

// Region cycles come out counterclockwise, so their signed areas are
// positive.
func TestVoronoiRegionOrientation(t *testing.T) {
	m := NewMesh(Point{50, 50}, 200)
	for _, p := range LoadFixture("scatter_24") {
		require.NoError(t, m.Insert(p))
	}
	vertices, regions, err := m.ExportVoronoiRegions()
	require.NoError(t, err)

	for i, region := range regions {
		var area float64
		for j := range region {
			a := vertices[region[j]]
			b := vertices[region[(j+1)%len(region)]]
			area += a.X*b.Y - b.X*a.Y
		}
		assert.Greater(t, area, 0.0, "region %d is not counterclockwise", i)
	}
}

// The single-point fan gives the simplest nontrivial dual: a quadrilateral
// cell around the point, built from the four fan circumcenters.
func TestVoronoiSinglePoint(t *testing.T) {
	m := NewMesh(Point{0, 0}, 9999)
	require.NoError(t, m.Insert(Point{13, 12}))

	vertices, regions, err := m.ExportVoronoiRegions()
	require.NoError(t, err)
	assert.Len(t, vertices, 4)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 4)
}
