// Package mapgen turns the triangulator into world maps: relaxed Voronoi
// cell graphs, island heightfields, moisture, and rasterized heightmaps.
package mapgen

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/jaynus/delaunay2d/delaunay"
)

// Settings control sampling and world size.
type Settings struct {
	// NumPoints is how many sites to sample.
	NumPoints int

	// NumLloyd is how many Lloyd relaxation rounds to run over the samples.
	NumLloyd int

	// WorldPixels is the side length of the square world.
	WorldPixels float64
}

// DefaultSettings are tuned for a medium world.
func DefaultSettings() Settings {
	return Settings{
		NumPoints:   6000,
		NumLloyd:    2,
		WorldPixels: 500,
	}
}

// Cell is one Voronoi site with its region polygon and graph links.
type Cell struct {
	Site    delaunay.Point
	Polygon []delaunay.Point

	// Neighbors indexes the cells sharing a Delaunay triangle with this one.
	Neighbors []int

	Height   float64
	Moisture float64
}

// Generator produces worlds from a seeded random source: the same source
// state gives the same world.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) samplePoint(s Settings) delaunay.Point {
	return delaunay.Point{
		X: g.rng.Float64() * s.WorldPixels,
		Y: g.rng.Float64() * s.WorldPixels,
	}
}

// RelaxedSites samples NumPoints uniform sites and runs NumLloyd rounds of
// Lloyd relaxation: each round triangulates the sites, replaces every site
// with the centroid of its Voronoi region, and carries the result into the
// next round. Relaxation pushes clustered samples apart, toward the evenly
// spread distribution map generation wants.
func (g *Generator) RelaxedSites(s Settings) ([]delaunay.Point, error) {
	sites := make([]delaunay.Point, 0, s.NumPoints)
	for i := 0; i < s.NumPoints; i++ {
		sites = append(sites, g.samplePoint(s))
	}
	for i := 0; i < s.NumLloyd; i++ {
		relaxed, err := relax(s, sites)
		if err != nil {
			return nil, errors.WithMessagef(err, "lloyd round %d", i)
		}
		sites = relaxed
	}
	return sites, nil
}

func relax(s Settings, sites []delaunay.Point) ([]delaunay.Point, error) {
	m, err := triangulate(s, sites)
	if err != nil {
		return nil, err
	}
	verts, regions, err := m.ExportVoronoiRegions()
	if err != nil {
		return nil, err
	}
	pts := m.ExportPoints()
	out := make([]delaunay.Point, 0, len(pts))
	for i, p := range pts {
		region := regions[i]
		if len(region) == 0 {
			out = append(out, p)
			continue
		}
		var cx, cy float64
		for _, vi := range region {
			cx += verts[vi].X
			cy += verts[vi].Y
		}
		n := float64(len(region))
		out = append(out, clampToWorld(delaunay.Point{X: cx / n, Y: cy / n}, s))
	}
	return out, nil
}

// clampToWorld pins a relaxed site back into the world square. Cells on the
// hull have region vertices out past the world edge (circumcenters of faces
// that lean on the bounding square), which drags their centroids outward.
func clampToWorld(p delaunay.Point, s Settings) delaunay.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > s.WorldPixels {
		p.X = s.WorldPixels
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > s.WorldPixels {
		p.Y = s.WorldPixels
	}
	return p
}

// triangulate builds a mesh over the world square and inserts every site.
// Degenerate sites (duplicates produced by clamping, for instance) are
// skipped; anything else is a real failure.
func triangulate(s Settings, sites []delaunay.Point) (*delaunay.Mesh, error) {
	half := s.WorldPixels / 2
	m := delaunay.NewMesh(delaunay.Point{X: half, Y: half}, s.WorldPixels)
	for _, p := range sites {
		if err := m.Insert(p); err != nil {
			if delaunay.IsDegenerate(err) {
				continue
			}
			return nil, errors.WithMessage(err, "inserting site")
		}
	}
	return m, nil
}

// GenerateCells builds the Voronoi cell graph for a relaxed site set: one
// cell per surviving site carrying its region polygon and the sites it shares
// a Delaunay triangle with. Heights and moisture start at zero; CreateIsland
// and MoistureMap fill them in.
func (g *Generator) GenerateCells(s Settings) ([]Cell, error) {
	sites, err := g.RelaxedSites(s)
	if err != nil {
		return nil, err
	}
	m, err := triangulate(s, sites)
	if err != nil {
		return nil, err
	}
	verts, regions, err := m.ExportVoronoiRegions()
	if err != nil {
		return nil, err
	}
	pts := m.ExportPoints()
	tris := m.ExportTriangles()

	neighbors := make([]map[int]bool, len(pts))
	for i := range neighbors {
		neighbors[i] = map[int]bool{}
	}
	for _, t := range tris {
		for _, e := range [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			neighbors[e[0]][e[1]] = true
			neighbors[e[1]][e[0]] = true
		}
	}

	cells := make([]Cell, len(pts))
	for i, p := range pts {
		poly := make([]delaunay.Point, 0, len(regions[i]))
		for _, vi := range regions[i] {
			poly = append(poly, verts[vi])
		}
		ns := make([]int, 0, len(neighbors[i]))
		for n := range neighbors[i] {
			ns = append(ns, n)
		}
		sort.Ints(ns)
		cells[i] = Cell{Site: p, Polygon: poly, Neighbors: ns}
	}
	return cells, nil
}
