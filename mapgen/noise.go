package mapgen

import (
	"math"
	"math/rand"

	"github.com/jaynus/delaunay2d/delaunay"
)

// Gradient noise for the moisture field: random unit gradients on an integer
// lattice, dot products against the corner offsets, smoothstep interpolation.

type noiseField struct {
	gradients [][]delaunay.Point
	cellSize  float64
}

// newNoiseField builds a (cells+1)x(cells+1) gradient lattice spanning a
// world of the given size.
func newNoiseField(rng *rand.Rand, worldSize float64, cells int) *noiseField {
	gradients := make([][]delaunay.Point, cells+1)
	for i := range gradients {
		gradients[i] = make([]delaunay.Point, cells+1)
		for j := range gradients[i] {
			angle := rng.Float64() * 2 * math.Pi
			gradients[i][j] = delaunay.Point{X: math.Cos(angle), Y: math.Sin(angle)}
		}
	}
	return &noiseField{
		gradients: gradients,
		cellSize:  worldSize / float64(cells),
	}
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// at samples the field, roughly in [-1, 1].
func (n *noiseField) at(x, y float64) float64 {
	gx := x / n.cellSize
	gy := y / n.cellSize
	i := int(math.Floor(gx))
	j := int(math.Floor(gy))
	max := len(n.gradients) - 2
	if i < 0 {
		i = 0
	}
	if i > max {
		i = max
	}
	if j < 0 {
		j = 0
	}
	if j > max {
		j = max
	}
	fx := gx - float64(i)
	fy := gy - float64(j)

	dot := func(di, dj int) float64 {
		g := n.gradients[i+di][j+dj]
		return g.X*(fx-float64(di)) + g.Y*(fy-float64(dj))
	}

	u := smoothstep(fx)
	v := smoothstep(fy)
	bottom := dot(0, 0) + u*(dot(1, 0)-dot(0, 0))
	top := dot(0, 1) + u*(dot(1, 1)-dot(0, 1))
	return bottom + v*(top-bottom)
}

// moistureCells is the lattice resolution for MoistureMap. Coarse on purpose:
// moisture should vary over regions, not per cell.
const moistureCells = 8

// MoistureMap assigns each cell a moisture value in [0, 1] sampled from a
// gradient-noise field seeded by the generator.
func (g *Generator) MoistureMap(s Settings, cells []Cell) {
	field := newNoiseField(g.rng, s.WorldPixels, moistureCells)
	for i := range cells {
		m := field.at(cells[i].Site.X, cells[i].Site.Y)/2 + 0.5
		if m < 0 {
			m = 0
		}
		if m > 1 {
			m = 1
		}
		cells[i].Moisture = m
	}
}
