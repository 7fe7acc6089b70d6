package mapgen

import "github.com/jaynus/delaunay2d/delaunay"

// IslandSettings shape the height falloff from the island center.
type IslandSettings struct {
	// Height is assigned to the center cell.
	Height float64

	// Radius is the per-ring decay factor; spreading stops once the decayed
	// height drops below a floor.
	Radius float64

	// Sharpness jitters each spread step so coastlines don't come out as
	// perfect circles. Zero disables the jitter.
	Sharpness float64
}

func DefaultIslandSettings() IslandSettings {
	return IslandSettings{
		Height:    1.0,
		Radius:    0.95,
		Sharpness: 0.2,
	}
}

// CreateIsland raises an island out of the cell graph. The cell closest to
// the world center gets the full height, and height spreads breadth-first
// across neighbor links, decaying by Radius per ring and jittered by
// Sharpness per step. Heights accumulate where spread fronts meet and clamp
// to 1.
func (g *Generator) CreateIsland(s Settings, is IslandSettings, cells []Cell) {
	if len(cells) == 0 {
		return
	}
	target := delaunay.Point{X: s.WorldPixels / 2, Y: s.WorldPixels / 2}
	center := 0
	for i := range cells {
		if cells[i].Site.Sub(target).Mag() < cells[center].Site.Sub(target).Mag() {
			center = i
		}
	}

	height := is.Height
	cells[center].Height = height
	queue := []int{center}
	used := make([]bool, len(cells))
	used[center] = true

	for i := 0; i < len(queue) && height > 0.01; i++ {
		height = cells[queue[i]].Height * is.Radius
		for _, n := range cells[queue[i]].Neighbors {
			if used[n] {
				continue
			}
			used[n] = true

			modifier := 1.0
			if is.Sharpness != 0 {
				modifier = g.rng.Float64()*is.Sharpness + 1.1 - is.Sharpness
			}
			h := cells[n].Height + height*modifier
			if h > 1 {
				h = 1
			}
			cells[n].Height = h
			queue = append(queue, n)
		}
	}
}
