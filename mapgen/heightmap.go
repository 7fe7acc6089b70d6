package mapgen

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// SaveHeightmap rasterizes the cell polygons to a grayscale PNG, each region
// filled with its cell's height. Cells whose regions reach past the world
// square get clipped by the image bounds, which is what we want at the map
// edge.
func SaveHeightmap(s Settings, cells []Cell, path string) error {
	size := int(s.WorldPixels)
	if size <= 0 {
		return errors.Errorf("world size %g is not drawable", s.WorldPixels)
	}
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.Clear()

	for i := range cells {
		cell := &cells[i]
		if len(cell.Polygon) == 0 {
			continue
		}
		c.MoveTo(cell.Polygon[0].X, cell.Polygon[0].Y)
		for _, p := range cell.Polygon[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(cell.Height, cell.Height, cell.Height)
		c.Fill()
	}

	return errors.WithMessage(c.SavePNG(path), "saving heightmap")
}
