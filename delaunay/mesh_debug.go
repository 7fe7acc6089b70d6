package delaunay

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/jaynus/delaunay2d/dbg"
)

// Debug helpers. Nothing here is needed for triangulation; it exists so a
// suspect mesh can be looked at.

const dbgDrawPadding = 20

// DebugString dumps every live face with a readable name, its vertex triple,
// and the names in its neighbor slots. Faces touching the bounding square
// print cyan, interior faces green, so a boundary link showing up where an
// interior one should be jumps out.
func (m *Mesh) DebugString() string {
	var sb strings.Builder
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive {
			continue
		}
		name := dbg.Name(h)
		if m.isBoundingTriangle(rec.tri) {
			name = aurora.Cyan(name).String()
		} else {
			name = aurora.Green(name).String()
		}
		links := [3]string{"Ø", "Ø", "Ø"}
		for k, nh := range rec.adj {
			if nh != none {
				links[k] = dbg.Name(int(nh))
			}
		}
		fmt.Fprintf(&sb, "%s %v [%s %s %s]\n", name, rec.tri, links[0], links[1], links[2])
	}
	return sb.String()
}

// DebugDraw renders the triangulation with its Voronoi edges overlaid to a
// PNG, and optionally cats it to the terminal. The frame is fit to the
// inserted points; Voronoi edges wandering off toward the bounding square are
// clipped out rather than letting them crush the scale.
func (m *Mesh) DebugDraw(path string, scale float64, cat bool) error {
	pts := m.ExportPoints()
	if len(pts) == 0 {
		return errors.New("nothing to draw")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	inFrame := func(p Point) bool {
		margin := (maxX - minX + maxY - minY) / 4
		return p.X >= minX-margin && p.X <= maxX+margin &&
			p.Y >= minY-margin && p.Y <= maxY+margin
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0, 0.5, 0)
	for _, t := range m.ExportTriangles() {
		a, b, cc := pts[t.A], pts[t.B], pts[t.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.Stroke()

	verts, regions, err := m.ExportVoronoiRegions()
	if err != nil {
		return err
	}
	c.SetRGB(0, 1, 1)
	for _, region := range regions {
		for i := range region {
			a := verts[region[i]]
			b := verts[region[(i+1)%len(region)]]
			if inFrame(a) && inFrame(b) {
				c.DrawLine(a.X, a.Y, b.X, b.Y)
			}
		}
	}
	c.Stroke()

	c.SetRGB(1, 0, 0)
	for _, p := range pts {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		return errors.WithMessage(err, "saving debug image")
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
