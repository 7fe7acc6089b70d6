package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/jaynus/delaunay2d"
	"github.com/jaynus/delaunay2d/mapgen"
)

// Demo of the triangulator. Input on stdin should be newline separated points
// in the form "x y"; alternatively --random samples a relaxed point set
// instead. The result can be rendered to a PNG and dumped straight to the
// terminal.
var (
	random = kingpin.Flag("random", "Sample N random points instead of reading stdin.").Int()
	seed   = kingpin.Flag("seed", "Seed string for --random.").Default("delaunay").String()
	world  = kingpin.Flag("world", "World side length for --random sampling.").Default("500").Float64()
	lloyd  = kingpin.Flag("lloyd", "Lloyd relaxation rounds for --random sampling.").Default("2").Int()
	robust = kingpin.Flag("robust", "Use the determinant in-circle predicate.").Bool()
	render = kingpin.Flag("render", "Render the result to this PNG path.").String()
	scale  = kingpin.Flag("scale", "Render scale in pixels per unit.").Default("2").Float64()
	cat    = kingpin.Flag("cat", "Dump the rendered PNG to the terminal.").Bool()
	dump   = kingpin.Flag("dump", "Print the internal mesh state.").Bool()
)

func main() {
	kingpin.Parse()

	var points []delaunay2d.Point
	if *random > 0 {
		gen := mapgen.NewGenerator(rand.New(rand.NewSource(mapgen.SeedFromString(*seed))))
		settings := mapgen.Settings{
			NumPoints:   *random,
			NumLloyd:    *lloyd,
			WorldPixels: *world,
		}
		sites, err := gen.RelaxedSites(settings)
		if err != nil {
			kingpin.Fatalf("sampling points: %v", err)
		}
		points = sites
	} else {
		points = readPoints(os.Stdin)
	}
	if len(points) == 0 {
		kingpin.Fatalf("no input points")
	}

	var opts []delaunay2d.Option
	if *robust {
		opts = append(opts, delaunay2d.WithRobustInCircle())
	}
	center, radius := bounds(points)
	m := delaunay2d.New(center, radius, opts...)

	inserted := 0
	for _, p := range points {
		if err := m.Insert(p); err != nil {
			fmt.Fprintf(os.Stderr, "skipping (%g, %g): %v\n", p.X, p.Y, err)
			continue
		}
		inserted++
	}

	triangles := m.ExportTriangles()
	vertices, regions, err := m.ExportVoronoiRegions()
	if err != nil {
		kingpin.Fatalf("extracting voronoi regions: %v", err)
	}
	fmt.Printf("%d points, %d triangles, %d voronoi vertices, %d regions\n",
		inserted, len(triangles), len(vertices), len(regions))

	if *dump {
		fmt.Print(m.DebugString())
	}
	if *render != "" {
		if err := m.DebugDraw(*render, *scale, *cat); err != nil {
			kingpin.Fatalf("rendering: %v", err)
		}
	}
}

// bounds picks a bounding square comfortably containing every input point.
func bounds(points []delaunay2d.Point) (delaunay2d.Point, float64) {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	center := delaunay2d.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
	radius := (max.X - min.X + max.Y - min.Y + 2)
	return center, radius
}

func readPoints(in *os.File) []delaunay2d.Point {
	points := []delaunay2d.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, delaunay2d.Point{X: x, Y: y})
	}
	return points
}
