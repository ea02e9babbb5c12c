package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into convex polygons, and turns a polygon
// into the constraint set whose feasible region it is. It is not a real svg
// parser: it finds the one polygon element and reads its points. Coordinates
// are taken as-is, y up. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

// Load a fixture polygon, counterclockwise.
func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}

	if SignedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

// One constraint per edge of a counterclockwise convex polygon. The inside is
// to the left of each edge, so for the edge p->q the constraint is
// (q.Y-p.Y)*x - (q.X-p.X)*y <= (q.Y-p.Y)*p.X - (q.X-p.X)*p.Y.
func PolygonConstraints(polygon []Point) []Constraint {
	constraints := make([]Constraint, 0, len(polygon))
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		a := q.Y - p.Y
		b := -(q.X - p.X)
		constraints = append(constraints, Constraint{A: a, B: b, C: a*p.X + b*p.Y})
	}
	return constraints
}
