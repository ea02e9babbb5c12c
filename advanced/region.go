package advanced

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
)

// Vertices come out of the solver in discovery order, which is useless for
// drawing. The feasible region is convex, so sorting the vertices by angle
// around their centroid walks its boundary counterclockwise.
//
// The input is not modified.
func Region(vertices []Point) []Point {
	ordered := append([]Point(nil), vertices...)
	if len(ordered) < 3 {
		return ordered
	}

	var cx, cy float64
	for _, p := range ordered {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(ordered))
	cy /= float64(len(ordered))

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		angleA := math.Atan2(a.Y-cy, a.X-cx)
		angleB := math.Atan2(b.Y-cy, b.X-cx)
		if angleA != angleB {
			return angleA < angleB
		}
		return math.Hypot(a.X-cx, a.Y-cy) < math.Hypot(b.X-cx, b.Y-cy)
	})
	return ordered
}

// Shoelace area of a polygon given in order. Counterclockwise polygons have a
// positive area.
func SignedArea(polygon []Point) float64 {
	var area float64
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (r *Result) String() string {
	return r.Summary(false)
}

// One line description of the result, optionally with the status colored for
// a terminal.
func (r *Result) Summary(colored bool) string {
	status := string(r.Status)
	if colored {
		if r.IsOptimal() {
			status = aurora.Green(status).String()
		} else {
			status = aurora.Red(status).String()
		}
	}
	if !r.IsOptimal() {
		return fmt.Sprintf("%s: no feasible vertex", status)
	}
	return fmt.Sprintf("%s: %d vertices, min %g at %v, max %g at %v",
		status,
		len(r.Vertices),
		r.Min.Value, r.Min.Point,
		r.Max.Value, r.Max.Point,
	)
}
