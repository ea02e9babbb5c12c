package advanced

import "math"

// All of the numeric slack used by the solver. Floats lose precision in the
// divisions of Cramer's rule, so every comparison against a boundary goes
// through one of these margins.
type Tolerance struct {
	// Below this magnitude a determinant or coefficient counts as zero, so two
	// lines are parallel or a line never meets an axis.
	Parallel float64
	// How far a point may sit outside a constraint (or below an axis) and
	// still be feasible.
	Slack float64
	// Two vertices closer than this on both axes are the same vertex.
	Merge float64
}

var DefaultTolerance = Tolerance{
	Parallel: 1e-12,
	Slack:    1e-9,
	Merge:    1e-7,
}

// Fill in any unset margins from DefaultTolerance.
func (t Tolerance) withDefaults() Tolerance {
	if t.Parallel <= 0 {
		t.Parallel = DefaultTolerance.Parallel
	}
	if t.Slack <= 0 {
		t.Slack = DefaultTolerance.Slack
	}
	if t.Merge <= 0 {
		t.Merge = DefaultTolerance.Merge
	}
	return t
}

func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Points are compared per axis rather than by Euclidean distance: a and b are
// the same point if both their X and Y values are within eps.
func NearlyEqual(a, b Point, eps float64) bool {
	return Equal(a.X, b.X, eps) && Equal(a.Y, b.Y, eps)
}

func isZero(v, eps float64) bool {
	return math.Abs(v) < eps
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Turn negative zeros (from 0/-b and the like) into plain zeros.
func (p Point) normalized() Point {
	return Point{X: p.X + 0, Y: p.Y + 0}
}
