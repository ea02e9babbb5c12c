package advanced

// Whether p lies in the non-negative quadrant and satisfies every constraint,
// each within the given slack. The checks are written so that a NaN anywhere
// fails them.
func Feasible(p Point, constraints []Constraint, slack float64) bool {
	if !(p.X >= -slack) || !(p.Y >= -slack) {
		return false
	}
	for _, c := range constraints {
		if !(c.Eval(p) <= c.C+slack) {
			return false
		}
	}
	return true
}

// Keep the feasible points, preserving order.
func FilterFeasible(points []Point, constraints []Constraint, slack float64) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if Feasible(p, constraints, slack) {
			result = append(result, p)
		}
	}
	return result
}

// Drop every point that is NearlyEqual to one already kept. The first point
// of a cluster is the one that survives. This is quadratic, but the candidate
// count is only quadratic in the constraint count to begin with.
func Dedupe(points []Point, eps float64) []Point {
	unique := make([]Point, 0, len(points))
outer:
	for _, p := range points {
		for _, q := range unique {
			if NearlyEqual(p, q, eps) {
				continue outer
			}
		}
		unique = append(unique, p)
	}
	return unique
}
