package advanced

// For two variables, every corner of the feasible polygon is where two of its
// bounding lines cross. The bounding lines are the constraints taken as
// equalities, plus the two axes from non-negativity. So the candidates are:
// every pair of constraint lines, every constraint line against each axis, and
// the two axes against each other (the origin).

// Intersect the lines a1*x + b1*y = c1 and a2*x + b2*y = c2 by Cramer's rule.
// Parallel (or identical) lines have no single intersection, so ok is false.
// So do lines whose coefficients are large enough that the products overflow;
// the intersection would come out NaN or infinite.
func Intersect(l1, l2 Constraint, eps float64) (p Point, ok bool) {
	d := l1.A*l2.B - l2.A*l1.B
	if isZero(d, eps) {
		return Point{}, false
	}
	p = Point{
		X: (l1.C*l2.B - l2.C*l1.B) / d,
		Y: (l1.A*l2.C - l2.A*l1.C) / d,
	}
	if !p.finite() {
		return Point{}, false
	}
	return p.normalized(), true
}

// Where the constraint line meets the y axis and then the x axis, skipping
// intercepts on the negative half of an axis and lines parallel to an axis.
func AxisIntercepts(c Constraint, eps float64) []Point {
	var points []Point
	// x = 0 -> b*y = c
	if !isZero(c.B, eps) {
		if y := c.C / c.B; y >= 0 && isFinite(y) {
			points = append(points, Point{X: 0, Y: y}.normalized())
		}
	}
	// y = 0 -> a*x = c
	if !isZero(c.A, eps) {
		if x := c.C / c.A; x >= 0 && isFinite(x) {
			points = append(points, Point{X: x, Y: 0}.normalized())
		}
	}
	return points
}

// Collect every candidate vertex, with no feasibility check. The order is
// fixed: pairwise intersections in input order, then axis intercepts, then the
// origin (unless excluded). Ties between optima are broken by this order.
func Candidates(constraints []Constraint, tol Tolerance, includeOrigin bool) []Point {
	n := len(constraints)
	points := make([]Point, 0, n*(n-1)/2+2*n+1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p, ok := Intersect(constraints[i], constraints[j], tol.Parallel); ok {
				points = append(points, p)
			}
		}
	}
	for _, c := range constraints {
		points = append(points, AxisIntercepts(c, tol.Parallel)...)
	}
	if includeOrigin {
		points = append(points, Point{})
	}
	return points
}
