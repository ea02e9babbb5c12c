package advanced

type Options struct {
	// Zero fields fall back to DefaultTolerance.
	Tolerance Tolerance
	// Do not test the origin as a candidate. The origin is still found if some
	// constraint's axis intercept happens to land on it. This reproduces the
	// older candidate set, which misses the origin corner of a region like
	// x + y <= 4.
	ExcludeOrigin bool
}

func Solve(constraints []Constraint, objective Objective) *Result {
	return SolveWithOptions(constraints, objective, Options{})
}

// Enumerate the candidate vertices, keep the feasible ones, merge near
// duplicates and pick the vertices minimizing and maximizing the objective.
//
// There is no direction analysis, so an objective that is unbounded over the
// feasible region still gets a finite "optimum": the best of the enumerated
// vertices.
func SolveWithOptions(constraints []Constraint, objective Objective, opts Options) *Result {
	tol := opts.Tolerance.withDefaults()

	candidates := Candidates(constraints, tol, !opts.ExcludeOrigin)
	vertices := Dedupe(FilterFeasible(candidates, constraints, tol.Slack), tol.Merge)

	if len(vertices) == 0 {
		return &Result{Status: StatusInfeasible, Vertices: []Point{}}
	}

	lo, hi := Optimize(vertices, objective)
	return &Result{
		Status:   StatusOptimal,
		Vertices: vertices,
		Min:      lo,
		Max:      hi,
	}
}

// Find the vertices with the lowest and highest objective value. Comparisons
// are strict, so the earliest vertex wins a tie. Both results are nil for an
// empty vertex list.
func Optimize(vertices []Point, objective Objective) (lo, hi *Optimum) {
	for _, v := range vertices {
		z := objective.Value(v)
		if lo == nil || z < lo.Value {
			lo = &Optimum{Point: v, Value: z}
		}
		if hi == nil || z > hi.Value {
			hi = &Optimum{Point: v, Value: z}
		}
	}
	return lo, hi
}
