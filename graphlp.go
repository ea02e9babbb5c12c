// Two-variable linear programming by vertex enumeration.
//
// A problem is a set of constraints of the form a*x + b*y <= c over the
// non-negative quadrant, and a linear objective p*x + q*y. Solve finds every
// corner of the feasible region and the corners minimizing and maximizing the
// objective. For finer control over the individual steps, see the advanced
// package.
package graphlp

import "github.com/osuushi/graphlp/advanced"

type Point = advanced.Point
type Constraint = advanced.Constraint
type Objective = advanced.Objective
type Result = advanced.Result
type Optimum = advanced.Optimum
type Options = advanced.Options
type Sense = advanced.Sense

const (
	Minimize = advanced.Minimize
	Maximize = advanced.Maximize

	StatusOptimal    = advanced.StatusOptimal
	StatusInfeasible = advanced.StatusInfeasible
)

// Solve the problem with default tolerances.
//
// An infeasible problem is not an error; it gives a Result with
// StatusInfeasible. The only error is a NaN or infinite coefficient.
func Solve(constraints []Constraint, objective Objective) (*Result, error) {
	return SolveWithOptions(constraints, objective, Options{})
}

func SolveWithOptions(constraints []Constraint, objective Objective, opts Options) (*Result, error) {
	if err := advanced.Validate(constraints, objective); err != nil {
		return nil, err
	}
	return advanced.SolveWithOptions(constraints, objective, opts), nil
}
