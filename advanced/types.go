package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

type Point struct {
	X float64
	Y float64
}

// A single inequality A*x + B*y <= C. There is no other constraint form;
// a >= constraint has to be negated by the caller.
type Constraint struct {
	A, B, C float64
}

// The linear form P*x + Q*y.
type Objective struct {
	P, Q float64
}

type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusInfeasible Status = "infeasible"
)

// Which direction of the objective a caller is interested in. The solver
// always finds both; Sense only picks one of them out of a Result.
type Sense string

const (
	Minimize Sense = "min"
	Maximize Sense = "max"
)

type Optimum struct {
	Point Point
	Value float64
}

type Result struct {
	Status Status
	// Deduplicated feasible vertices, in the order they were discovered. This
	// is empty (never nil) for an infeasible problem.
	Vertices []Point
	// Both optima are nil when the problem is infeasible.
	Min *Optimum
	Max *Optimum
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (c Constraint) String() string {
	return fmt.Sprintf("%g*x + %g*y <= %g", c.A, c.B, c.C)
}

// Left hand side of the constraint at p.
func (c Constraint) Eval(p Point) float64 {
	return c.A*p.X + c.B*p.Y
}

func (o Objective) Value(p Point) float64 {
	return o.P*p.X + o.Q*p.Y
}

func ParseSense(s string) (Sense, error) {
	switch Sense(s) {
	case Minimize, Maximize:
		return Sense(s), nil
	}
	return "", errors.Errorf("unknown optimization sense %q (want %q or %q)", s, Minimize, Maximize)
}

// Best returns the optimum for the given direction, or nil if the problem is
// infeasible.
func (r *Result) Best(sense Sense) *Optimum {
	if sense == Maximize {
		return r.Max
	}
	return r.Min
}

func (r *Result) IsOptimal() bool {
	return r.Status == StatusOptimal
}
