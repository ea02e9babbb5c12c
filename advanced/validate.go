package advanced

import "github.com/pkg/errors"

// Returned (wrapped) when a coefficient is NaN or infinite. The geometry has
// no meaning for those, and a NaN would silently fail every comparison.
var ErrNonFinite = errors.New("coefficient is not finite")

// Check that every coefficient is a finite number. Solve itself never checks
// this; callers taking outside input should.
func Validate(constraints []Constraint, objective Objective) error {
	for i, c := range constraints {
		if !isFinite(c.A) || !isFinite(c.B) || !isFinite(c.C) {
			return errors.Wrapf(ErrNonFinite, "constraint %d (%v)", i, c)
		}
	}
	if !isFinite(objective.P) || !isFinite(objective.Q) {
		return errors.Wrapf(ErrNonFinite, "objective (%g, %g)", objective.P, objective.Q)
	}
	return nil
}
