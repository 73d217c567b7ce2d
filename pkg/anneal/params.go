package anneal

import (
	"errors"
	"fmt"
)

// ErrInvalidParams reports a parameter set outside its legal ranges.
// Validation errors wrap it, so callers can test with errors.Is.
var ErrInvalidParams = errors.New("anneal: invalid parameters")

// tempFloor is the default positive floor the temperature is clamped to
// when Params.MinTemp is left zero. It keeps the Metropolis exponent
// finite for the whole iteration budget.
const tempFloor = 1e-9

// Params configures one engine run. A Params value is immutable for the
// duration of the run; the restart controller derives a fresh value
// between attempts via Perturbed.
type Params struct {
	// InitialTemp is the starting temperature. Must be > 0.
	InitialTemp float64

	// CoolingRate is the multiplicative decay applied to the temperature
	// after every iteration. Must lie in (0, 1).
	CoolingRate float64

	// MinTemp is the floor the temperature is clamped to. Zero selects a
	// built-in floor of 1e-9. Must be >= 0 and < InitialTemp.
	MinTemp float64

	// MaxIterations bounds a single run. Zero is legal and produces an
	// immediately Exhausted run (useful for probing the initial state).
	MaxIterations int

	// MaxRestarts bounds how many additional attempts the Solver makes
	// after the first run is Exhausted without converging.
	MaxRestarts int
}

// Validate checks the parameter ranges. It returns the first violation
// found, or nil when the set is usable.
func (p Params) Validate() error {
	if p.InitialTemp <= 0 {
		return fmt.Errorf("%w: InitialTemp must be > 0 (got %g)", ErrInvalidParams, p.InitialTemp)
	}
	if p.CoolingRate <= 0 || p.CoolingRate >= 1 {
		return fmt.Errorf("%w: CoolingRate must be in (0,1) (got %g)", ErrInvalidParams, p.CoolingRate)
	}
	if p.MinTemp < 0 {
		return fmt.Errorf("%w: MinTemp must be >= 0 (got %g)", ErrInvalidParams, p.MinTemp)
	}
	if p.MinTemp >= p.InitialTemp {
		return fmt.Errorf("%w: MinTemp must be < InitialTemp (got %g >= %g)", ErrInvalidParams, p.MinTemp, p.InitialTemp)
	}
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations must be >= 0 (got %d)", ErrInvalidParams, p.MaxIterations)
	}
	if p.MaxRestarts < 0 {
		return fmt.Errorf("%w: MaxRestarts must be >= 0 (got %d)", ErrInvalidParams, p.MaxRestarts)
	}
	return nil
}

// floor returns the effective temperature floor for the run.
func (p Params) floor() float64 {
	if p.MinTemp > 0 {
		return p.MinTemp
	}
	return tempFloor
}

// Perturbed derives the parameter set for the next restart attempt. The
// perturbation is monotone: the initial temperature is multiplied by 5
// and the cooling rate moves halfway toward 1, so every retry explores
// more and cools slower than its predecessor. Iteration and restart
// budgets are unchanged.
func (p Params) Perturbed() Params {
	next := p
	next.InitialTemp *= 5
	next.CoolingRate += (1 - next.CoolingRate) / 2
	return next
}
