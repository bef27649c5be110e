// Package integrator advances body states through time.
//
// The only scheme provided is Velocity Verlet. It is symplectic: long-term
// energy error stays bounded instead of drifting systematically, which is
// what keeps a many-thousand-step run honest. Explicit Euler or RK4 would
// be simpler or locally more accurate, but both leak energy over orbital
// timescales.
package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/orbital/internal/celestial"
	"github.com/san-kum/orbital/internal/gravity"
)

var (
	// ErrInvalidStep indicates a non-positive or non-finite dt.
	ErrInvalidStep = errors.New("integrator: step size must be positive and finite")

	// ErrUnstable indicates a non-finite coordinate after a step.
	ErrUnstable = errors.New("integrator: state diverged (NaN or Inf)")
)

// StepError carries the step count and simulated time at which an error
// occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g s): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }

// Verlet steps bodies with the kick-drift-kick form of Velocity Verlet.
// The closing half-kick's acceleration is cached on each body and reused
// as the opening half-kick of the next step, so the force model is
// evaluated once per step. Prime must be called before the first Step.
type Verlet struct {
	model   *gravity.Model
	scratch []celestial.Vec3
	primed  bool
	steps   int
	time    float64
}

func NewVerlet(model *gravity.Model) *Verlet {
	return &Verlet{model: model}
}

// Prime computes the accelerations of the initial configuration and seeds
// each body's cache. Calling it again resets the step and time counters.
func (v *Verlet) Prime(bodies []*celestial.Body) error {
	v.ensureScratch(len(bodies))
	if err := v.model.AccelerationsInto(v.scratch, bodies); err != nil {
		return err
	}
	for i, b := range bodies {
		b.Acc = v.scratch[i]
		b.AccOld = v.scratch[i]
	}
	v.primed = true
	v.steps = 0
	v.time = 0
	return nil
}

// Step advances all bodies by exactly dt seconds. Deterministic given the
// current state and dt.
func (v *Verlet) Step(bodies []*celestial.Body, dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidStep, dt)
	}
	if !v.primed {
		if err := v.Prime(bodies); err != nil {
			return err
		}
	}
	v.ensureScratch(len(bodies))

	// Half-kick with the cached acceleration, then drift.
	for _, b := range bodies {
		b.AccOld = b.Acc
		b.Velocity = b.Velocity.Add(b.AccOld.Scale(0.5 * dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	// Recompute forces at the new positions and close with the second
	// half-kick.
	if err := v.model.AccelerationsInto(v.scratch, bodies); err != nil {
		return &StepError{Step: v.steps, Time: v.time, Wrapped: err}
	}
	for i, b := range bodies {
		b.Acc = v.scratch[i]
		b.Velocity = b.Velocity.Add(b.Acc.Scale(0.5 * dt))
	}

	v.steps++
	v.time += dt

	for _, b := range bodies {
		if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
			return &StepError{Step: v.steps, Time: v.time, Wrapped: ErrUnstable}
		}
	}
	return nil
}

// Steps returns the number of completed steps since the last Prime.
func (v *Verlet) Steps() int { return v.steps }

func (v *Verlet) ensureScratch(n int) {
	if len(v.scratch) != n {
		v.scratch = make([]celestial.Vec3, n)
	}
}
