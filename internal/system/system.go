// Package system is the façade over the simulation core: it owns the body
// set, orchestrates stepping and trail capture, and exposes the read-only
// query surface a visualizer polls between frames.
//
// A System is intended to be owned and driven by exactly one control loop.
// No method is safe for concurrent use; Simulate runs to completion before
// returning and cannot be interrupted mid-batch. A caller wanting
// responsiveness passes a small total per call.
package system

import (
	"fmt"
	"math"

	"github.com/san-kum/orbital/internal/celestial"
	"github.com/san-kum/orbital/internal/energy"
	"github.com/san-kum/orbital/internal/gravity"
	"github.com/san-kum/orbital/internal/integrator"
	"github.com/san-kum/orbital/internal/trail"
)

type System struct {
	bodies  []*celestial.Body
	verlet  *integrator.Verlet
	trails  *trail.Store
	tracker *energy.Tracker

	simTime     float64 // [s] since initialization, monotonically non-decreasing
	steps       int
	recordEvery int
}

// New validates the catalog, primes the integrator with the initial
// accelerations, and captures the energy-conservation baseline.
// recordEvery is the trail-recording stride in completed steps; values
// below 1 mean every step.
func New(cat celestial.Catalog, recordEvery int) (*System, error) {
	if len(cat) == 0 {
		return nil, ErrNoBodies
	}
	seen := make(map[string]bool, len(cat))
	for _, b := range cat {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("%w: %q has mass %g", ErrNonPositiveMass, b.Name, b.Mass)
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, b.Name)
		}
		seen[b.Name] = true
	}
	if recordEvery < 1 {
		recordEvery = 1
	}

	s := &System{
		bodies:      cat,
		verlet:      integrator.NewVerlet(gravity.NewModel()),
		trails:      trail.NewStore(cat),
		recordEvery: recordEvery,
	}
	// Priming also catches coincident initial positions.
	if err := s.verlet.Prime(s.bodies); err != nil {
		return nil, err
	}
	s.tracker = energy.NewTracker(s.bodies)
	return s, nil
}

// Simulate advances the simulation by floor(total/dt) steps of dt seconds
// each, recording trail points along the way. Callers batch many sub-steps
// per rendered frame to keep physics fidelity independent of frame rate.
func (s *System) Simulate(total, dt float64) error {
	if err := checkStep(dt); err != nil {
		return err
	}
	return s.SimulateSteps(int(total/dt), dt)
}

// SimulateSteps advances exactly n steps of dt seconds each. Callers that
// counted their steps up front use this to avoid re-deriving the count
// from a time span and losing steps to truncation.
func (s *System) SimulateSteps(n int, dt float64) error {
	if err := checkStep(dt); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := s.verlet.Step(s.bodies, dt); err != nil {
			return err
		}
		s.steps++
		s.simTime += dt
		if s.steps%s.recordEvery == 0 {
			for j, b := range s.bodies {
				s.trails.Record(j, b.Position)
			}
		}
	}
	return nil
}

func (s *System) BodyCount() int { return len(s.bodies) }

// Names returns body names in the fixed catalog order.
func (s *System) Names() []string {
	names := make([]string, len(s.bodies))
	for i, b := range s.bodies {
		names[i] = b.Name
	}
	return names
}

// Body returns a copy of body i's current state.
func (s *System) Body(i int) (celestial.Body, error) {
	if err := s.checkIndex(i); err != nil {
		return celestial.Body{}, err
	}
	return *s.bodies[i], nil
}

// Positions returns current positions in meters, index-aligned with Names.
func (s *System) Positions() []celestial.Vec3 {
	out := make([]celestial.Vec3, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Position
	}
	return out
}

// PositionsAU returns current positions in astronomical units.
func (s *System) PositionsAU() []celestial.Vec3 {
	out := make([]celestial.Vec3, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.PositionAU()
	}
	return out
}

func (s *System) Velocities() []celestial.Vec3 {
	out := make([]celestial.Vec3, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Velocity
	}
	return out
}

func (s *System) Masses() []float64 {
	out := make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Mass
	}
	return out
}

func (s *System) Radii() []float64 {
	out := make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Radius
	}
	return out
}

// Trajectory returns body i's recorded path in meters, oldest-first.
func (s *System) Trajectory(i int) ([]celestial.Vec3, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	return s.trails.Trajectory(i), nil
}

// TrajectoryAU returns body i's recorded path in astronomical units.
func (s *System) TrajectoryAU(i int) ([]celestial.Vec3, error) {
	traj, err := s.Trajectory(i)
	if err != nil {
		return nil, err
	}
	for j := range traj {
		traj[j] = traj[j].Scale(1 / celestial.AU)
	}
	return traj, nil
}

func (s *System) SimulatedTime() float64  { return s.simTime }
func (s *System) SimulatedDays() float64  { return s.simTime / celestial.Day }
func (s *System) SimulatedYears() float64 { return s.simTime / celestial.Year }
func (s *System) StepCount() int          { return s.steps }

func (s *System) TotalEnergy() float64   { return energy.Total(s.bodies) }
func (s *System) InitialEnergy() float64 { return s.tracker.Initial() }

// EnergyError returns the relative deviation of the current total energy
// from the baseline captured at initialization.
func (s *System) EnergyError() float64 { return s.tracker.Err(s.bodies) }

// Momentum returns the total linear momentum [kg*m/s]. Conserved for an
// isolated system.
func (s *System) Momentum() celestial.Vec3 {
	var p celestial.Vec3
	for _, b := range s.bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin
// [kg*m^2/s]. Conserved for an isolated system.
func (s *System) AngularMomentum() celestial.Vec3 {
	var l celestial.Vec3
	for _, b := range s.bodies {
		l = l.Add(b.Position.Cross(b.Velocity.Scale(b.Mass)))
	}
	return l
}

// Speed returns |velocity| of body i in m/s.
func (s *System) Speed(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.bodies[i].Speed(), nil
}

// DistanceFromSun returns body i's distance from the reference body
// (index 0, the most massive) in meters.
func (s *System) DistanceFromSun(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.bodies[i].DistanceTo(s.bodies[0]), nil
}

// OrbitalPeriod estimates body i's orbital period from its current
// distance to the reference body, treating that distance as the semi-major
// axis. A rough readout, not an element fit.
func (s *System) OrbitalPeriod(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, nil
	}
	r := s.bodies[i].DistanceTo(s.bodies[0])
	return 2 * math.Pi * math.Sqrt(r*r*r/(celestial.G*s.bodies[0].Mass)), nil
}

func checkStep(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: got %g", integrator.ErrInvalidStep, dt)
	}
	return nil
}

func (s *System) checkIndex(i int) error {
	if i < 0 || i >= len(s.bodies) {
		return fmt.Errorf("%w: %d (have %d bodies)", ErrBodyIndex, i, len(s.bodies))
	}
	return nil
}
