package nbody

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/oxygene76/vector3/pkg/vector"
)

// maxSteps bounds the step count of a single Integrate call
const maxSteps = 1 << 40

// pairs closer than this (squared, AU²) exert no force on each other
const minSeparation2 = 1e-20

// LeapfrogStep advances the system by dt using kick-drift-kick leapfrog
func (s *System) LeapfrogStep(dt float64) {
	s.kick(s.accelerations(), dt*0.5)

	for i := range s.Bodies {
		s.Bodies[i].Position.AddAssign(s.Bodies[i].Velocity.Scale(dt))
	}

	s.kick(s.accelerations(), dt*0.5)
	s.Time += dt
}

func (s *System) kick(acc []vector.Vector3, h float64) {
	for i := range s.Bodies {
		acc[i].ScaleAssign(h)
		s.Bodies[i].Velocity.AddAssign(acc[i])
	}
}

// Integrate runs LeapfrogStep until duration has elapsed, reporting a snapshot
// to sink every snapEvery steps and after the final step. sink may be nil.
func (s *System) Integrate(duration, dt float64, snapEvery int, sink SnapshotSink) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return errorsmod.Wrapf(ErrInvalidStep, "timestep %v must be positive and finite", dt)
	}
	if !(duration >= 0) || math.IsInf(duration, 0) {
		return errorsmod.Wrapf(ErrInvalidStep, "duration %v must be finite and not negative", duration)
	}
	n := duration / dt
	if n > maxSteps {
		return errorsmod.Wrapf(ErrInvalidStep, "duration %v at timestep %v needs more than %d steps", duration, dt, maxSteps)
	}
	if snapEvery <= 0 {
		snapEvery = 1
	}

	steps := int(n)
	s.log().Info("starting integration", "bodies", len(s.Bodies), "steps", steps, "dt", dt)

	if sink != nil {
		if err := sink.OnStart(steps, snapEvery); err != nil {
			return err
		}
		if err := sink.OnSnapshot(s.Time, s.snapshot()); err != nil {
			return err
		}
	}

	for step := 0; step < steps; step++ {
		s.LeapfrogStep(dt)

		if sink != nil && ((step+1)%snapEvery == 0 || step == steps-1) {
			s.log().Debug("snapshot", "step", step+1, "time", s.Time)
			if err := sink.OnSnapshot(s.Time, s.snapshot()); err != nil {
				return err
			}
		}
	}

	s.log().Info("integration finished", "time", s.Time, "energy", s.TotalEnergy())
	if sink != nil {
		return sink.OnEnd(s.Time)
	}
	return nil
}

func (s *System) snapshot() []Body {
	bodies := make([]Body, len(s.Bodies))
	copy(bodies, s.Bodies)
	return bodies
}

// accelerations computes the gravitational acceleration of every body.
// Massless bodies feel gravity but exert none.
func (s *System) accelerations() []vector.Vector3 {
	n := len(s.Bodies)
	acc := make([]vector.Vector3, n)
	eps2 := s.Softening * s.Softening

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || s.Bodies[j].Mass == 0 {
				continue
			}
			acc[i].AddAssign(s.pairAcceleration(i, j, eps2))
		}
	}
	return acc
}

// pairAcceleration is the acceleration on body i due to body j: G·Mj·r / |r|³
func (s *System) pairAcceleration(i, j int, eps2 float64) vector.Vector3 {
	pi, pj := s.Bodies[i].Position, s.Bodies[j].Position
	d2 := vector.DistanceSquared(pi, pj) + eps2
	if d2 < minSeparation2 {
		return vector.Vector3{}
	}
	r := pj.Sub(pi)
	return r.Scale(s.G * s.Bodies[j].Mass / (d2 * math.Sqrt(d2)))
}
