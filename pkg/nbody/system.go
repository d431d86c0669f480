package nbody

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"gonum.org/v1/gonum/stat"

	"github.com/oxygene76/vector3/pkg/vector"
)

// GaussianG is the gravitational constant in AU³/(M☉·day²)
const GaussianG = 2.959122e-4

// Body represents a point mass in the system
type Body struct {
	ID       string         `json:"id"`
	Mass     float64        `json:"mass"`     // solar masses
	Position vector.Vector3 `json:"position"` // AU
	Velocity vector.Vector3 `json:"velocity"` // AU/day
}

// System holds the bodies being integrated
type System struct {
	Bodies    []Body
	Time      float64 // days
	G         float64
	Softening float64 // AU, added in quadrature to pair separations

	logger log.Logger
}

// NewSystem creates an empty system in solar-system units
func NewSystem() *System {
	return &System{
		Bodies: make([]Body, 0),
		G:      GaussianG,
		logger: log.NewNopLogger(),
	}
}

// WithLogger sets the logger used by Integrate
func (s *System) WithLogger(logger log.Logger) *System {
	s.logger = logger.With("module", ModuleName)
	return s
}

// AddBody appends b after checking its ID and mass
func (s *System) AddBody(b Body) error {
	if b.ID == "" {
		return errorsmod.Wrap(ErrInvalidBody, "body ID cannot be empty")
	}
	if b.Mass < 0 || math.IsNaN(b.Mass) {
		return errorsmod.Wrapf(ErrInvalidBody, "body %s has mass %v", b.ID, b.Mass)
	}
	if _, ok := s.index(b.ID); ok {
		return errorsmod.Wrapf(ErrDuplicateBody, "body %s", b.ID)
	}
	s.Bodies = append(s.Bodies, b)
	return nil
}

// Body returns the body with the given ID
func (s *System) Body(id string) (Body, error) {
	i, ok := s.index(id)
	if !ok {
		return Body{}, errorsmod.Wrapf(ErrUnknownBody, "body %s", id)
	}
	return s.Bodies[i], nil
}

func (s *System) log() log.Logger {
	if s.logger == nil {
		return log.NewNopLogger()
	}
	return s.logger
}

func (s *System) index(id string) (int, bool) {
	for i := range s.Bodies {
		if s.Bodies[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Copy creates a deep copy of the system
func (s *System) Copy() *System {
	c := *s
	c.Bodies = make([]Body, len(s.Bodies))
	copy(c.Bodies, s.Bodies)
	return &c
}

// CenterOfMass returns the mass-weighted mean position of the system
func (s *System) CenterOfMass() (vector.Vector3, error) {
	n := len(s.Bodies)
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	masses := make([]float64, n)
	total := 0.0
	for i, b := range s.Bodies {
		xs[i], ys[i], zs[i] = b.Position.X, b.Position.Y, b.Position.Z
		masses[i] = b.Mass
		total += b.Mass
	}
	if total == 0 {
		return vector.Vector3{}, errorsmod.Wrapf(ErrNoMass, "%d bodies", n)
	}
	return vector.Vector3{
		X: stat.Mean(xs, masses),
		Y: stat.Mean(ys, masses),
		Z: stat.Mean(zs, masses),
	}, nil
}

// Nearest returns the body closest to id and the distance to it.
// Candidates are ranked by squared distance.
func (s *System) Nearest(id string) (Body, float64, error) {
	i, ok := s.index(id)
	if !ok {
		return Body{}, 0, errorsmod.Wrapf(ErrUnknownBody, "body %s", id)
	}
	origin := s.Bodies[i].Position

	best := -1
	bestD2 := math.Inf(1)
	for j := range s.Bodies {
		if j == i {
			continue
		}
		d2 := vector.DistanceSquared(origin, s.Bodies[j].Position)
		if best < 0 || d2 < bestD2 {
			best, bestD2 = j, d2
		}
	}
	if best < 0 {
		return Body{}, 0, errorsmod.Wrapf(ErrUnknownBody, "no body other than %s", id)
	}
	return s.Bodies[best], math.Sqrt(bestD2), nil
}

// KineticEnergy returns the total kinetic energy of the massive bodies
func (s *System) KineticEnergy() float64 {
	energy := 0.0
	for _, b := range s.Bodies {
		energy += 0.5 * b.Mass * b.Velocity.MagnitudeSquared()
	}
	return energy
}

// PotentialEnergy returns the total (softened) gravitational potential energy
func (s *System) PotentialEnergy() float64 {
	energy := 0.0
	eps2 := s.Softening * s.Softening
	for i := 0; i < len(s.Bodies)-1; i++ {
		for j := i + 1; j < len(s.Bodies); j++ {
			mm := s.Bodies[i].Mass * s.Bodies[j].Mass
			if mm == 0 {
				continue
			}
			d2 := vector.DistanceSquared(s.Bodies[i].Position, s.Bodies[j].Position) + eps2
			if d2 < minSeparation2 {
				continue
			}
			energy -= s.G * mm / math.Sqrt(d2)
		}
	}
	return energy
}

// TotalEnergy returns kinetic plus potential energy
func (s *System) TotalEnergy() float64 {
	return s.KineticEnergy() + s.PotentialEnergy()
}

// AngularMomentum returns the total angular momentum about the origin
func (s *System) AngularMomentum() vector.Vector3 {
	total := vector.New()
	for _, b := range s.Bodies {
		total.AddAssign(b.Position.Cross(b.Velocity).Scale(b.Mass))
	}
	return total
}
