package nbody

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/oxygene76/vector3/pkg/vector"
)

// Elements are Keplerian orbital elements of a bound orbit.
// Angles are in radians.
type Elements struct {
	SemiMajorAxis          float64 // a (AU)
	Eccentricity           float64 // e, 0 <= e < 1
	Inclination            float64 // i
	LongitudeAscendingNode float64 // Ω
	ArgumentPerihelion     float64 // ω
	MeanAnomaly            float64 // M
}

// Validate rejects unbound or degenerate orbits
func (oe Elements) Validate() error {
	if !(oe.SemiMajorAxis > 0) {
		return errorsmod.Wrapf(ErrInvalidOrbit, "semi-major axis %v must be positive", oe.SemiMajorAxis)
	}
	if !(oe.Eccentricity >= 0 && oe.Eccentricity < 1) {
		return errorsmod.Wrapf(ErrInvalidOrbit, "eccentricity %v outside [0, 1)", oe.Eccentricity)
	}
	return nil
}

// ToState converts the elements to position and velocity relative to the
// central body. mu is G·(M+m) in AU³/day².
func (oe Elements) ToState(mu float64) (pos, vel vector.Vector3, err error) {
	if err := oe.Validate(); err != nil {
		return vector.Vector3{}, vector.Vector3{}, err
	}

	a, e := oe.SemiMajorAxis, oe.Eccentricity
	E := oe.eccentricAnomaly()
	cosE, sinE := math.Cos(E), math.Sin(E)
	b := math.Sqrt(1 - e*e)

	// perifocal frame: x towards perihelion
	r := a * (1 - e*cosE)
	x, y := a*(cosE-e), a*b*sinE
	k := math.Sqrt(mu*a) / r
	vx, vy := -k*sinE, k*b*cosE

	p, q := oe.perifocalAxes()
	pos = p.Scale(x).Add(q.Scale(y))
	vel = p.Scale(vx).Add(q.Scale(vy))
	return pos, vel, nil
}

// perifocalAxes returns the inertial directions of perihelion (P) and of the
// velocity at perihelion (Q)
func (oe Elements) perifocalAxes() (p, q vector.Vector3) {
	cO, sO := math.Cos(oe.LongitudeAscendingNode), math.Sin(oe.LongitudeAscendingNode)
	cw, sw := math.Cos(oe.ArgumentPerihelion), math.Sin(oe.ArgumentPerihelion)
	ci, si := math.Cos(oe.Inclination), math.Sin(oe.Inclination)

	p = vector.Vector3{
		X: cO*cw - sO*sw*ci,
		Y: sO*cw + cO*sw*ci,
		Z: sw * si,
	}
	q = vector.Vector3{
		X: -cO*sw - sO*cw*ci,
		Y: -sO*sw + cO*cw*ci,
		Z: cw * si,
	}
	return p, q
}

// eccentricAnomaly solves Kepler's equation M = E - e·sin(E) by Newton-Raphson
func (oe Elements) eccentricAnomaly() float64 {
	e := oe.Eccentricity
	M := math.Mod(oe.MeanAnomaly, 2*math.Pi)
	E := M
	if e > 0.8 {
		E = math.Pi
	}

	for i := 0; i < 50; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// Perihelion returns the closest-approach distance
func (oe Elements) Perihelion() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity)
}

// Aphelion returns the farthest distance
func (oe Elements) Aphelion() float64 {
	return oe.SemiMajorAxis * (1 + oe.Eccentricity)
}

// Period returns the orbital period in days
func (oe Elements) Period(mu float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(oe.SemiMajorAxis, 3)/mu)
}

// ElementsFromState converts a relative position and velocity back to
// orbital elements. Undefined angles (equatorial or circular orbits) are 0.
func ElementsFromState(pos, vel vector.Vector3, mu float64) (Elements, error) {
	r := pos.Magnitude()
	v2 := vel.MagnitudeSquared()
	if r == 0 {
		return Elements{}, errorsmod.Wrap(ErrInvalidOrbit, "position is at the central body")
	}

	pr, vr := pos.ToR3(), vel.ToR3()
	hr := r3.Cross(pr, vr)
	hMag := r3.Norm(hr)
	if hMag == 0 {
		return Elements{}, errorsmod.Wrap(ErrInvalidOrbit, "radial trajectory has no orbit plane")
	}
	h := vector.FromR3(hr)

	// eccentricity vector (v × h)/mu - r̂
	eVec := vector.FromR3(r3.Sub(r3.Scale(1/mu, r3.Cross(vr, hr)), r3.Scale(1/r, pr)))
	e := eVec.Magnitude()

	oe := Elements{
		SemiMajorAxis: 1 / (2/r - v2/mu),
		Eccentricity:  e,
		Inclination:   math.Acos(clamp(h.Z / hMag)),
	}
	if err := oe.Validate(); err != nil {
		return Elements{}, err
	}

	const tiny = 1e-12
	n := vector.Vector3{X: -h.Y, Y: h.X}
	nMag := n.Magnitude()
	if nMag > tiny {
		oe.LongitudeAscendingNode = wrapAngle(math.Atan2(n.Y, n.X))
	}

	// true anomaly is measured from perihelion, or from the node/x-axis when
	// the orbit is circular
	ref := eVec
	switch {
	case e > tiny && nMag > tiny:
		w := math.Acos(clamp(n.Dot(eVec) / (nMag * e)))
		if eVec.Z < 0 {
			w = 2*math.Pi - w
		}
		oe.ArgumentPerihelion = w
	case e > tiny:
		oe.ArgumentPerihelion = wrapAngle(math.Atan2(eVec.Y, eVec.X))
	case nMag > tiny:
		ref = n
	default:
		ref = vector.Vector3{X: 1}
	}

	nu := math.Acos(clamp(r3.Dot(r3.Unit(ref.ToR3()), pr) / r))
	if h.Dot(ref.Cross(pos)) < 0 {
		nu = 2*math.Pi - nu
	}

	E := 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(nu/2))
	oe.MeanAnomaly = wrapAngle(E - e*math.Sin(E))
	return oe, nil
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func wrapAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}
