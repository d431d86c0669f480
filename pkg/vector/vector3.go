package vector

import (
	"math"
	"strconv"
	"strings"
)

// Vector3 is a 3D vector of float64 components.
// It is a plain value: assignment and argument passing copy it.
type Vector3 struct {
	X, Y, Z float64
}

// New returns the zero vector
func New() Vector3 {
	return Vector3{}
}

// Equal reports whether every component of a equals the matching component of b.
// A NaN component is never equal to anything, including itself.
func Equal(a, b Vector3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// NotEqual is the negation of Equal
func NotEqual(a, b Vector3) bool {
	return !Equal(a, b)
}

// Equal reports whether v and other are componentwise equal
func (v Vector3) Equal(other Vector3) bool {
	return Equal(v, other)
}

// Clone returns an independent copy of v
func (v Vector3) Clone() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the componentwise sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the componentwise difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul returns the elementwise (Hadamard) product of two vectors
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Div returns the elementwise quotient v / other.
// It fails with ErrDivisionByZero if any component of other is zero.
func (v Vector3) Div(other Vector3) (Vector3, error) {
	if err := zeroDivisor(other); err != nil {
		return Vector3{}, err
	}
	return Vector3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}, nil
}

// AddAssign sets v to v + other
func (v *Vector3) AddAssign(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubAssign sets v to v - other
func (v *Vector3) SubAssign(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// MulAssign sets v to the elementwise product v * other
func (v *Vector3) MulAssign(other Vector3) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// DivAssign sets v to v / other. On error v is left untouched.
func (v *Vector3) DivAssign(other Vector3) error {
	q, err := v.Div(other)
	if err != nil {
		return err
	}
	*v = q
	return nil
}

// Scale returns the vector scaled by a scalar
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// ScaleAssign multiplies every component of v by s
func (v *Vector3) ScaleAssign(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalar returns v with every component divided by s
func (v Vector3) DivScalar(s float64) (Vector3, error) {
	if err := zeroScalar(s); err != nil {
		return Vector3{}, err
	}
	return Vector3{
		X: v.X / s,
		Y: v.Y / s,
		Z: v.Z / s,
	}, nil
}

// DivScalarAssign divides every component of v by s. On error v is left untouched.
func (v *Vector3) DivScalarAssign(s float64) error {
	if err := zeroScalar(s); err != nil {
		return err
	}
	v.X /= s
	v.Y /= s
	v.Z /= s
	return nil
}

// Negate returns -v
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MagnitudeSquared returns the squared length of the vector
func (v Vector3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the length of the vector
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return v.Scale(1.0 / mag)
}

// IsZero checks if the vector is zero
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// DistanceTo returns the Euclidean distance between v and other
func (v Vector3) DistanceTo(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquaredTo(other))
}

// DistanceSquaredTo returns the squared distance between v and other
func (v Vector3) DistanceSquaredTo(other Vector3) float64 {
	dx := other.X - v.X
	dy := other.Y - v.Y
	dz := other.Z - v.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vector3) float64 {
	return a.DistanceTo(b)
}

// DistanceSquared returns the squared Euclidean distance between a and b.
// Prefer it over Distance when only the ordering of distances matters.
func DistanceSquared(a, b Vector3) float64 {
	return a.DistanceSquaredTo(b)
}

// Dot returns the dot product of a and b
func Dot(a, b Vector3) float64 {
	return a.Dot(b)
}

// String formats v with the shortest decimal representation of each component
func (v Vector3) String() string {
	return v.Format(-1)
}

// Format renders v as "Vector3{X: .., Y: .., Z: ..}" using prec digits after the
// decimal point. A negative prec uses the shortest representation.
func (v Vector3) Format(prec int) string {
	format := byte('f')
	if prec < 0 {
		format = 'g'
	}
	var b strings.Builder
	b.WriteString("Vector3{X: ")
	b.WriteString(strconv.FormatFloat(v.X, format, prec, 64))
	b.WriteString(", Y: ")
	b.WriteString(strconv.FormatFloat(v.Y, format, prec, 64))
	b.WriteString(", Z: ")
	b.WriteString(strconv.FormatFloat(v.Z, format, prec, 64))
	b.WriteString("}")
	return b.String()
}
