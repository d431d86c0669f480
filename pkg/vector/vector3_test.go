package vector

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func randomVectors(n int) []Vector3 {
	rng := rand.New(rand.NewSource(42))
	vs := make([]Vector3, n)
	for i := range vs {
		vs[i] = Vector3{
			X: rng.Float64()*200 - 100,
			Y: rng.Float64()*200 - 100,
			Z: rng.Float64()*200 - 100,
		}
	}
	return vs
}

func approxEqual(t *testing.T, want, got Vector3) {
	t.Helper()
	for _, a := range Axes {
		assert.Truef(t, scalar.EqualWithinAbsOrRel(want.Component(a), got.Component(a), 1e-9, 1e-9),
			"axis %s: want %v, got %v", a, want, got)
	}
}

func TestNew(t *testing.T) {
	v := New()
	assert.Equal(t, 0.0, v.X)
	assert.Equal(t, 0.0, v.Y)
	assert.Equal(t, 0.0, v.Z)
	assert.True(t, v.IsZero())
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b Vector3
		want bool
	}{
		{"identical", Vector3{1, 2, 3}, Vector3{1, 2, 3}, true},
		{"one differs", Vector3{1, 2, 3}, Vector3{1, 2, 4}, false},
		{"all differ", Vector3{1, 2, 3}, Vector3{4, 5, 6}, false},
		{"signed zero", Vector3{0, 0, 0}, Vector3{math.Copysign(0, -1), 0, 0}, true},
		{"infinity", Vector3{math.Inf(1), 0, 0}, Vector3{math.Inf(1), 0, 0}, true},
		{"nan", Vector3{nan, 0, 0}, Vector3{nan, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, !tt.want, NotEqual(tt.a, tt.b))
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range randomVectors(50) {
		assert.True(t, Equal(v, v), v)
	}
	v := Vector3{1, math.NaN(), 1}
	assert.False(t, Equal(v, v))
}

func TestNotEqualWhenOnlyOneComponentDiffers(t *testing.T) {
	assert.True(t, NotEqual(Vector3{1, 2, 3}, Vector3{1, 2, 3.5}))
}

func TestClone(t *testing.T) {
	v := Vector3{1, 2, 1}
	c := v.Clone()
	require.True(t, Equal(v, c))

	c.X = 10
	c.AddAssign(Vector3{1, 1, 1})
	assert.Equal(t, Vector3{1, 2, 1}, v)
	assert.Equal(t, Vector3{11, 3, 2}, c)
}

func TestBinaryArithmetic(t *testing.T) {
	a := Vector3{1, 2, 1}
	b := Vector3{3, 3, 2}

	assert.Equal(t, Vector3{4, 5, 3}, a.Add(b))
	assert.Equal(t, Vector3{-2, -1, -1}, a.Sub(b))
	assert.Equal(t, Vector3{3, 6, 2}, a.Mul(b))
	assert.Equal(t, 11.0, Dot(a, b))

	// operands unchanged
	assert.Equal(t, Vector3{1, 2, 1}, a)
	assert.Equal(t, Vector3{3, 3, 2}, b)
}

func TestDiv(t *testing.T) {
	got, err := Vector3{4, 6, 10}.Div(Vector3{2, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, Vector3{2, 2, 5}, got)
}

func TestDivByZero(t *testing.T) {
	tests := []struct {
		name    string
		divisor Vector3
		axes    string
	}{
		{"y and z", Vector3{1, 0, 0}, "y,z"},
		{"x only", Vector3{0, 1, 1}, "x"},
		{"all", Vector3{}, "x,y,z"},
		{"negative zero", Vector3{1, 1, math.Copysign(0, -1)}, "z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Vector3{1, 2, 1}
			_, err := a.Div(tt.divisor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDivisionByZero))
			assert.True(t, errorsmod.IsOf(err, ErrDivisionByZero))
			assert.Contains(t, err.Error(), "component "+tt.axes+" is zero")
			assert.Equal(t, Vector3{1, 2, 1}, a)
		})
	}
}

func TestDivNonFiniteIsNotAnError(t *testing.T) {
	got, err := Vector3{1, 1, 1}.Div(Vector3{math.Inf(1), math.NaN(), 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.X)
	assert.True(t, math.IsNaN(got.Y))
	assert.Equal(t, 0.5, got.Z)
}

func TestAssignArithmetic(t *testing.T) {
	b := Vector3{3, 3, 2}

	v := Vector3{1, 2, 1}
	v.AddAssign(b)
	assert.Equal(t, Vector3{4, 5, 3}, v)

	v = Vector3{1, 2, 1}
	v.SubAssign(b)
	assert.Equal(t, Vector3{-2, -1, -1}, v)

	v = Vector3{1, 2, 1}
	v.MulAssign(b)
	assert.Equal(t, Vector3{3, 6, 2}, v)

	v = Vector3{4, 6, 10}
	require.NoError(t, v.DivAssign(Vector3{2, 3, 2}))
	assert.Equal(t, Vector3{2, 2, 5}, v)

	assert.Equal(t, Vector3{3, 3, 2}, b)
}

func TestDivAssignFailureLeavesReceiver(t *testing.T) {
	v := Vector3{1, 2, 1}
	err := v.DivAssign(Vector3{1, 0, 0})
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, Vector3{1, 2, 1}, v)
}

func TestScalarArithmetic(t *testing.T) {
	v := Vector3{1, 2, 1}
	assert.Equal(t, Vector3{2, 4, 2}, v.Scale(2))

	q, err := v.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, Vector3{0.5, 1, 0.5}, q)
	assert.Equal(t, Vector3{1, 2, 1}, v)

	v.ScaleAssign(2)
	assert.Equal(t, Vector3{2, 4, 2}, v)

	require.NoError(t, v.DivScalarAssign(4))
	assert.Equal(t, Vector3{0.5, 1, 0.5}, v)
}

func TestScalarDivByZero(t *testing.T) {
	for _, v := range append(randomVectors(5), Vector3{}) {
		_, err := v.DivScalar(0)
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.Contains(t, err.Error(), "scalar divisor")

		before := v
		require.ErrorIs(t, v.DivScalarAssign(0), ErrDivisionByZero)
		assert.Equal(t, before, v)
	}
}

func TestArithmeticProperties(t *testing.T) {
	vs := randomVectors(40)
	for i := 0; i+1 < len(vs); i += 2 {
		a, b := vs[i], vs[i+1]

		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, a.Sub(b), b.Sub(a).Negate())
		assert.Equal(t, Dot(a, b), Dot(b, a))

		q, err := a.Div(b)
		require.NoError(t, err)
		approxEqual(t, a, q.Mul(b))
	}
}

func TestGeometry(t *testing.T) {
	a := Vector3{1, 2, 1}
	b := Vector3{4, 6, 1}
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, 25.0, DistanceSquared(a, b))
	assert.Equal(t, 0.0, Distance(a, a))

	assert.True(t, math.IsNaN(Distance(a, Vector3{math.NaN(), 0, 0})))
	assert.True(t, math.IsInf(DistanceSquared(a, Vector3{math.Inf(-1), 0, 0}), 1))
}

func TestDistanceProperties(t *testing.T) {
	vs := randomVectors(40)
	for i := 0; i+1 < len(vs); i += 2 {
		a, b := vs[i], vs[i+1]
		d := Distance(a, b)
		assert.Equal(t, d, Distance(b, a))
		assert.Equal(t, 0.0, Distance(a, a))
		assert.True(t, scalar.EqualWithinAbsOrRel(d*d, DistanceSquared(a, b), 1e-9, 1e-9))
		assert.Equal(t, d, a.DistanceTo(b))
		assert.Equal(t, a.Sub(b).Magnitude(), d)
	}
}

func TestCrossAndNormalize(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	assert.Equal(t, Vector3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, 0.0, Dot(x.Cross(y), x))

	n := Vector3{3, 0, 4}.Normalize()
	approxEqual(t, Vector3{0.6, 0, 0.8}, n)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)
	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Vector3{X: 1, Y: 2.5, Z: -1}", Vector3{1, 2.5, -1}.String())
	assert.Equal(t, "Vector3{X: 0.50, Y: 1.00, Z: 0.50}", Vector3{0.5, 1, 0.5}.Format(2))
	assert.Equal(t, "Vector3{X: NaN, Y: +Inf, Z: 0}", Vector3{math.NaN(), math.Inf(1), 0}.String())
}

func TestComponentPanicsOnBadAxis(t *testing.T) {
	assert.Panics(t, func() { Vector3{}.Component(Axis(7)) })
}

func TestR3RoundTrip(t *testing.T) {
	v := Vector3{1, -2, 3}
	assert.Equal(t, v, FromR3(v.ToR3()))
}

func TestGeometryAgreesWithR3(t *testing.T) {
	vs := randomVectors(20)
	for i := 0; i+1 < len(vs); i += 2 {
		a, b := vs[i], vs[i+1]
		approxEqual(t, a.Cross(b), FromR3(r3.Cross(a.ToR3(), b.ToR3())))
		approxEqual(t, a.Normalize(), FromR3(r3.Unit(a.ToR3())))
		assert.InDelta(t, a.Magnitude(), r3.Norm(a.ToR3()), 1e-9)
		assert.InDelta(t, Dot(a, b), r3.Dot(a.ToR3(), b.ToR3()), 1e-9)
	}
}
