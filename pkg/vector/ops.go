package vector

// MathOps performs in-place arithmetic on a bound vector and reports
// failure through the returned error instead of a new value.
type MathOps interface {
	Add(b Vector3) error
	Subtract(b Vector3) error
	Multiply(b Vector3) error
	Divide(b Vector3) error
}

// Ops binds v to a MathOps. Every operation mutates v.
func (v *Vector3) Ops() MathOps {
	return mathOps{v: v}
}

type mathOps struct {
	v *Vector3
}

var _ MathOps = mathOps{}

func (o mathOps) Add(b Vector3) error {
	o.v.AddAssign(b)
	return nil
}

func (o mathOps) Subtract(b Vector3) error {
	o.v.SubAssign(b)
	return nil
}

func (o mathOps) Multiply(b Vector3) error {
	o.v.MulAssign(b)
	return nil
}

// Divide leaves the bound vector unchanged when any component of b is zero
func (o mathOps) Divide(b Vector3) error {
	return o.v.DivAssign(b)
}
