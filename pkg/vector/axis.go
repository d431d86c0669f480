package vector

import "strings"

// Axis identifies one component of a Vector3
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the components in X, Y, Z order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// Component returns the value stored on axis a.
// It panics on an axis outside X, Y, Z.
func (v Vector3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("vector: invalid axis " + a.String())
}

// ZeroAxes returns the axes whose component is exactly zero.
// -0.0 counts as zero.
func (v Vector3) ZeroAxes() []Axis {
	var axes []Axis
	for _, a := range Axes {
		if v.Component(a) == 0 {
			axes = append(axes, a)
		}
	}
	return axes
}

func joinAxes(axes []Axis) string {
	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}
