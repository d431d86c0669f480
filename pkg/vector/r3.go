package vector

import "gonum.org/v1/gonum/spatial/r3"

// ToR3 converts v to a gonum r3.Vec
func (v Vector3) ToR3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts a gonum r3.Vec to a Vector3
func FromR3(p r3.Vec) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}
