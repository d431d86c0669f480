package vector

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the error codespace for vector errors
const ModuleName = "vector"

var (
	// ErrDivisionByZero is returned when a divisor component or scalar is exactly zero
	ErrDivisionByZero = errorsmod.Register(ModuleName, 2, "division by zero")
	// ErrInvalidVector is returned when a vector literal cannot be parsed
	ErrInvalidVector = errorsmod.Register(ModuleName, 3, "invalid vector")
)

// zeroDivisor wraps ErrDivisionByZero with the axes of b that are zero.
// Returns nil when every component of b is non-zero.
func zeroDivisor(b Vector3) error {
	axes := b.ZeroAxes()
	if len(axes) == 0 {
		return nil
	}
	return errorsmod.Wrapf(ErrDivisionByZero, "divisor component %s is zero", joinAxes(axes))
}

func zeroScalar(s float64) error {
	if s != 0 {
		return nil
	}
	return errorsmod.Wrapf(ErrDivisionByZero, "scalar divisor is %v", s)
}
