package vector

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Parse reads a vector written as "x,y,z". Surrounding parentheses and
// whitespace around each component are ignored.
func Parse(s string) (Vector3, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Vector3{}, errorsmod.Wrapf(ErrInvalidVector, "%q: expected 3 components, got %d", s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector3{}, errorsmod.Wrapf(ErrInvalidVector, "%q: component %s: %v", s, Axes[i], err)
		}
		c[i] = f
	}
	return Vector3{X: c[0], Y: c[1], Z: c[2]}, nil
}
