package field

import (
	"fmt"
	"math"
)

// TruncatedEllipsoidSegment returns the field of an ellipsoid with
// semi-axes (a, b, c) centered at center, cut by the planes Z = z0 and
// Z = z1 in local coordinates. The result is the max of the ellipsoid
// term and the two cap terms, i.e. the intersection of their interiors.
//
// z0 == z1 is accepted and yields a measure-zero slab.
func TruncatedEllipsoidSegment(a, b, c, z0, z1 float64, center Vec3) (ScalarField, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) || math.Min(a, math.Min(b, c)) <= 0 {
		return nil, fmt.Errorf("%w: semi-axes must be positive (a=%g, b=%g, c=%g)", ErrInvalidParameter, a, b, c)
	}
	if math.IsNaN(z0) || math.IsNaN(z1) {
		return nil, fmt.Errorf("%w: truncation bounds must be numbers (z0=%g, z1=%g)", ErrInvalidParameter, z0, z1)
	}
	if z1 < z0 {
		return nil, fmt.Errorf("%w: upper bound must not be below lower bound (z0=%g, z1=%g)", ErrInvalidParameter, z0, z1)
	}

	cx, cy, cz := center.X, center.Y, center.Z
	return Func(func(x, y, z float64) float64 {
		u := (x - cx) / a
		v := (y - cy) / b
		Z := z - cz
		w := Z / c
		shape := u*u + v*v + w*w - 1
		return max(shape, z0-Z, Z-z1)
	}), nil
}

// MustTruncatedEllipsoidSegment is like TruncatedEllipsoidSegment but
// panics on invalid parameters.
func MustTruncatedEllipsoidSegment(a, b, c, z0, z1 float64, center Vec3) ScalarField {
	f, err := TruncatedEllipsoidSegment(a, b, c, z0, z1, center)
	if err != nil {
		panic(fmt.Sprintf("field.TruncatedEllipsoidSegment: %v", err))
	}
	return f
}
