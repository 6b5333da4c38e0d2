package field

// Translate moves the solid described by f by (dx, dy, dz). The returned
// field samples f at the inverse-shifted point.
func Translate(f ScalarField, dx, dy, dz float64) ScalarField {
	return Func(func(x, y, z float64) float64 {
		return f.Evaluate(x-dx, y-dy, z-dz)
	})
}

// Union returns the solid that is inside fa or inside fb.
func Union(fa, fb ScalarField) ScalarField {
	return Func(func(x, y, z float64) float64 {
		return min(fa.Evaluate(x, y, z), fb.Evaluate(x, y, z))
	})
}

// UnionAll folds Union over fs from left to right. It panics if fs is empty.
func UnionAll(fs ...ScalarField) ScalarField {
	if len(fs) == 0 {
		panic("field.UnionAll: no operands")
	}
	u := fs[0]
	for _, f := range fs[1:] {
		u = Union(u, f)
	}
	return u
}

// Intersect returns the solid that is inside both fa and fb.
func Intersect(fa, fb ScalarField) ScalarField {
	return Func(func(x, y, z float64) float64 {
		return max(fa.Evaluate(x, y, z), fb.Evaluate(x, y, z))
	})
}

// Difference returns outer with inner carved out. Operand order matters.
func Difference(outer, inner ScalarField) ScalarField {
	return Func(func(x, y, z float64) float64 {
		return max(outer.Evaluate(x, y, z), -inner.Evaluate(x, y, z))
	})
}
