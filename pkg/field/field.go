package field

// ScalarField is an implicit solid. Evaluate returns a value <= 0 inside
// the solid and > 0 outside. The magnitude carries no metric guarantee.
type ScalarField interface {
	Evaluate(x, y, z float64) float64
}

// Func adapts an ordinary function to ScalarField.
type Func func(x, y, z float64) float64

// Evaluate calls f(x, y, z).
func (f Func) Evaluate(x, y, z float64) float64 {
	return f(x, y, z)
}

// Vec3 is a point or offset in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// At evaluates f at p.
func At(f ScalarField, p Vec3) float64 {
	return f.Evaluate(p.X, p.Y, p.Z)
}

// Inside reports whether p lies in the closed solid described by f.
func Inside(f ScalarField, p Vec3) bool {
	return At(f, p) <= 0
}
