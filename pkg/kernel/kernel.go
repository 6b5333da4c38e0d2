// Package kernel defines the boundary between implicit fields and the
// explicit geometry consumed downstream. Implementations (sdfx) sample a
// field over a bounded region and extract its zero level set as a
// triangle mesh. The abstraction allows swapping meshing backends without
// changing the field code.
package kernel

import (
	"math"

	"github.com/chazu/lvshell/pkg/field"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min field.Vec3 `json:"min"`
	Max field.Vec3 `json:"max"`
}

// NewBox returns the box spanning min and max.
func NewBox(min, max field.Vec3) Box {
	return Box{Min: min, Max: max}
}

// Size returns the box extent along each axis.
func (b Box) Size() field.Vec3 {
	return b.Max.Sub(b.Min)
}

// Empty reports whether the box has no volume.
func (b Box) Empty() bool {
	s := b.Size()
	return !(s.X > 0 && s.Y > 0 && s.Z > 0)
}

// Pad grows the box on every side by frac of its largest extent.
func (b Box) Pad(frac float64) Box {
	s := b.Size()
	d := frac * math.Max(s.X, math.Max(s.Y, s.Z))
	pad := field.Vec3{X: d, Y: d, Z: d}
	return Box{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// Kernel turns implicit fields into triangle meshes.
type Kernel interface {
	// ToMesh extracts the zero level set of f inside bounds.
	ToMesh(f field.ScalarField, bounds Box) (*Mesh, error)
}
