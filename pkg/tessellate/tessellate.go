// Package tessellate turns the fields of an anatomical shell into
// triangle meshes using a geometry kernel. One mesh is produced per
// surface.
package tessellate

import (
	"fmt"

	"github.com/chazu/lvshell/pkg/anatomy"
	"github.com/chazu/lvshell/pkg/kernel"
)

// DefaultPadding is the fraction of the largest bounds extent added on
// every side so that no surface touches the sampling region's edge.
const DefaultPadding = 0.1

// Bounds returns the padded sampling region for p.
func Bounds(p anatomy.Params, padding float64) (kernel.Box, error) {
	min, max := p.Bounds()
	b := kernel.NewBox(min, max)
	if b.Empty() {
		return kernel.Box{}, fmt.Errorf("tessellate: truncation interval [%g, %g] misses the structure", p.Z0, p.Z1)
	}
	return b.Pad(padding), nil
}

// Tessellate meshes every surface of fs inside bounds, in the order
// endo, epi, myo. Each mesh is tagged with its surface name. The fields
// are only evaluated, never retained.
func Tessellate(fs anatomy.Fields, bounds kernel.Box, k kernel.Kernel) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(anatomy.Surfaces))
	for _, name := range anatomy.Surfaces {
		f := fs.Get(name)
		if f == nil {
			return nil, fmt.Errorf("tessellate: surface %s has no field", name)
		}
		m, err := k.ToMesh(f, bounds)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for surface %s: %w", name, err)
		}
		m.Surface = name
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// TessellateParams builds the shell described by p and meshes it inside
// its own padded bounds.
func TessellateParams(p anatomy.Params, padding float64, k kernel.Kernel) ([]*kernel.Mesh, error) {
	fs, err := anatomy.Build(p)
	if err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	b, err := Bounds(p, padding)
	if err != nil {
		return nil, err
	}
	return Tessellate(fs, b, k)
}
