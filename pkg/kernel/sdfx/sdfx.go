// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/chazu/lvshell/pkg/field"
	"github.com/chazu/lvshell/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*SdfxKernel)(nil)
	_ sdf.SDF3      = (*fieldSDF)(nil)
)

// DefaultMeshCells controls marching cubes tessellation resolution along
// the longest axis of the bounds.
const DefaultMeshCells = 200

// fieldSDF wraps a field.ScalarField to implement sdf.SDF3.
type fieldSDF struct {
	f  field.ScalarField
	bb sdf.Box3
}

// Evaluate returns the field value at p.
func (s *fieldSDF) Evaluate(p v3.Vec) float64 {
	return s.f.Evaluate(p.X, p.Y, p.Z)
}

// BoundingBox returns the sampling region.
func (s *fieldSDF) BoundingBox() sdf.Box3 {
	return s.bb
}

// SDF3 adapts f to sdfx, restricted to bounds. The field itself is total;
// bounds only tell sdfx renderers where to sample.
func SDF3(f field.ScalarField, bounds kernel.Box) sdf.SDF3 {
	return &fieldSDF{
		f: f,
		bb: sdf.Box3{
			Min: v3.Vec{X: bounds.Min.X, Y: bounds.Min.Y, Z: bounds.Min.Z},
			Max: v3.Vec{X: bounds.Max.X, Y: bounds.Max.Y, Z: bounds.Max.Z},
		},
	}
}

// SdfxKernel implements kernel.Kernel using sdfx marching cubes.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel sampling with the given number of cells
// along the longest axis. Non-positive values select DefaultMeshCells.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int {
	return k.cells
}

// ToMesh converts the zero level set of f inside bounds to a triangle
// mesh using marching cubes.
func (k *SdfxKernel) ToMesh(f field.ScalarField, bounds kernel.Box) (*kernel.Mesh, error) {
	if f == nil {
		return nil, fmt.Errorf("sdfx: nil field")
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("sdfx: empty bounds %v..%v", bounds.Min, bounds.Max)
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(SDF3(f, bounds), renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
