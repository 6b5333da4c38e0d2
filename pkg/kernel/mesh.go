package kernel

import (
	"math"

	"github.com/chazu/lvshell/pkg/field"
)

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Surface  string    `json:"surface"`  // endo, epi or myo
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the box spanned by the mesh vertices. An empty mesh
// returns the zero Box.
func (m *Mesh) Bounds() Box {
	if m.IsEmpty() {
		return Box{}
	}
	lo := field.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := field.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		x, y, z := float64(m.Vertices[i]), float64(m.Vertices[i+1]), float64(m.Vertices[i+2])
		lo = field.Vec3{X: math.Min(lo.X, x), Y: math.Min(lo.Y, y), Z: math.Min(lo.Z, z)}
		hi = field.Vec3{X: math.Max(hi.X, x), Y: math.Max(hi.Y, y), Z: math.Max(hi.Z, z)}
	}
	return Box{Min: lo, Max: hi}
}
