package tessellate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/lvshell/pkg/anatomy"
	"github.com/chazu/lvshell/pkg/field"
	"github.com/chazu/lvshell/pkg/kernel"
	"github.com/chazu/lvshell/pkg/kernel/sdfx"
	"github.com/chazu/lvshell/pkg/tessellate"
)

// newKernel returns a coarse sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.New(40)
}

// lvParams returns the reference left-ventricle parameters.
func lvParams() anatomy.Params {
	return anatomy.Params{A: 10, B: 10, C: 15, Wall: 2, Z0: -5, Z1: 10}
}

// failingKernel returns an error for every call.
type failingKernel struct{}

func (failingKernel) ToMesh(field.ScalarField, kernel.Box) (*kernel.Mesh, error) {
	return nil, errors.New("boom")
}

func TestBounds(t *testing.T) {
	b, err := tessellate.Bounds(lvParams(), 0)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	want := kernel.NewBox(field.Vec3{X: -12, Y: -12, Z: -5}, field.Vec3{X: 12, Y: 12, Z: 10})
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}

	padded, err := tessellate.Bounds(lvParams(), tessellate.DefaultPadding)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if padded.Min.X >= b.Min.X || padded.Max.Z <= b.Max.Z {
		t.Errorf("padded bounds %+v should contain %+v", padded, b)
	}
}

func TestBoundsSlabMissesStructure(t *testing.T) {
	p := lvParams()
	p.Z0, p.Z1 = 40, 50
	if _, err := tessellate.Bounds(p, 0); err == nil {
		t.Fatal("expected error for a slab above the structure")
	}
}

func TestTessellateShell(t *testing.T) {
	meshes, err := tessellate.TessellateParams(lvParams(), tessellate.DefaultPadding, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(meshes))
	}

	for i, want := range []string{anatomy.Endo, anatomy.Epi, anatomy.Myo} {
		m := meshes[i]
		if m.Surface != want {
			t.Errorf("mesh %d: Surface = %q, want %q", i, m.Surface, want)
		}
		if m.IsEmpty() {
			t.Errorf("mesh %q should not be empty", m.Surface)
		}
	}

	endo, epi, myo := meshes[0], meshes[1], meshes[2]
	if epi.Bounds().Size().X <= endo.Bounds().Size().X {
		t.Errorf("epi x extent %.2f should exceed endo x extent %.2f",
			epi.Bounds().Size().X, endo.Bounds().Size().X)
	}
	if myo.TriangleCount() <= epi.TriangleCount() {
		t.Errorf("myo (%d triangles) should exceed epi (%d triangles)", myo.TriangleCount(), epi.TriangleCount())
	}
}

func TestTessellateOffCenter(t *testing.T) {
	p := lvParams()
	p.Center = field.Vec3{X: 50, Y: -20, Z: 5}
	meshes, err := tessellate.TessellateParams(p, tessellate.DefaultPadding, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	// Epicardium spans center.x ± 12 in x and center.z + [z0, z1] in z.
	const tol = 1.0
	bb := meshes[1].Bounds()
	if abs(bb.Min.X-38) > tol || abs(bb.Max.X-62) > tol {
		t.Errorf("epi x range %.2f..%.2f, expected near 38..62", bb.Min.X, bb.Max.X)
	}
	if abs(bb.Min.Z-0) > tol || abs(bb.Max.Z-15) > tol {
		t.Errorf("epi z range %.2f..%.2f, expected near 0..15", bb.Min.Z, bb.Max.Z)
	}
}

func TestTessellateInvalidParams(t *testing.T) {
	p := lvParams()
	p.A = 0
	_, err := tessellate.TessellateParams(p, 0, newKernel())
	if !errors.Is(err, field.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestTessellateKernelError(t *testing.T) {
	fs, err := anatomy.Build(lvParams())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, _ := tessellate.Bounds(lvParams(), 0)
	_, err = tessellate.Tessellate(fs, b, failingKernel{})
	if err == nil {
		t.Fatal("expected error from failing kernel")
	}
	if !strings.Contains(err.Error(), "endo") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should name the surface and the cause", err)
	}
}

func TestTessellateMissingField(t *testing.T) {
	fs, err := anatomy.Build(lvParams())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	fs.Myo = nil
	b, _ := tessellate.Bounds(lvParams(), 0)
	if _, err := tessellate.Tessellate(fs, b, newKernel()); err == nil {
		t.Fatal("expected error for missing myo field")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
