package field

import (
	"math"
	"testing"
)

// samplePoints is a small deterministic spread of points around the origin.
func samplePoints() []Vec3 {
	var pts []Vec3
	for _, x := range []float64{-13, -4.5, 0, 2, 11} {
		for _, y := range []float64{-9, 0, 3.25} {
			for _, z := range []float64{-7, -1, 0, 6, 14} {
				pts = append(pts, Vec3{x, y, z})
			}
		}
	}
	return pts
}

// sphere returns |p-c|^2 - r^2.
func sphere(c Vec3, r float64) ScalarField {
	return Func(func(x, y, z float64) float64 {
		dx, dy, dz := x-c.X, y-c.Y, z-c.Z
		return dx*dx + dy*dy + dz*dz - r*r
	})
}

func TestFuncEvaluate(t *testing.T) {
	f := Func(func(x, y, z float64) float64 { return x + 2*y + 3*z })
	if got := f.Evaluate(1, 2, 3); got != 14 {
		t.Errorf("Evaluate = %g, want 14", got)
	}
}

func TestTranslate(t *testing.T) {
	base := MustTruncatedEllipsoidSegment(10, 8, 15, -5, 10, Vec3{X: 1, Y: 2, Z: 3})
	moved := Translate(base, 4, -6, 2.5)

	for _, p := range samplePoints() {
		got := At(moved, p)
		want := base.Evaluate(p.X-4, p.Y+6, p.Z-2.5)
		if got != want {
			t.Errorf("Translate at %v = %g, want %g", p, got, want)
		}
	}

	// The solid moves in the positive direction of the offset.
	s := Translate(sphere(Vec3{}, 1), 100, 0, 0)
	if !Inside(s, Vec3{X: 100}) {
		t.Error("translated sphere should contain (100,0,0)")
	}
	if Inside(s, Vec3{}) {
		t.Error("translated sphere should no longer contain the origin")
	}
}

func TestUnion(t *testing.T) {
	fa := sphere(Vec3{X: -3}, 5)
	fb := MustTruncatedEllipsoidSegment(6, 4, 9, -2, 8, Vec3{X: 4})

	ab := Union(fa, fb)
	ba := Union(fb, fa)
	for _, p := range samplePoints() {
		got := At(ab, p)
		want := math.Min(At(fa, p), At(fb, p))
		if got != want {
			t.Errorf("Union at %v = %g, want %g", p, got, want)
		}
		if got != At(ba, p) {
			t.Errorf("Union not commutative at %v: %g vs %g", p, got, At(ba, p))
		}
	}
}

func TestUnionAssociative(t *testing.T) {
	fa := sphere(Vec3{X: -3}, 5)
	fb := sphere(Vec3{Y: 4}, 2)
	fc := MustTruncatedEllipsoidSegment(6, 4, 9, -2, 8, Vec3{X: 4})

	left := Union(Union(fa, fb), fc)
	right := Union(fa, Union(fb, fc))
	all := UnionAll(fa, fb, fc)
	for _, p := range samplePoints() {
		l, r, u := At(left, p), At(right, p), At(all, p)
		if l != r || l != u {
			t.Errorf("union grouping differs at %v: %g %g %g", p, l, r, u)
		}
	}
}

func TestUnionAllSingleAndEmpty(t *testing.T) {
	fa := sphere(Vec3{}, 2)
	if got, want := UnionAll(fa).Evaluate(1, 1, 1), fa.Evaluate(1, 1, 1); got != want {
		t.Errorf("UnionAll(single) = %g, want %g", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty UnionAll")
		}
	}()
	UnionAll()
}

func TestIntersect(t *testing.T) {
	fa := sphere(Vec3{X: -1}, 3)
	fb := sphere(Vec3{X: 1}, 3)
	f := Intersect(fa, fb)
	for _, p := range samplePoints() {
		if got, want := At(f, p), math.Max(At(fa, p), At(fb, p)); got != want {
			t.Errorf("Intersect at %v = %g, want %g", p, got, want)
		}
	}
	if !Inside(f, Vec3{}) {
		t.Error("lens should contain the origin")
	}
	if Inside(f, Vec3{X: -3.5}) {
		t.Error("lens should not contain (-3.5,0,0)")
	}
}

func TestDifference(t *testing.T) {
	outer := sphere(Vec3{}, 10)
	inner := sphere(Vec3{}, 5)

	d := Difference(outer, inner)
	for _, p := range samplePoints() {
		if got, want := At(d, p), math.Max(At(outer, p), -At(inner, p)); got != want {
			t.Errorf("Difference at %v = %g, want %g", p, got, want)
		}
	}

	// Shell membership.
	if Inside(d, Vec3{}) {
		t.Error("hollow center should be excluded")
	}
	if !Inside(d, Vec3{X: 7}) {
		t.Error("shell point (7,0,0) should be included")
	}
	if Inside(d, Vec3{X: 11}) {
		t.Error("point beyond outer should be excluded")
	}
}

func TestDifferenceNotCommutative(t *testing.T) {
	outer := sphere(Vec3{}, 10)
	inner := sphere(Vec3{}, 5)

	// Inside both operands.
	p := Vec3{X: 1}
	if v := At(Difference(outer, inner), p); v < 0 {
		t.Errorf("outer minus inner at %v = %g, want >= 0", p, v)
	}
	// Inside outer only: in the shell one way, excluded the other.
	q := Vec3{X: 7}
	ab := At(Difference(outer, inner), q)
	ba := At(Difference(inner, outer), q)
	if ab >= 0 || ba <= 0 {
		t.Errorf("expected order-sensitive result at %v, got %g and %g", q, ab, ba)
	}
}

func TestFieldsConcurrentEvaluation(t *testing.T) {
	f := Difference(
		Translate(MustTruncatedEllipsoidSegment(12, 12, 17, -5, 10, Vec3{}), 1, 1, 1),
		MustTruncatedEllipsoidSegment(10, 10, 15, -5, 10, Vec3{}),
	)
	pts := samplePoints()
	want := make([]float64, len(pts))
	for i, p := range pts {
		want[i] = At(f, p)
	}

	const workers = 8
	done := make(chan []float64, workers)
	for w := 0; w < workers; w++ {
		go func() {
			got := make([]float64, len(pts))
			for i := len(pts) - 1; i >= 0; i-- {
				got[i] = At(f, pts[i])
			}
			done <- got
		}()
	}
	for w := 0; w < workers; w++ {
		got := <-done
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("concurrent evaluation differs at %v: %g vs %g", pts[i], got[i], want[i])
			}
		}
	}
}
