package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func vecNear(t *testing.T, got, want mgl32.Vec4, label string) {
	t.Helper()
	for i := 0; i < 4; i++ {
		if math.Abs(float64(got[i]-want[i])) > eps {
			t.Fatalf("%s = %v, want %v", label, got, want)
		}
	}
}

func matNear(t *testing.T, got, want mgl32.Mat4, label string) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(got[i]-want[i])) > eps {
			t.Fatalf("%s = %v, want %v", label, got, want)
		}
	}
}

func TestOrthographicMapsBoxCorners(t *testing.T) {
	proj := Orthographic(0, 200, 0, 200, -1, 10)

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	vecNear(t, near, mgl32.Vec4{-1, -1, -1, 1}, "near corner")

	far := proj.Mul4x1(mgl32.Vec4{200, 200, 10, 1})
	vecNear(t, far, mgl32.Vec4{1, 1, 1, 1}, "far corner")

	// Box center lands at the NDC origin.
	center := proj.Mul4x1(mgl32.Vec4{100, 100, 4.5, 1})
	vecNear(t, center, mgl32.Vec4{0, 0, 0, 1}, "center")
}

func TestOrthographicAsymmetricBox(t *testing.T) {
	proj := Orthographic(-50, 150, 10, 110, 2, 6)

	low := proj.Mul4x1(mgl32.Vec4{-50, 10, 2, 1})
	vecNear(t, low, mgl32.Vec4{-1, -1, -1, 1}, "low corner")

	high := proj.Mul4x1(mgl32.Vec4{150, 110, 6, 1})
	vecNear(t, high, mgl32.Vec4{1, 1, 1, 1}, "high corner")

	// No perspective: w stays 1 regardless of depth.
	if w := high[3]; math.Abs(float64(w-1)) > eps {
		t.Errorf("w = %v, want 1 (no perspective divide)", w)
	}
}

func TestOrthographicDeterministic(t *testing.T) {
	a := Orthographic(0, 300, 0, 200, -1, 10)
	b := Orthographic(0, 300, 0, 200, -1, 10)
	if a != b {
		t.Error("identical extents produced different matrices")
	}
}

func TestModelViewOriginPlacement(t *testing.T) {
	// With baseOffset 0 the mesh origin lands exactly at (x, y, depth),
	// flipped or not.
	for _, flip := range []bool{false, true} {
		mv := ModelView(42, -7, 5, flip, 0)
		got := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		vecNear(t, got, mgl32.Vec4{42, -7, 5, 1}, "origin placement")
	}
}

func TestModelViewBaseOffset(t *testing.T) {
	// flip=true keeps local +X; the offset point (-baseOffset,0,0) in local
	// space cancels the centering translation and lands at the instance
	// position.
	mv := ModelView(10, 20, 5, true, -15)
	got := mv.Mul4x1(mgl32.Vec4{15, 0, 0, 1})
	vecNear(t, got, mgl32.Vec4{10, 20, 5, 1}, "offset cancel, flip")

	// flip=false rotates by pi about Y, so the same local point mirrors
	// across the instance position in X.
	mv = ModelView(10, 20, 5, false, 0)
	got = mv.Mul4x1(mgl32.Vec4{3, 1, 0, 1})
	vecNear(t, got, mgl32.Vec4{7, 21, 5, 1}, "pi rotation mirror")
}

func TestRotationYFlipRoundTrip(t *testing.T) {
	// The two orientations differ by exactly a pi rotation about Y.
	matNear(t, RotationY(0).Mul4(RotationY(math.Pi)), RotationY(math.Pi), "0 then pi")

	// Applying the flip twice returns to the original orientation.
	matNear(t, RotationY(math.Pi).Mul4(RotationY(math.Pi)), Identity(), "pi twice")
}

func TestIdentityIsIdentity(t *testing.T) {
	matNear(t, Identity(), mgl32.Ident4(), "identity")
	p := mgl32.Vec4{1, 2, 3, 1}
	vecNear(t, Identity().Mul4x1(p), p, "identity transform")
}
