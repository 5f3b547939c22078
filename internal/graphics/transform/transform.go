// Package transform holds the pure matrix math feeding each draw call.
// Every function is deterministic and free of shared state, so callers can
// cache results (notably the projection matrix) across frames.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// identity is precomputed once; composition starts from it instead of
// rebuilding it per draw.
var identity = mgl32.Ident4()

// Identity returns the precomputed 4x4 identity matrix.
func Identity() mgl32.Mat4 {
	return identity
}

// Orthographic maps the axis-aligned box [left,right]x[bottom,top]x[near,far]
// onto the NDC cube [-1,1] on all axes, column-major, with linear depth and
// no perspective divide. Near maps to -1 and far to +1 directly; there is no
// eye-space Z negation, which is why this does not delegate to mgl32.Ortho.
//
// Degenerate extents (right==left, top==bottom, far==near) divide by zero;
// callers must validate viewport dimensions before calling.
func Orthographic(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 2 / (far - near), 0,
		-(right + left) / (right - left),
		-(top + bottom) / (top - bottom),
		-(far + near) / (far - near),
		1,
	}
}

// RotationY returns a rotation of rad radians about the vertical axis.
func RotationY(rad float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(rad)
}

// ModelView composes the per-instance transform:
//
//	translate(x, y, depth) * rotateY(flip ? 0 : pi) * translate(baseOffset, 0, 0)
//
// with the rightmost factor applied first to local geometry. The mesh faces
// along +X when flipped and is mirrored about the vertical axis otherwise;
// baseOffset recenters the mesh on its own origin before the rotation.
func ModelView(x, y, depth float32, flip bool, baseOffset float32) mgl32.Mat4 {
	rot := float32(math.Pi)
	if flip {
		rot = 0
	}
	m := identity
	m = m.Mul4(mgl32.Translate3D(x, y, depth))
	m = m.Mul4(RotationY(rot))
	m = m.Mul4(mgl32.Translate3D(baseOffset, 0, 0))
	return m
}
