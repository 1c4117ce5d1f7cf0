package skelmarch

import (
	"github.com/soypat/glgl/math/ms3"
)

// Transform utilities build the 4x4 affine matrices that place primitive
// frames in the world. Primitives store world-to-local matrices: to evaluate
// a primitive at world point p the composer multiplies p by the stored
// matrix before calling the distance function, so callers hand over the
// inverse of a placement, not the placement itself. See [WorldToLocal].
//
// None of these check for orthonormality. A matrix carrying scale or shear
// distorts the field's metric and silently breaks the marcher's step-size
// assumption.

// Translation returns the matrix translating by v.
func Translation(v ms3.Vec) ms3.Mat4 {
	return ms3.TranslatingMat4(v)
}

// RotationX returns the matrix rotating by radians about the x axis.
func RotationX(radians float32) ms3.Mat4 {
	return ms3.RotatingMat4(radians, ms3.Vec{X: 1})
}

// RotationY returns the matrix rotating by radians about the y axis.
func RotationY(radians float32) ms3.Mat4 {
	return ms3.RotatingMat4(radians, ms3.Vec{Y: 1})
}

// RotationZ returns the matrix rotating by radians about the z axis.
func RotationZ(radians float32) ms3.Mat4 {
	return ms3.RotatingMat4(radians, ms3.Vec{Z: 1})
}

// Rotation returns the matrix rotating by radians about an arbitrary axis,
// per Rodrigues' formula. axis must be nonzero.
func Rotation(radians float32, axis ms3.Vec) ms3.Mat4 {
	return ms3.RotatingMat4(radians, axis)
}

// Compose multiplies the argument transforms left to right, so the rightmost
// transform applies to a point first.
func Compose(transforms ...ms3.Mat4) ms3.Mat4 {
	m := ms3.IdentityMat4()
	for _, t := range transforms {
		m = ms3.MulMat4(m, t)
	}
	return m
}

// Placement builds the local-to-world matrix for a frame rotated by rot and
// positioned at pos.
func Placement(rot ms3.Mat4, pos ms3.Vec) ms3.Mat4 {
	return ms3.MulMat4(Translation(pos), rot)
}

// WorldToLocal inverts a placement into the matrix a [Primitive] stores.
func WorldToLocal(placement ms3.Mat4) ms3.Mat4 {
	return placement.Inverse()
}
