package skelmarch

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Distance functions for the primitive shapes a creature is assembled from.
// All of them take a point in the primitive's local frame and return the
// signed Euclidean distance to the surface: positive outside, negative
// inside, zero on the boundary. They are evaluated thousands of times per
// pixel so they allocate nothing and branch only where a clamp demands it.
//
// Shapes are centered at the local origin. Cylinders and capsules extend
// along the local z axis. Box dimensions are full extents, not half extents.

// Sphere returns the distance from p to a sphere of radius r.
func Sphere(p ms3.Vec, r float32) float32 {
	return ms3.Norm(p) - r
}

// Box returns the exact distance from p to an axis-aligned box with full
// dimensions size.
func Box(p, size ms3.Vec) float32 {
	d := ms3.Sub(ms3.AbsElem(p), ms3.Scale(0.5, size))
	return minf(maxf(d.X, maxf(d.Y, d.Z)), 0) + ms3.Norm(ms3.MaxElem(d, ms3.Vec{}))
}

// RoundedBox is Box with edges and corners filleted to radius round. The box
// is shrunk by round before evaluation and the result offset outward by
// round, leaving each face round/2 proud of the nominal size. round must
// stay below half the smallest dimension or the shape degenerates; that
// invariant is enforced by [Scene.Validate], never here.
func RoundedBox(p, size ms3.Vec, round float32) float32 {
	return Box(p, ms3.AddScalar(-round, size)) - round
}

// Cylinder returns the distance from p to a z-axis aligned cylinder of
// height h and radius r.
func Cylinder(p ms3.Vec, h, r float32) float32 {
	d := ms2.Vec{X: hypotf(p.X, p.Y) - r, Y: absf(p.Z) - 0.5*h}
	return minf(maxf(d.X, d.Y), 0) + ms2.Norm(ms2.MaxElem(d, ms2.Vec{}))
}

// RoundedCylinder is Cylinder with the rim filleted to radius round.
func RoundedCylinder(p ms3.Vec, h, r, round float32) float32 {
	return Cylinder(p, h-round, r-round) - round
}

// Capsule returns the distance from p to a z-axis aligned capsule whose
// segment spans [-h/2, h/2] with radius r.
func Capsule(p ms3.Vec, h, r float32) float32 {
	p.Z -= clampf(p.Z, -0.5*h, 0.5*h)
	return ms3.Norm(p) - r
}

// RoundedCapsule is Capsule with its segment shrunk by round and the result
// offset outward by round, trading segment length for girth.
func RoundedCapsule(p ms3.Vec, h, r, round float32) float32 {
	return Capsule(p, h-round, r) - round
}
