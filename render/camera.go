// Package render sphere-traces camera rays against a creature's signed
// distance field and shades the hits into pixels. One pixel is one
// independent pure evaluation of (scene, camera, light, coordinate); the
// renderer fans evaluations out across scanline workers with no shared
// mutable state.
package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Camera derives one world-space ray per pixel. Target and Up default to
// the creature convention: subject centered at the origin, up along -z.
type Camera struct {
	Position ms3.Vec
	// FOVDegrees is the vertical field of view.
	FOVDegrees float32
	Target     ms3.Vec
	Up         ms3.Vec
}

// NewCamera returns a camera at pos aimed at the origin with the
// creature-space up axis (-z).
func NewCamera(pos ms3.Vec, fovDegrees float32) Camera {
	return Camera{
		Position:   pos,
		FOVDegrees: fovDegrees,
		Up:         ms3.Vec{Z: -1},
	}
}

// Ray is one camera ray, ephemeral per pixel. Dir is unit length.
type Ray struct {
	Origin ms3.Vec
	Dir    ms3.Vec
}

// At returns the point depth units along the ray.
func (r Ray) At(depth float32) ms3.Vec {
	return ms3.Add(r.Origin, ms3.Scale(depth, r.Dir))
}

// rayDirection returns the view-space direction through the pixel at
// normalized coordinate frag, for a vertical field of view in degrees.
// The camera looks down -z in view space.
func rayDirection(fovDegrees float32, frag ms2.Vec) ms3.Vec {
	z := -1 / math32.Tan(0.5*fovDegrees*math32.Pi/180)
	return ms3.Unit(ms3.Vec{X: frag.X, Y: frag.Y, Z: z})
}

// PixelRay builds the world-space ray through the pixel at normalized
// device coordinate frag, conventionally in [-aspect,aspect] x [-1,1].
// The view basis is orthonormal (forward toward Target, right, true up)
// and maps directions only; translation never applies to directions, so
// the ray origin is the camera position itself.
func (c Camera) PixelRay(frag ms2.Vec) Ray {
	d := rayDirection(c.FOVDegrees, frag)
	forward := ms3.Unit(ms3.Sub(c.Target, c.Position))
	right := ms3.Unit(ms3.Cross(forward, c.Up))
	up := ms3.Cross(right, forward)
	world := ms3.Add(
		ms3.Add(ms3.Scale(d.X, right), ms3.Scale(d.Y, up)),
		ms3.Scale(-d.Z, forward),
	)
	return Ray{Origin: c.Position, Dir: world}
}
