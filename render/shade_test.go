package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func testShading(lightPos ms3.Vec) *Shading {
	return &Shading{
		Background: ms3.Vec{},
		Object:     ms3.Vec{X: 1},
		Light: Light{
			Position:       lightPos,
			AmbientScale:   0.5,
			DiffuseScale:   0.5,
			SpecularScale:  0.5,
			SpecularPow:    10,
			OcclusionScale: 1,
			OcclusionRange: 3,
			OcclusionStep:  1,
		},
	}
}

func TestShadeMissIsExactBackground(t *testing.T) {
	sh := testShading(ms3.Vec{Z: 5})
	sh.Background = ms3.Vec{X: 0.1, Y: 0.2, Z: 0.3}
	s := sphereAt(ms3.Vec{}, 1)
	ray := Ray{Origin: ms3.Vec{Z: 5}, Dir: ms3.Vec{Z: 1}}
	got := sh.Shade(s, ray, MaxDist)
	if got != sh.Background {
		t.Errorf("miss color %+v, want exact background %+v", got, sh.Background)
	}
}

func TestShadeHeadOnLight(t *testing.T) {
	// Light behind the camera, ray hits the sphere pole straight on: the
	// diffuse and specular dot products are both 1, so the red channel is
	// ambient + diffuse + specular = 1.5. The probe along the normal is
	// unobstructed, so occlusion leaves the color untouched.
	sh := testShading(ms3.Vec{Z: 5})
	s := sphereAt(ms3.Vec{}, 1)
	ray := Ray{Origin: ms3.Vec{Z: 5}, Dir: ms3.Vec{Z: -1}}
	got := sh.Shade(s, ray, 4)
	if math32.Abs(got.X-1.5) > 1e-3 {
		t.Errorf("red channel %g, want 1.5", got.X)
	}
	if got.Y != 0 || got.Z != 0 {
		t.Errorf("green/blue channels %+v, want 0 for a red object", got)
	}
}

func TestShadeSurfaceFacingAwayFromLight(t *testing.T) {
	// Light directly behind the hit point: the Phong term drops out and
	// only the ambient contribution remains.
	sh := testShading(ms3.Vec{Z: -5})
	s := sphereAt(ms3.Vec{}, 1)
	ray := Ray{Origin: ms3.Vec{Z: 5}, Dir: ms3.Vec{Z: -1}}
	got := sh.Shade(s, ray, 4)
	want := sh.Light.AmbientScale * sh.Object.X
	if math32.Abs(got.X-want) > 1e-3 {
		t.Errorf("red channel %g, want ambient-only %g", got.X, want)
	}
}

func TestReflect(t *testing.T) {
	// 45 degree incidence on the z plane flips the z component.
	i := ms3.Unit(ms3.Vec{X: 1, Z: -1})
	n := ms3.Vec{Z: 1}
	got := reflect(i, n)
	want := ms3.Unit(ms3.Vec{X: 1, Z: 1})
	if ms3.Norm(ms3.Sub(got, want)) > tol {
		t.Errorf("reflected %+v, want %+v", got, want)
	}
}
