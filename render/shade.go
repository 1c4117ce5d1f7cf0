package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Light holds the point light and the scales of the Phong and occlusion
// terms. OcclusionRange and OcclusionStep parameterize the directional
// probe of [AmbientOcclusion].
type Light struct {
	Position       ms3.Vec
	AmbientScale   float32
	DiffuseScale   float32
	SpecularScale  float32
	SpecularPow    float32
	OcclusionScale float32
	OcclusionRange float32
	OcclusionStep  float32
}

// Shading is the immutable per-frame color configuration: background color,
// object base color and the light. Colors are linear RGB in [0,1].
type Shading struct {
	Background ms3.Vec
	Object     ms3.Vec
	Light      Light
}

// Shade composes the final color for a marched ray. dist is the result of
// [March]; at the far plane the pixel is background. On a hit the color is
// ambient plus the Phong term, then darkened by occlusion toward the
// background color rather than toward black, a deliberate stylistic choice.
// Alpha is always 1 and applied by the caller at image conversion.
func (sh *Shading) Shade(s SDF, ray Ray, dist float32) ms3.Vec {
	if dist >= MaxDist {
		return sh.Background
	}
	p := ray.At(dist)
	view := ms3.Unit(ms3.Sub(ray.Origin, p))
	normal := Normal(s, p)
	if normal == (ms3.Vec{}) {
		// Degenerate gradient at a blend saddle; face the camera so the
		// lighting terms stay finite.
		normal = view
	}

	ambient := ms3.Scale(sh.Light.AmbientScale, sh.Object)
	color := ms3.Add(ambient, sh.phong(p, normal, view))

	occlusion := AmbientOcclusion(s, p, normal, sh.Light.OcclusionRange, sh.Light.OcclusionStep)
	strength := (1 - occlusion) * sh.Light.OcclusionScale
	return ms3.Sub(color, ms3.Scale(strength, ms3.Sub(color, sh.Background)))
}

// phong returns the diffuse+specular contribution of the light at surface
// point p.
func (sh *Shading) phong(p, normal, view ms3.Vec) ms3.Vec {
	light := ms3.Unit(ms3.Sub(sh.Light.Position, p))
	reflected := ms3.Unit(reflect(ms3.Scale(-1, light), normal))
	dotLN := ms3.Dot(light, normal)
	dotRV := ms3.Dot(reflected, view)
	if dotLN < 0 {
		// Surface faces away from the light.
		return ms3.Vec{}
	}
	diffuse := ms3.Scale(sh.Light.DiffuseScale*dotLN, sh.Object)
	if dotRV < 0 {
		// Light reflects away from the viewer; diffuse only.
		return diffuse
	}
	specular := ms3.Scale(sh.Light.SpecularScale*math32.Pow(dotRV, sh.Light.SpecularPow), sh.Object)
	return ms3.Add(diffuse, specular)
}

// reflect mirrors incident direction i about normal n.
func reflect(i, n ms3.Vec) ms3.Vec {
	return ms3.Sub(i, ms3.Scale(2*ms3.Dot(n, i), n))
}
