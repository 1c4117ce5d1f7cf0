package render

import (
	"github.com/soypat/glgl/math/ms3"
)

// Marching constants. Epsilon doubles as the hit tolerance and the normal
// estimation step.
const (
	// Epsilon is the surface hit tolerance.
	Epsilon = 1e-4
	// MaxSteps bounds the sphere tracing loop.
	MaxSteps = 255
	// MinDist is the depth marching starts from.
	MinDist = 0.0
	// MaxDist is the far plane. March reports it verbatim on a miss, so it
	// doubles as the no-hit sentinel.
	MaxDist = 100.0
)

// epstol guards near-zero denominators such as degenerate gradient norms.
const epstol = 6e-7

// SDF is a scalar signed distance field. [skelmarch.Scene] implements it.
//
// Sphere tracing converges only if Distance is a lower bound on the true
// distance to the nearest surface. Smooth blends with large widths can
// violate the bound locally; in practice the overshoot is small enough that
// the next iteration recovers.
type SDF interface {
	Distance(p ms3.Vec) float32
}

// March sphere-traces ray through s starting at depth start. It returns the
// depth of first surface contact, or end if the ray reaches depth end or
// exhausts MaxSteps without converging. Non-convergence is a silent
// approximation, not an error.
func March(s SDF, ray Ray, start, end float32) float32 {
	depth := start
	for i := 0; i < MaxSteps; i++ {
		dist := s.Distance(ray.At(depth))
		if dist < Epsilon {
			return depth
		}
		depth += dist
		if depth >= end {
			return end
		}
	}
	return end
}

// Normal estimates the surface normal at p by central differences of s with
// step Epsilon along each axis, six extra field evaluations. At a flat blend
// saddle the gradient vanishes and normalization is undefined; Normal
// returns the zero vector there and shading substitutes the view direction.
func Normal(s SDF, p ms3.Vec) ms3.Vec {
	ex := ms3.Vec{X: Epsilon}
	ey := ms3.Vec{Y: Epsilon}
	ez := ms3.Vec{Z: Epsilon}
	grad := ms3.Vec{
		X: s.Distance(ms3.Add(p, ex)) - s.Distance(ms3.Sub(p, ex)),
		Y: s.Distance(ms3.Add(p, ey)) - s.Distance(ms3.Sub(p, ey)),
		Z: s.Distance(ms3.Add(p, ez)) - s.Distance(ms3.Sub(p, ez)),
	}
	norm := ms3.Norm(grad)
	if norm < epstol {
		return ms3.Vec{}
	}
	return ms3.Scale(1/norm, grad)
}

// AmbientOcclusion probes s along the surface normal at increasing offsets
// and accumulates an occlusion factor, 1 meaning fully unoccluded. Whenever
// a sample reports geometry closer than the probe offset, the factor blends
// down weighted by how far along the probe the sample sits.
//
// The blend is a tuned visual heuristic, not a normalized integral, and the
// factor is deliberately never clamped after blending. Reproduce, don't fix.
func AmbientOcclusion(s SDF, p, normal ms3.Vec, maxRange, step float32) float32 {
	const minT = 0.01
	occlusion := float32(1)
	for t := float32(minT); t <= maxRange; t += step {
		dist := s.Distance(ms3.Add(p, ms3.Scale(t, normal)))
		if dist < t-Epsilon {
			normT := (t - minT) / (maxRange - minT)
			occlusion = occlusion*normT + occlusion*(dist/t)*(1-normT)
			if occlusion <= 0 {
				return occlusion
			}
		}
	}
	return occlusion
}
