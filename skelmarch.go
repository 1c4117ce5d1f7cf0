// Package skelmarch evaluates the signed distance field of an articulated
// creature: a fixed collection of joint primitives and edge (bone) primitives
// blended together with smooth minimums, plus a ground volume. The combined
// field is a pure function of a per-frame Scene snapshot and a world point,
// suitable for sphere tracing.
package skelmarch

import "github.com/chewxy/math32"

const (
	// farDist seeds every distance fold before the first primitive is
	// applied. Folding smooth minimums against it leaves the other operand
	// effectively untouched.
	farDist = 1000.0
	// epstol is used to check for badly conditioned denominators such as
	// lengths used for normalization.
	epstol = 6e-7
)

func minf(a, b float32) float32 {
	return math32.Min(a, b)
}

func maxf(a, b float32) float32 {
	return math32.Max(a, b)
}

func absf(a float32) float32 {
	return math32.Abs(a)
}

func hypotf(a, b float32) float32 {
	return math32.Hypot(a, b)
}

func clampf(v, Min, Max float32) float32 {
	if v < Min {
		return Min
	} else if v > Max {
		return Max
	}
	return v
}

func mixf(x, y, a float32) float32 {
	return x*(1-a) + y*a
}
