package skelmarch

import "github.com/chewxy/math32"

// Blend operators merge two signed distances into one. The smooth minimum
// variants produce a continuous fillet where surfaces meet instead of a
// sharp union seam. All satisfy smin(a,b,k) <= min(a,b) for k > 0 and
// approach min(a,b) as k shrinks toward zero.
//
// The scene composer folds exclusively with [SmoothMinPoly]; the other two
// variants are kept as options and carry the numeric caveats noted below.

// SmoothMinExp is the exponential smooth minimum -ln(e^-ka + e^-kb)/k.
// Overflows for large k*a or k*b.
func SmoothMinExp(a, b, k float32) float32 {
	return -math32.Log(math32.Exp(-k*a)+math32.Exp(-k*b)) / k
}

// SmoothMinPoly is the polynomial smooth minimum with blend width k.
// Numerically stable and O(1); this is the production blend.
func SmoothMinPoly(a, b, k float32) float32 {
	h := clampf(0.5+0.5*(b-a)/k, 0, 1)
	return mixf(b, a, h) - k*h*(1-h)
}

// SmoothMinPow is the power smooth minimum. Both operands must be
// non-negative: raising a negative inside-surface distance to a fractional
// power yields NaN.
func SmoothMinPow(a, b, k float32) float32 {
	a = math32.Pow(a, k)
	b = math32.Pow(b, k)
	return math32.Pow(a*b/(a+b), 1/k)
}

// Union is the hard boolean union of two distances.
func Union(a, b float32) float32 {
	return minf(a, b)
}

// Intersect is the hard boolean intersection of two distances.
func Intersect(a, b float32) float32 {
	return maxf(a, b)
}

// Difference carves the shape of b out of a.
func Difference(a, b float32) float32 {
	return maxf(a, -b)
}
