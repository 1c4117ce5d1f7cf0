package skelmarch

import (
	"errors"
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// PrimitiveKind selects a primitive's distance function. The numeric codes
// match the external driver protocol and must not be reordered.
type PrimitiveKind int32

const (
	KindSphere PrimitiveKind = iota
	KindBox
	KindCapsule
	KindCylinder
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	case KindCylinder:
		return "cylinder"
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int32(k))
}

// Numbers of primitives in a creature. The skeleton layout is fixed: one
// primitive per tracked joint and one per connecting bone.
const (
	JointCount = 28
	EdgeCount  = 27
)

// Primitive is one shape in the combined field. It is constructed once per
// frame from external pose data and immutable during an evaluation pass.
//
// Size is interpreted per kind: X is the sphere, capsule and cylinder
// radius; box uses all three components as full extents; Z is the capsule
// and cylinder height. Box, capsule and cylinder always evaluate through
// their rounded variants.
type Primitive struct {
	Kind PrimitiveKind
	// WorldToLocal maps world points into the primitive's local frame.
	// It must be the inverse of the placement and rigid (rotation plus
	// translation, no scale).
	WorldToLocal ms3.Mat4
	Size         ms3.Vec
	// Rounding is the edge/corner fillet radius for box, capsule and
	// cylinder. It must stay below half the smallest relevant size
	// component; see Validate.
	Rounding float32
	// Smoothing is the blend width with which this primitive merges into
	// its group's running union.
	Smoothing float32
	// Length scales the local long axis of edge primitives so that a bone's
	// shape spans Length*Size.Z. Ignored for joints and the ground.
	Length float32
}

// distance evaluates the primitive at world point p with the long axis
// scaled by length.
func (prim *Primitive) distance(p ms3.Vec, length float32) float32 {
	q := prim.WorldToLocal.MulPosition(p)
	switch prim.Kind {
	case KindSphere:
		return Sphere(q, prim.Size.X)
	case KindBox:
		size := prim.Size
		size.Z *= length
		return RoundedBox(q, size, prim.Rounding)
	case KindCapsule:
		return RoundedCapsule(q, length*prim.Size.Z, prim.Size.X, prim.Rounding)
	case KindCylinder:
		return RoundedCylinder(q, length*prim.Size.Z, prim.Size.X, prim.Rounding)
	}
	return farDist
}

// Scene is the full per-frame snapshot of the creature: the joint and edge
// collections, the ground volume and the group blend widths. A Scene must be
// treated as immutable for the duration of one frame's evaluation; all
// mutation happens externally between frames.
type Scene struct {
	Joints [JointCount]Primitive
	Edges  [EdgeCount]Primitive
	Ground Primitive
	// JointEdgeSmoothing blends the joint union with the edge union.
	JointEdgeSmoothing float32
	// GroundSmoothing blends the combined body into the ground.
	GroundSmoothing float32
}

// Distance evaluates the combined creature field at world point p. Each
// collection folds left to right in array order through the polynomial
// smooth minimum, seeded from a far sentinel; then joints blend with edges,
// and the body blends with the ground. The result is a near-1-Lipschitz
// estimate of Euclidean distance; large blend widths can locally exceed the
// true distance, an accepted approximation of sphere tracing over smooth
// unions.
func (s *Scene) Distance(p ms3.Vec) float32 {
	distJoints := float32(farDist)
	for i := range s.Joints {
		prim := &s.Joints[i]
		distJoints = SmoothMinPoly(distJoints, prim.distance(p, 1), prim.Smoothing)
	}
	distEdges := float32(farDist)
	for i := range s.Edges {
		prim := &s.Edges[i]
		distEdges = SmoothMinPoly(distEdges, prim.distance(p, prim.Length), prim.Smoothing)
	}
	distGround := SmoothMinPoly(farDist, s.Ground.distance(p, 1), s.Ground.Smoothing)
	distBody := SmoothMinPoly(distJoints, distEdges, s.JointEdgeSmoothing)
	return SmoothMinPoly(distBody, distGround, s.GroundSmoothing)
}

// Validate checks the scene invariants the evaluation hot path assumes and
// never verifies itself. Run it once per frame after pose upload, outside
// the per-pixel path. All violations are accumulated and reported together.
// A scene that skips validation degrades silently rather than failing:
// out-of-range rounding inverts the rounded shape, non-positive smoothing
// produces non-finite blends.
func (s *Scene) Validate() error {
	var errs []error
	for i := range s.Joints {
		if err := s.Joints[i].validate(false); err != nil {
			errs = append(errs, fmt.Errorf("joint %d: %w", i, err))
		}
	}
	for i := range s.Edges {
		if err := s.Edges[i].validate(true); err != nil {
			errs = append(errs, fmt.Errorf("edge %d: %w", i, err))
		}
	}
	if err := s.Ground.validate(false); err != nil {
		errs = append(errs, fmt.Errorf("ground: %w", err))
	}
	if s.JointEdgeSmoothing <= 0 {
		errs = append(errs, errors.New("non-positive joint-edge smoothing"))
	}
	if s.GroundSmoothing <= 0 {
		errs = append(errs, errors.New("non-positive ground smoothing"))
	}
	return errors.Join(errs...)
}

func (prim *Primitive) validate(isEdge bool) error {
	var errs []error
	if prim.Kind < KindSphere || prim.Kind > KindCylinder {
		errs = append(errs, fmt.Errorf("unknown primitive kind %d", int32(prim.Kind)))
	}
	if prim.Smoothing <= 0 {
		errs = append(errs, errors.New("non-positive smoothing"))
	}
	if prim.Rounding < 0 {
		errs = append(errs, errors.New("negative rounding"))
	}
	if isEdge && prim.Length <= 0 {
		errs = append(errs, errors.New("non-positive edge length"))
	}
	length := float32(1)
	if isEdge {
		length = prim.Length
	}
	switch prim.Kind {
	case KindSphere:
		if prim.Size.X <= 0 {
			errs = append(errs, errors.New("non-positive sphere radius"))
		}
	case KindBox:
		if prim.Size.X <= 0 || prim.Size.Y <= 0 || prim.Size.Z <= 0 {
			errs = append(errs, errors.New("non-positive box dimension"))
		}
		smallest := minf(prim.Size.X, minf(prim.Size.Y, length*prim.Size.Z))
		if prim.Rounding >= 0.5*smallest {
			errs = append(errs, fmt.Errorf("rounding %g exceeds half the smallest box dimension %g", prim.Rounding, smallest))
		}
	case KindCapsule, KindCylinder:
		if prim.Size.X <= 0 {
			errs = append(errs, fmt.Errorf("non-positive %v radius", prim.Kind))
		}
		if prim.Size.Z <= 0 {
			errs = append(errs, fmt.Errorf("non-positive %v height", prim.Kind))
		}
		smallest := minf(prim.Size.X, 0.5*length*prim.Size.Z)
		if prim.Rounding >= smallest {
			errs = append(errs, fmt.Errorf("rounding %g exceeds smallest %v extent %g", prim.Rounding, prim.Kind, smallest))
		}
	}
	return errors.Join(errs...)
}
