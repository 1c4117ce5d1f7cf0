// Package skeleton derives per-primitive transforms from a creature pose
// described as joint world positions plus parent-child connectivity. It
// covers only the geometric derivation for a static pose; driving joints
// frame to frame from capture data stays with the external animation source.
package skeleton

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"

	"github.com/bisnad/skelmarch"
)

// Skeleton is a posed creature: joint positions in world space and, per
// joint, the indices of its child joints. Connectivity must form a tree so
// edge count is joint count minus one.
type Skeleton struct {
	positions []ms3.Vec
	children  [][]int
	edgeCount int
}

// New validates connectivity against the position list and returns the
// skeleton.
func New(positions []ms3.Vec, connectivity [][]int) (*Skeleton, error) {
	if len(positions) == 0 {
		return nil, errors.New("no joint positions")
	}
	if len(connectivity) != len(positions) {
		return nil, fmt.Errorf("connectivity lists %d joints, positions %d", len(connectivity), len(positions))
	}
	edges := 0
	for parent, kids := range connectivity {
		for _, child := range kids {
			if child < 0 || child >= len(positions) {
				return nil, fmt.Errorf("joint %d lists child %d out of range", parent, child)
			}
			if child == parent {
				return nil, fmt.Errorf("joint %d lists itself as child", parent)
			}
			edges++
		}
	}
	return &Skeleton{
		positions: positions,
		children:  connectivity,
		edgeCount: edges,
	}, nil
}

// JointCount returns the number of joints.
func (sk *Skeleton) JointCount() int {
	return len(sk.positions)
}

// EdgeCount returns the number of parent-child bones.
func (sk *Skeleton) EdgeCount() int {
	return sk.edgeCount
}

// JointTransforms returns one world-to-local matrix per joint, ready to
// store on joint primitives: the inverse of a pure translation to the joint
// position.
func (sk *Skeleton) JointTransforms() []ms3.Mat4 {
	out := make([]ms3.Mat4, len(sk.positions))
	for i, p := range sk.positions {
		out[i] = skelmarch.WorldToLocal(skelmarch.Translation(p))
	}
	return out
}

// EdgeTransforms returns one world-to-local matrix and one length per bone,
// in parent-major order. Each bone frame sits at the midpoint of its two
// joints with the local z axis running along the bone, so a z-aligned
// capsule or cylinder of height length*size.z spans joint to joint.
func (sk *Skeleton) EdgeTransforms() ([]ms3.Mat4, []float32) {
	mats := make([]ms3.Mat4, 0, sk.edgeCount)
	lengths := make([]float32, 0, sk.edgeCount)
	for parent, kids := range sk.children {
		for _, child := range kids {
			a := sk.positions[parent]
			b := sk.positions[child]
			mid := ms3.Scale(0.5, ms3.Add(a, b))
			bone := ms3.Sub(b, a)
			length := ms3.Norm(bone)
			placement := skelmarch.Placement(alignZ(bone, length), mid)
			mats = append(mats, skelmarch.WorldToLocal(placement))
			lengths = append(lengths, length)
		}
	}
	return mats, lengths
}

// alignZ returns the rotation taking the local +z axis onto dir, where
// norm is dir's length. Degenerate bones (zero length, or antiparallel to
// z where the rotation axis vanishes) fall back to a fixed frame.
func alignZ(dir ms3.Vec, norm float32) ms3.Mat4 {
	if norm == 0 {
		return ms3.IdentityMat4()
	}
	d := ms3.Scale(1/norm, dir)
	cos := clamp(d.Z, -1, 1)
	axis := ms3.Cross(ms3.Vec{Z: 1}, d)
	if ms3.Norm(axis) < 1e-6 {
		if cos > 0 {
			return ms3.IdentityMat4()
		}
		// Antiparallel: half turn about any perpendicular axis.
		return skelmarch.RotationX(math32.Pi)
	}
	return skelmarch.Rotation(math32.Acos(cos), ms3.Unit(axis))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
