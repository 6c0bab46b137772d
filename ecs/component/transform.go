package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Local axes: -Z is forward, +Y is up, +X is right.
var (
	AxisForward = mgl32.Vec3{0, 0, -1}
	AxisUp      = mgl32.Vec3{0, 1, 0}
)

// Transform is the spatial truth of an entity. For bodies it is written only
// by the integration step; the camera-mode pass may rewrite Rotation for
// first-person facing.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

var TransformComponent = NewComponent[Transform]()

// NewTransform returns an unrotated, unscaled transform at pos.
func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Position: pos, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// Forward returns the world-space facing direction.
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisForward)
}

// LookAt rotates the transform so Forward points at target, keeping up as the
// vertical reference. It reports false and leaves the rotation untouched when
// target coincides with the position or lies along up.
func (t *Transform) LookAt(target, up mgl32.Vec3) bool {
	dir := target.Sub(t.Position)
	if dir.LenSqr() < 1e-12 || up.LenSqr() < 1e-12 {
		return false
	}
	f := dir.Normalize()
	r := f.Cross(up)
	if r.LenSqr() < 1e-12 || math32.IsNaN(r.LenSqr()) {
		return false
	}
	r = r.Normalize()
	u := r.Cross(f)
	rot := mgl32.Mat3FromCols(r, u, f.Mul(-1))
	t.Rotation = mgl32.Mat4ToQuat(rot.Mat4()).Normalize()
	return true
}
