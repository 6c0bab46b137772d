package motion

import "github.com/go-gl/mathgl/mgl32"

// HorizontalBasis projects a camera forward vector onto the ground plane and
// returns it with its rightward perpendicular. ok is false when forward has no
// horizontal part, e.g. a camera looking straight up or down.
func HorizontalBasis(forward mgl32.Vec3) (fwd, right mgl32.Vec3, ok bool) {
	flat := Horizontal(forward)
	if !Finite(flat) || flat.LenSqr() < Epsilon {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	fwd = flat.Normalize()
	right = mgl32.Vec3{-fwd.Z(), 0, fwd.X()}
	return fwd, right, true
}

// Translate turns a 2D movement input (+Y forward, +X right) into a unit
// world-space direction on the ground plane relative to the camera. ok is
// false for zero or malformed input and for a degenerate camera forward, in
// which case the caller must leave the direction unset.
func Translate(move mgl32.Vec2, cameraForward mgl32.Vec3) (mgl32.Vec3, bool) {
	if !finite2(move) || move.LenSqr() < Epsilon {
		return mgl32.Vec3{}, false
	}
	fwd, right, ok := HorizontalBasis(cameraForward)
	if !ok {
		return mgl32.Vec3{}, false
	}
	dir := fwd.Mul(move.Y()).Add(right.Mul(move.X()))
	if !Finite(dir) || dir.LenSqr() < Epsilon {
		return mgl32.Vec3{}, false
	}
	return dir.Normalize(), true
}
