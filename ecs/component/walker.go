package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/motion"
)

// Walker holds the desired horizontal movement of a controllable entity.
// Exactly one producer writes it per tick (the intent translator for the
// player, the follower controller for NPCs); only that producer clears it.
type Walker struct {
	direction    mgl32.Vec3
	hasDirection bool

	Sprinting bool
	Tuning    motion.WalkTuning
}

var WalkerComponent = NewComponent[Walker]()

// SetDirection stores a desired direction. Non-finite or zero-length input
// clears the direction instead.
func (w *Walker) SetDirection(dir mgl32.Vec3) {
	flat := mgl32.Vec3{dir.X(), 0, dir.Z()}
	if !motion.Finite(flat) || flat.LenSqr() < motion.Epsilon {
		w.ClearDirection()
		return
	}
	w.direction = flat.Normalize()
	w.hasDirection = true
}

// ClearDirection drops the desired direction.
func (w *Walker) ClearDirection() {
	w.direction = mgl32.Vec3{}
	w.hasDirection = false
}

// Direction returns the desired unit direction, if any.
func (w *Walker) Direction() (mgl32.Vec3, bool) {
	return w.direction, w.hasDirection
}
