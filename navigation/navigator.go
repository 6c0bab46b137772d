// Package navigation produces per-tick movement directions for followers.
// Implementations only answer "which way from here"; stopping, speed and
// integration are handled by the movement pipeline.
package navigation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/motion"
)

// Navigator returns a horizontal unit direction that moves from toward to, or
// false when there is no useful direction.
type Navigator interface {
	Direction(from, to mgl32.Vec3) (mgl32.Vec3, bool)
}

// Direct heads straight for the target.
type Direct struct{}

func (Direct) Direction(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	return flatten(to.Sub(from))
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(from, to mgl32.Vec3) (mgl32.Vec3, bool)

func (f NavigatorFunc) Direction(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	return f(from, to)
}

func flatten(v mgl32.Vec3) (mgl32.Vec3, bool) {
	h := motion.Horizontal(v)
	if !motion.Finite(h) || h.LenSqr() < motion.Epsilon {
		return mgl32.Vec3{}, false
	}
	return h.Normalize(), true
}
