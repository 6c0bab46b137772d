package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the squared length below which a vector counts as zero.
const Epsilon = 1e-8

// Finite reports whether every component of v is a real number.
func Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Horizontal drops the vertical component.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

func finite2(v mgl32.Vec2) bool {
	return !math32.IsNaN(v.X()) && !math32.IsNaN(v.Y()) && !math32.IsInf(v.X(), 0) && !math32.IsInf(v.Y(), 0)
}
