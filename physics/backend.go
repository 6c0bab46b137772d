package physics

import "github.com/go-gl/mathgl/mgl32"

var (
	NormalUp   = mgl32.Vec3{0, 1, 0}
	NormalDown = mgl32.Vec3{0, -1, 0}
)

// Result is the outcome of one collision-aware displacement.
type Result struct {
	Position mgl32.Vec3
	// Velocity has every component that ran into geometry zeroed.
	Velocity mgl32.Vec3
	Grounded bool
	// Blocked holds the surface normals the body was stopped by.
	Blocked []mgl32.Vec3
}

// BlockedBy reports whether n is among the normals of r.
func (r Result) BlockedBy(n mgl32.Vec3) bool {
	for _, b := range r.Blocked {
		if b == n {
			return true
		}
	}
	return false
}

// Backend moves a kinematic body. Orientation is never touched.
type Backend interface {
	Integrate(shape Capsule, pos, vel mgl32.Vec3, dt float32) Result
}
