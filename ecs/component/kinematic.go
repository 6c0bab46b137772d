package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/physics"
)

// KinematicBody is a capsule driven by supplied velocity rather than forces.
// Shape is fixed at spawn; systems only touch Velocity, and Grounded/Blocked
// are the outputs of the last integration step.
type KinematicBody struct {
	Shape    physics.Capsule
	Velocity mgl32.Vec3
	Grounded bool
	Blocked  []mgl32.Vec3
}

var KinematicBodyComponent = NewComponent[KinematicBody]()

// HorizontalSpeed returns the XZ speed.
func (b *KinematicBody) HorizontalSpeed() float32 {
	return mgl32.Vec2{b.Velocity.X(), b.Velocity.Z()}.Len()
}
