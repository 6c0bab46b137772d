package system

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
)

// FacingSystem turns walkers toward their desired direction. It runs before
// the camera-mode pass so first-person facing wins for the player.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.WalkerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, walker *component.Walker, t *component.Transform) {
		dir, ok := walker.Direction()
		if !ok {
			return
		}
		t.Rotation = mgl32.QuatRotate(yawFacing(dir), component.AxisUp)
	})
}

// yawFacing returns the rotation about +Y that turns the forward axis onto
// the horizontal direction dir.
func yawFacing(dir mgl32.Vec3) float32 {
	return math32.Atan2(-dir.X(), -dir.Z())
}
