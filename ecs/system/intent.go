package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
)

// IntentSystem turns the captured input into walker and jump intent relative
// to the camera. It must run after the rig update and before integration.
// Without a rig there is no basis for movement, so walkers stop; jump presses
// still go through.
type IntentSystem struct{}

func NewIntentSystem() *IntentSystem {
	return &IntentSystem{}
}

func (s *IntentSystem) Update(w *ecs.World) {
	var forward mgl32.Vec3
	if _, rig, ok := activeRig(w); ok {
		forward = rig.Forward()
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.WalkerComponent.Kind(), func(e ecs.Entity, in *component.Input, walker *component.Walker) {
		if dir, ok := motion.Translate(in.Move, forward); ok {
			walker.SetDirection(dir)
		} else {
			walker.ClearDirection()
		}
		walker.Sprinting = in.Sprint

		if in.Jump {
			if jump, ok := ecs.Get(w, e, component.JumpComponent.Kind()); ok {
				jump.Request()
			}
		}
	})
}
