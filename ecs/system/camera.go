package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
)

// CameraSystem places the rig's camera relative to its target after the
// target has moved this tick, so the view never trails the body by a frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	e, rig, ok := activeRig(w)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := findEntityByNameOrTag(w, rig.Target)
	if !ok {
		return
	}
	tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	pivot := tt.Position
	switch k := rig.Kind.(type) {
	case component.FirstPerson:
		cam.Position = pivot.Add(rig.Up().Mul(k.EyeHeight))
		cam.Rotation = rig.Orientation()
	case component.ThirdPerson:
		cam.Position = pivot.Sub(rig.Forward().Mul(k.Distance))
		cam.Rotation = rig.Orientation()
	case component.FixedAngle:
		cam.Position = pivot.Add(k.Offset)
		if !cam.LookAt(pivot, rig.Up()) {
			cam.Rotation = rig.Orientation()
		}
	}
}
