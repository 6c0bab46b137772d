package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/logger"
	"github.com/sirupsen/logrus"
)

func orDefault(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logger.L()
	}
	return log
}

// activeRig returns the camera rig in use. Only one rig is expected; extra
// rigs are ignored.
func activeRig(w *ecs.World) (ecs.Entity, *component.CameraRig, bool) {
	e, ok := ecs.First(w, component.CameraRigComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	rig, ok := ecs.Get(w, e, component.CameraRigComponent.Kind())
	if !ok || rig == nil {
		return 0, nil, false
	}
	return e, rig, true
}

// controlled returns the player-controlled entity.
func controlled(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

// findEntityByNameOrTag resolves a rig target. An empty name or "player"
// without a matching Name falls back to the player tag.
func findEntityByNameOrTag(w *ecs.World, name string) (ecs.Entity, bool) {
	if name != "" {
		var found ecs.Entity
		ok := false
		ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
			if !ok && n.Value == name {
				found, ok = e, true
			}
		})
		if ok {
			return found, true
		}
	}
	if name == "" || name == "player" {
		return controlled(w)
	}
	return 0, false
}
