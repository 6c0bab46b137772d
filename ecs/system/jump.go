package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/sirupsen/logrus"
)

// JumpSystem feeds each jump request to its state machine exactly once and
// writes the resulting vertical velocity into the body. It runs right before
// MovementSystem, using the contact reported by the previous integration.
type JumpSystem struct {
	log logrus.FieldLogger
}

func NewJumpSystem(log logrus.FieldLogger) *JumpSystem {
	return &JumpSystem{log: orDefault(log)}
}

func (s *JumpSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.JumpComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, jump *component.Jump, body *component.KinematicBody) {
		requested := jump.TakeRequest()
		prev := jump.Machine.Phase

		vy, jumped := jump.Machine.Advance(requested, body.Grounded, dt)
		body.Velocity[1] = vy

		if jumped {
			w.Events().Push(ecs.Event{Type: ecs.EventJumped, Entity: e, Data: vy})
		}
		if requested && !jumped {
			s.log.WithFields(logrus.Fields{"entity": e, "phase": prev}).Debug("jump: request dropped")
		}
		if prev != jump.Machine.Phase {
			s.log.WithFields(logrus.Fields{"entity": e, "from": prev, "to": jump.Machine.Phase}).Debug("jump: phase changed")
		}
	})
}
