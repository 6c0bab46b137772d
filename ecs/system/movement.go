package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/physics"
	"github.com/sirupsen/logrus"
)

// MovementSystem accelerates each walker's body toward its desired velocity
// and performs the tick's single collision-aware displacement.
type MovementSystem struct {
	backend physics.Backend
	log     logrus.FieldLogger
}

func NewMovementSystem(backend physics.Backend, log logrus.FieldLogger) *MovementSystem {
	if backend == nil {
		backend = physics.NewWorld()
	}
	return &MovementSystem{backend: backend, log: orDefault(log)}
}

func (s *MovementSystem) Update(w *ecs.World) {
	dt := w.Delta()
	if dt <= 0 {
		return
	}

	ecs.ForEach3(w, component.WalkerComponent.Kind(), component.KinematicBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, walker *component.Walker, body *component.KinematicBody, t *component.Transform) {
		dir, has := walker.Direction()
		h := motion.WalkVelocity(body.Velocity, dir, has, walker.Sprinting, walker.Tuning, dt)
		vel := mgl32.Vec3{h.X(), body.Velocity.Y(), h.Z()}

		res := s.backend.Integrate(body.Shape, t.Position, vel, dt)
		t.Position = res.Position
		body.Velocity = res.Velocity
		body.Grounded = res.Grounded
		body.Blocked = res.Blocked

		jump, ok := ecs.Get(w, e, component.JumpComponent.Kind())
		if !ok {
			return
		}
		landed, left := jump.Machine.Settle(res.Grounded, res.Velocity.Y())
		switch {
		case landed:
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Entity: e})
			s.log.WithField("entity", e).Debug("movement: landed")
		case left:
			w.Events().Push(ecs.Event{Type: ecs.EventLeftGround, Entity: e})
		}
	})
}
