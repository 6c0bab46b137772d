package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
)

// SpeedEffectSystem widens perspective cameras as the controlled body speeds
// up. It only reads velocity and only writes projection parameters.
type SpeedEffectSystem struct {
	Curve motion.FOVCurve
}

func NewSpeedEffectSystem(curve motion.FOVCurve) *SpeedEffectSystem {
	return &SpeedEffectSystem{Curve: curve}
}

func (s *SpeedEffectSystem) Update(w *ecs.World) {
	player, ok := controlled(w)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.KinematicBodyComponent.Kind())
	if !ok {
		return
	}
	fov := s.Curve.FieldOfView(body.Velocity.LenSqr())

	ecs.ForEach(w, component.ProjectionComponent.Kind(), func(e ecs.Entity, p *component.Projection) {
		if p.Kind != component.ProjectionPerspective {
			return
		}
		p.FOV = fov
	})
}
