package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
	"github.com/sirupsen/logrus"
)

// CameraModeSystem keeps the controlled character consistent with the view:
// in first person it is hidden and faces where the camera looks; otherwise it
// is visible and its facing is left alone.
type CameraModeSystem struct {
	log logrus.FieldLogger
}

func NewCameraModeSystem(log logrus.FieldLogger) *CameraModeSystem {
	return &CameraModeSystem{log: orDefault(log)}
}

func (s *CameraModeSystem) Update(w *ecs.World) {
	_, rig, ok := activeRig(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		switch rig.Kind.(type) {
		case component.FirstPerson:
			if fwd, _, ok := motion.HorizontalBasis(rig.Forward()); ok {
				t.LookAt(t.Position.Add(fwd), rig.Up())
			}
			s.setVisible(w, e, false)
		case component.ThirdPerson, component.FixedAngle:
			s.setVisible(w, e, true)
		}
	})
}

func (s *CameraModeSystem) setVisible(w *ecs.World, e ecs.Entity, visible bool) {
	if v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok {
		v.Visible = visible
		return
	}
	if err := ecs.Add(w, e, component.VisibilityComponent.Kind(), &component.Visibility{Visible: visible}); err != nil {
		s.log.WithError(err).WithField("entity", e).Debug("set visibility")
	}
}
