package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/common"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/sirupsen/logrus"
)

// CameraRigSystem consumes the rig's pending actions: mode switches, zoom and
// look. It is the only writer of the rig's kind and orientation.
type CameraRigSystem struct {
	log logrus.FieldLogger
}

func NewCameraRigSystem(log logrus.FieldLogger) *CameraRigSystem {
	return &CameraRigSystem{log: orDefault(log)}
}

func (s *CameraRigSystem) Update(w *ecs.World) {
	e, rig, ok := activeRig(w)
	if !ok {
		return
	}

	actions := rig.Actions
	rig.Actions = component.CameraActions{}
	prev := rig.Mode()

	if actions.Switch != component.CameraModeNone {
		if kind, ok := kindFor(actions.Switch, rig.Settings); ok {
			rig.Kind = kind
		} else {
			s.log.WithField("mode", actions.Switch).Warn("camera: ignoring unknown mode switch")
		}
	}
	if rig.Kind == nil {
		rig.Kind = component.ThirdPerson{Distance: rig.Settings.Distance}
	}

	applyZoom(rig, actions.Zoom)
	applyLook(rig, actions.Look)

	if mode := rig.Mode(); mode != prev {
		w.Events().Push(ecs.Event{Type: ecs.EventCameraModeChanged, Entity: e, Data: mode})
		s.log.WithFields(logrus.Fields{"from": prev, "to": mode}).Debug("camera: mode changed")
	}
}

func kindFor(mode component.CameraMode, settings component.CameraSettings) (component.CameraKind, bool) {
	switch mode {
	case component.CameraModeFirstPerson:
		return component.FirstPerson{EyeHeight: settings.EyeHeight}, true
	case component.CameraModeThirdPerson:
		return component.ThirdPerson{Distance: clampDistance(settings.Distance, settings)}, true
	case component.CameraModeFixedAngle:
		return component.FixedAngle{Offset: settings.FixedOffset}, true
	}
	return nil, false
}

// applyZoom moves a third-person camera along its boom. Zooming in past the
// minimum distance enters first person; zooming out of first person returns
// to third person at the minimum distance.
func applyZoom(rig *component.CameraRig, zoom float32) {
	if zoom == 0 {
		return
	}
	st := rig.Settings
	switch k := rig.Kind.(type) {
	case component.ThirdPerson:
		d := k.Distance - zoom*st.ZoomSpeed
		if zoom > 0 && d < st.MinDistance {
			rig.Kind = component.FirstPerson{EyeHeight: st.EyeHeight}
			return
		}
		rig.Kind = component.ThirdPerson{Distance: clampDistance(d, st)}
	case component.FirstPerson:
		if zoom < 0 {
			rig.Kind = component.ThirdPerson{Distance: st.MinDistance}
		}
	case component.FixedAngle:
	}
}

func applyLook(rig *component.CameraRig, look mgl32.Vec2) {
	if look == (mgl32.Vec2{}) {
		return
	}
	switch rig.Kind.(type) {
	case component.FirstPerson, component.ThirdPerson:
		sens := rig.Settings.Sensitivity
		rig.Yaw = common.WrapAngle(rig.Yaw - look.X()*sens)
		rig.Pitch = component.ClampPitch(rig.Pitch - look.Y()*sens)
	case component.FixedAngle:
	}
}

func clampDistance(d float32, st component.CameraSettings) float32 {
	if st.MaxDistance < st.MinDistance {
		return d
	}
	return mgl32.Clamp(d, st.MinDistance, st.MaxDistance)
}
