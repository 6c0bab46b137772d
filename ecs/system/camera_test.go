package system

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraRigSwitch(t *testing.T) {
	tests := []struct {
		name      string
		start     component.CameraKind
		switchTo  component.CameraMode
		wantMode  component.CameraMode
		wantEvent bool
	}{
		{"third to first", component.ThirdPerson{Distance: 5}, component.CameraModeFirstPerson, component.CameraModeFirstPerson, true},
		{"first to fixed", component.FirstPerson{EyeHeight: 0.6}, component.CameraModeFixedAngle, component.CameraModeFixedAngle, true},
		{"same mode", component.ThirdPerson{Distance: 5}, component.CameraModeThirdPerson, component.CameraModeThirdPerson, false},
		{"unknown mode ignored", component.FirstPerson{EyeHeight: 0.6}, component.CameraMode("orbit"), component.CameraModeFirstPerson, false},
		{"unset kind defaults to third person", nil, component.CameraModeNone, component.CameraModeThirdPerson, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.start)
			s.rig(t).Actions.Switch = tc.switchTo

			var events []ecs.EventType
			s.run(NewCameraRigSystem(nil), collectEvents(&events))

			assert.Equal(t, tc.wantMode, s.rig(t).Mode())
			assert.Equal(t, tc.wantEvent, contains(events, ecs.EventCameraModeChanged))
			assert.Equal(t, component.CameraActions{}, s.rig(t).Actions)
		})
	}
}

func TestCameraRigZoom(t *testing.T) {
	tests := []struct {
		name     string
		start    component.CameraKind
		zoom     float32
		wantKind component.CameraKind
	}{
		{"zoom in", component.ThirdPerson{Distance: 5}, 1, component.ThirdPerson{Distance: 4}},
		{"zoom out clamps", component.ThirdPerson{Distance: 11.5}, -3, component.ThirdPerson{Distance: 12}},
		{"zoom past minimum enters first person", component.ThirdPerson{Distance: 2}, 1, component.FirstPerson{EyeHeight: 0.6}},
		{"zoom out of first person", component.FirstPerson{EyeHeight: 0.6}, -1, component.ThirdPerson{Distance: 1.5}},
		{"zoom in stays first person", component.FirstPerson{EyeHeight: 0.6}, 1, component.FirstPerson{EyeHeight: 0.6}},
		{"fixed ignores zoom", component.FixedAngle{Offset: mgl32.Vec3{0, 8, 8}}, 1, component.FixedAngle{Offset: mgl32.Vec3{0, 8, 8}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.start)
			s.rig(t).Actions.Zoom = tc.zoom

			s.run(NewCameraRigSystem(nil))
			assert.Equal(t, tc.wantKind, s.rig(t).Kind)
		})
	}
}

func TestCameraRigLook(t *testing.T) {
	s := newScene(t, component.ThirdPerson{Distance: 5})
	rig := s.rig(t)
	rig.Settings.Sensitivity = 0.01
	rig.Actions.Look = mgl32.Vec2{10, 1000}

	s.run(NewCameraRigSystem(nil))

	assert.InDelta(t, -0.1, rig.Yaw, 1e-5)
	assert.InDelta(t, -(math32.Pi/2 - 0.01), rig.Pitch, 1e-5)
}

func TestCameraRigLookWrapsYaw(t *testing.T) {
	s := newScene(t, component.FirstPerson{EyeHeight: 0.6})
	rig := s.rig(t)
	rig.Yaw = -math32.Pi + 0.05
	rig.Settings.Sensitivity = 0.01
	rig.Actions.Look = mgl32.Vec2{10, 0}

	s.run(NewCameraRigSystem(nil))

	assert.InDelta(t, math32.Pi-0.05, rig.Yaw, 1e-4)
}

func TestCameraRigFixedIgnoresLook(t *testing.T) {
	s := newScene(t, component.FixedAngle{Offset: mgl32.Vec3{0, 8, 8}})
	s.rig(t).Actions.Look = mgl32.Vec2{100, 100}

	s.run(NewCameraRigSystem(nil))

	assert.Zero(t, s.rig(t).Yaw)
	assert.Zero(t, s.rig(t).Pitch)
}

func TestCameraModeVisibilityWithinOneTick(t *testing.T) {
	tests := []struct {
		name        string
		start       component.CameraKind
		switchTo    component.CameraMode
		wantVisible bool
	}{
		{"enter first person hides", component.ThirdPerson{Distance: 5}, component.CameraModeFirstPerson, false},
		{"leave first person shows", component.FirstPerson{EyeHeight: 0.6}, component.CameraModeThirdPerson, true},
		{"fixed angle shows", component.FirstPerson{EyeHeight: 0.6}, component.CameraModeFixedAngle, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.start)
			vis, _ := ecs.Get(s.w, s.player, component.VisibilityComponent.Kind())
			vis.Visible = !tc.wantVisible
			s.rig(t).Actions.Switch = tc.switchTo

			s.run(NewCameraRigSystem(nil), NewCameraModeSystem(nil))
			assert.Equal(t, tc.wantVisible, s.visible(t))
		})
	}
}

func TestCameraModeFirstPersonFacing(t *testing.T) {
	s := newScene(t, component.FirstPerson{EyeHeight: 0.6})
	s.rig(t).Yaw = math32.Pi / 2
	s.rig(t).Pitch = -0.5

	s.run(NewCameraModeSystem(nil))

	vecInDelta(t, mgl32.Vec3{-1, 0, 0}, s.transform(t, s.player).Forward(), 1e-5)
}

func TestCameraModeThirdPersonKeepsFacing(t *testing.T) {
	s := newScene(t, component.ThirdPerson{Distance: 5})
	s.rig(t).Yaw = math32.Pi / 2

	s.run(NewCameraModeSystem(nil))

	vecInDelta(t, mgl32.Vec3{0, 0, -1}, s.transform(t, s.player).Forward(), 1e-5)
}

func TestCameraModeUsesFirstRigOnly(t *testing.T) {
	s := newScene(t, component.FirstPerson{EyeHeight: 0.6})
	extra := ecs.CreateEntity(s.w)
	require.NoError(t, ecs.Add(s.w, extra, component.CameraRigComponent.Kind(), &component.CameraRig{
		Kind:     component.ThirdPerson{Distance: 5},
		Settings: component.DefaultCameraSettings(),
	}))

	s.run(NewCameraModeSystem(nil))
	assert.False(t, s.visible(t))
}

func TestCameraModeAddsMissingVisibility(t *testing.T) {
	s := newScene(t, component.FirstPerson{EyeHeight: 0.6})
	require.True(t, ecs.Remove(s.w, s.player, component.VisibilityComponent.Kind()))

	s.run(NewCameraModeSystem(nil))
	assert.False(t, s.visible(t))
}

func TestCameraPlacement(t *testing.T) {
	tests := []struct {
		name    string
		kind    component.CameraKind
		wantPos mgl32.Vec3
		wantFwd mgl32.Vec3
	}{
		{"first person", component.FirstPerson{EyeHeight: 0.6}, mgl32.Vec3{0, 1.5, 0}, mgl32.Vec3{0, 0, -1}},
		{"third person", component.ThirdPerson{Distance: 5}, mgl32.Vec3{0, 0.9, 5}, mgl32.Vec3{0, 0, -1}},
		{"fixed angle", component.FixedAngle{Offset: mgl32.Vec3{0, 8, 8}}, mgl32.Vec3{0, 8.9, 8}, mgl32.Vec3{0, -1, -1}.Normalize()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.kind)

			s.run(NewCameraSystem())

			cam := s.transform(t, s.camera)
			vecInDelta(t, tc.wantPos, cam.Position, 1e-4)
			vecInDelta(t, tc.wantFwd, cam.Forward(), 1e-4)
		})
	}
}

func collectEvents(out *[]ecs.EventType) ecs.System {
	return ecs.SystemFunc(func(w *ecs.World) {
		for _, evt := range w.Events().Drain() {
			*out = append(*out, evt.Type)
		}
	})
}

func contains(events []ecs.EventType, want ecs.EventType) bool {
	for _, evt := range events {
		if evt == want {
			return true
		}
	}
	return false
}
