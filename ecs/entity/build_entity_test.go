package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/assets"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModels() *assets.Catalog {
	return assets.NewCatalog(map[string]assets.ModelInfo{
		"fox":     {Scene: "models/fox.glb", Scale: 0.01},
		"sabrina": {Scene: "models/sabrina.glb"},
	})
}

func TestBuildEntityPlayerPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "player.yaml", Options{Models: testModels()})
	require.NoError(t, err)

	for name, has := range map[string]bool{
		"player_tag":     ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"input":          ecs.Has(w, e, component.InputComponent.Kind()),
		"transform":      ecs.Has(w, e, component.TransformComponent.Kind()),
		"kinematic_body": ecs.Has(w, e, component.KinematicBodyComponent.Kind()),
		"walker":         ecs.Has(w, e, component.WalkerComponent.Kind()),
		"jump":           ecs.Has(w, e, component.JumpComponent.Kind()),
		"visibility":     ecs.Has(w, e, component.VisibilityComponent.Kind()),
		"model":          ecs.Has(w, e, component.ModelComponent.Kind()),
		"animation":      ecs.Has(w, e, component.AnimationComponent.Kind()),
	} {
		assert.Truef(t, has, "missing %s", name)
	}

	model, _ := ecs.Get(w, e, component.ModelComponent.Kind())
	assert.Equal(t, "models/fox.glb", model.Scene)
	assert.InDelta(t, 0.01, model.Scale, 1e-6)

	walker, _ := ecs.Get(w, e, component.WalkerComponent.Kind())
	assert.InDelta(t, 1.8, walker.Tuning.SprintMultiplier, 1e-6)

	found, ok := FindByName(w, "player")
	require.True(t, ok)
	assert.Equal(t, e, found)
}

func TestBuildEntityCameraPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "camera.yaml", Options{})
	require.NoError(t, err)

	rig, ok := ecs.Get(w, e, component.CameraRigComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ThirdPerson{Distance: 5}, rig.Kind)
	assert.Equal(t, "player", rig.Target)
	assert.InDelta(t, -0.35, rig.Pitch, 1e-6)
	assert.Equal(t, component.DefaultCameraSettings(), rig.Settings)

	p, ok := ecs.Get(w, e, component.ProjectionComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ProjectionPerspective, p.Kind)
}

func TestBuildEntityMissingModelDestroysEntity(t *testing.T) {
	tests := []struct {
		name   string
		models ModelResolver
	}{
		{"no resolver", nil},
		{"unknown asset", assets.NewCatalog(map[string]assets.ModelInfo{"sabrina": {Scene: "s.glb"}})},
		{"asset without scene", assets.NewCatalog(map[string]assets.ModelInfo{"fox": {}})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, "player.yaml", Options{Models: tc.models})
			require.Error(t, err)
			assert.ErrorIs(t, err, assets.ErrModelNotFound)
			assert.Empty(t, ecs.Entities(w))
		})
	}
}

func TestBuildEntityFromSpecErrors(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]any
	}{
		{"empty", nil},
		{"unknown component", map[string]any{"jetpack": map[string]any{}}},
		{"body without transform", map[string]any{"kinematic_body": map[string]any{"height": 1, "radius": 0.4}}},
		{"body without radius", map[string]any{"transform": map[string]any{}, "kinematic_body": map[string]any{"height": 1}}},
		{"unknown camera mode", map[string]any{"camera_rig": map[string]any{"mode": "orbit"}}},
		{"empty collider", map[string]any{"static_collider": map[string]any{"min": []float32{0, 0, 0}, "max": []float32{1, 0, 1}}}},
		{"negative stop distance", map[string]any{"follower": map[string]any{"stop_distance": -1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntityFromSpec(w, prefabs.EntityBuildSpec{Name: tc.name, Components: tc.components}, Options{})
			assert.Error(t, err)
			assert.Empty(t, ecs.Entities(w))
		})
	}
}

func TestBuildEntityCameraModes(t *testing.T) {
	settings := component.DefaultCameraSettings()
	tests := []struct {
		name string
		rig  map[string]any
		want component.CameraKind
	}{
		{"default mode", map[string]any{}, component.ThirdPerson{Distance: settings.Distance}},
		{"distance clamped", map[string]any{"mode": "third_person", "distance": 100}, component.ThirdPerson{Distance: settings.MaxDistance}},
		{"first person", map[string]any{"mode": "first_person"}, component.FirstPerson{EyeHeight: settings.EyeHeight}},
		{"fixed angle offset", map[string]any{"mode": "fixed_angle", "offset": []float32{1, 2, 3}}, component.FixedAngle{Offset: mgl32.Vec3{1, 2, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntityFromSpec(w, prefabs.EntityBuildSpec{Name: "cam", Components: map[string]any{"camera_rig": tc.rig}}, Options{})
			require.NoError(t, err)
			rig, _ := ecs.Get(w, e, component.CameraRigComponent.Kind())
			assert.Equal(t, tc.want, rig.Kind)
		})
	}
}

func TestSetEntityPosition(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)

	require.NoError(t, SetEntityPosition(w, e, mgl32.Vec3{1, 2, 3}))
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, tr.Position)

	require.NoError(t, SetEntityPosition(w, e, mgl32.Vec3{4, 5, 6}))
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, tr.Position)
}
