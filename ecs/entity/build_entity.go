package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/assets"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/physics"
	"github.com/milk9111/embodiment/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// ModelResolver looks up model assets by name.
type ModelResolver interface {
	Model(name string) (assets.ModelInfo, error)
}

// Options carries the collaborators component builders need.
type Options struct {
	Models ModelResolver
	Camera component.CameraSettings
}

type buildContext struct {
	PrefabPath string
	Options
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"name":            addName,
	"player_tag":      addPlayerTag,
	"camera_tag":      addCameraTag,
	"input":           addInput,
	"follower":        addFollower,
	"transform":       addTransform,
	"kinematic_body":  addKinematicBody,
	"walker":          addWalker,
	"jump":            addJump,
	"camera_rig":      addCameraRig,
	"projection":      addProjection,
	"visibility":      addVisibility,
	"model":           addModel,
	"animations":      addAnimations,
	"static_collider": addStaticCollider,
}

var componentBuildOrder = []string{
	"name",
	"player_tag",
	"camera_tag",
	"input",
	"follower",
	"transform",
	"kinematic_body",
	"walker",
	"jump",
	"camera_rig",
	"projection",
	"visibility",
	"model",
	"animations",
	"static_collider",
}

func BuildEntity(w *ecs.World, prefabPath string, opts Options) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec, opts)
}

// BuildEntityFromSpec builds an entity from an already decoded prefab.
func BuildEntityFromSpec(w *ecs.World, spec entityPrefabSpec, opts Options) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	return buildFromSpec(w, spec.Name, spec, opts)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec, opts Options) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	apply := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := apply(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := apply(name); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

// SetEntityPosition moves an entity, creating an identity transform if it has
// none.
func SetEntityPosition(w *ecs.World, e ecs.Entity, pos mgl32.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		tr := component.NewTransform(pos)
		return ecs.Add(w, e, component.TransformComponent.Kind(), &tr)
	}
	t.Position = pos
	return nil
}

// FindByName returns the first live entity carrying the given name.
func FindByName(w *ecs.World, name string) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !ok && n.Value == name {
			found, ok = e, true
		}
	})
	return found, ok
}

func addName(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.NameComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode name spec: %w", err)
	}
	if spec.Value == "" {
		spec.Value = ctx.PrefabPath
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addFollower(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.FollowerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode follower spec: %w", err)
	}
	if spec.StopDistance < 0 {
		return fmt.Errorf("follower stop_distance must not be negative")
	}
	return ecs.Add(w, e, component.FollowerComponent.Kind(), &component.Follower{StopDistance: spec.StopDistance})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.NewTransform(spec.Position)
	if spec.Yaw != 0 {
		t.Rotation = mgl32.QuatRotate(spec.Yaw, component.AxisUp)
	}
	if spec.Scale != nil {
		t.Scale = *spec.Scale
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

func addKinematicBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.KinematicBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode kinematic_body spec: %w", err)
	}
	shape := physics.Capsule{Height: spec.Height, Radius: spec.Radius}
	if !shape.Valid() {
		return fmt.Errorf("kinematic_body needs a positive radius, got height=%v radius=%v", spec.Height, spec.Radius)
	}
	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		return fmt.Errorf("kinematic_body requires transform on the same entity")
	}
	return ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{Shape: shape})
}

func addWalker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WalkerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode walker spec: %w", err)
	}
	tuning := motion.DefaultWalkTuning()
	setIf(&tuning.WalkSpeed, spec.WalkSpeed)
	setIf(&tuning.SprintMultiplier, spec.SprintMultiplier)
	setIf(&tuning.Acceleration, spec.Acceleration)
	if tuning.WalkSpeed < 0 || tuning.Acceleration <= 0 {
		return fmt.Errorf("walker needs walk_speed >= 0 and acceleration > 0")
	}
	return ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{Tuning: tuning})
}

func addJump(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.JumpComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode jump spec: %w", err)
	}
	tuning := motion.DefaultJumpTuning()
	setIf(&tuning.Impulse, spec.Impulse)
	setIf(&tuning.Gravity, spec.Gravity)
	setIf(&tuning.MaxAscent, spec.MaxAscent)
	setIf(&tuning.TerminalSpeed, spec.TerminalSpeed)
	return ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{Machine: motion.NewJumpMachine(tuning)})
}

func addCameraRig(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraRigComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera_rig spec: %w", err)
	}
	settings := ctx.Camera
	if settings == (component.CameraSettings{}) {
		settings = component.DefaultCameraSettings()
	}

	var kind component.CameraKind
	switch component.CameraMode(spec.Mode) {
	case component.CameraModeFirstPerson:
		h := spec.EyeHeight
		if h == 0 {
			h = settings.EyeHeight
		}
		kind = component.FirstPerson{EyeHeight: h}
	case component.CameraModeThirdPerson, component.CameraModeNone:
		d := spec.Distance
		if d == 0 {
			d = settings.Distance
		}
		kind = component.ThirdPerson{Distance: mgl32.Clamp(d, settings.MinDistance, settings.MaxDistance)}
	case component.CameraModeFixedAngle:
		offset := settings.FixedOffset
		if spec.Offset != nil {
			offset = *spec.Offset
		}
		kind = component.FixedAngle{Offset: offset}
	default:
		return fmt.Errorf("unknown camera mode %q", spec.Mode)
	}

	return ecs.Add(w, e, component.CameraRigComponent.Kind(), &component.CameraRig{
		Kind:     kind,
		Yaw:      spec.Yaw,
		Pitch:    component.ClampPitch(spec.Pitch),
		Target:   spec.Target,
		Settings: settings,
	})
}

func addProjection(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ProjectionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projection spec: %w", err)
	}
	p := component.Projection{FOV: spec.FOV, Near: spec.Near, Far: spec.Far}
	switch spec.Kind {
	case "", "perspective":
		p.Kind = component.ProjectionPerspective
	case "orthographic":
		p.Kind = component.ProjectionOrthographic
	default:
		return fmt.Errorf("unknown projection kind %q", spec.Kind)
	}
	if p.FOV == 0 {
		p.FOV = motion.DefaultFOVCurve().Min
	}
	return ecs.Add(w, e, component.ProjectionComponent.Kind(), &p)
}

func addVisibility(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VisibilityComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode visibility spec: %w", err)
	}
	visible := true
	if spec.Visible != nil {
		visible = *spec.Visible
	}
	return ecs.Add(w, e, component.VisibilityComponent.Kind(), &component.Visibility{Visible: visible})
}

func addModel(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ModelComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode model spec: %w", err)
	}
	if ctx.Models == nil {
		return fmt.Errorf("resolve model %q: %w", spec.Asset, assets.ErrModelNotFound)
	}
	info, err := ctx.Models.Model(spec.Asset)
	if err != nil {
		return fmt.Errorf("resolve model %q: %w", spec.Asset, err)
	}
	return ecs.Add(w, e, component.ModelComponent.Kind(), &component.Model{
		Asset: spec.Asset,
		Scene: info.Scene,
		Scale: info.Scale,
	})
}

func addAnimations(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationsComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animations spec: %w", err)
	}
	if spec.Idle == "" {
		return errors.New("animations require an idle clip")
	}
	if err := ecs.Add(w, e, component.CharacterAnimationsComponent.Kind(), &component.CharacterAnimations{
		Idle:   spec.Idle,
		Walk:   spec.Walk,
		Aerial: spec.Aerial,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Current: spec.Idle, Changed: true})
}

func addStaticCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.StaticColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode static_collider spec: %w", err)
	}
	for axis := 0; axis < 3; axis++ {
		if spec.Max[axis] <= spec.Min[axis] {
			return fmt.Errorf("static_collider is empty on axis %d", axis)
		}
	}
	return ecs.Add(w, e, component.StaticColliderComponent.Kind(), &component.StaticCollider{Min: spec.Min, Max: spec.Max, Floor: spec.Floor})
}

func setIf(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}
