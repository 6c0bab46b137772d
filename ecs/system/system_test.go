package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickDT = float32(1.0 / 60.0)

type testScene struct {
	w      *ecs.World
	player ecs.Entity
	camera ecs.Entity
}

// newScene builds a player standing with its feet at y=0 and a camera rig in
// the given mode.
func newScene(t *testing.T, kind component.CameraKind) *testScene {
	t.Helper()
	w := ecs.NewWorld()

	player := ecs.CreateEntity(w)
	shape := physics.Capsule{Height: 1, Radius: 0.4}
	tr := component.NewTransform(mgl32.Vec3{0, shape.HalfExtents().Y(), 0})
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), &tr))
	require.NoError(t, ecs.Add(w, player, component.WalkerComponent.Kind(), &component.Walker{Tuning: motion.DefaultWalkTuning()}))
	require.NoError(t, ecs.Add(w, player, component.JumpComponent.Kind(), &component.Jump{Machine: motion.NewJumpMachine(motion.DefaultJumpTuning())}))
	require.NoError(t, ecs.Add(w, player, component.KinematicBodyComponent.Kind(), &component.KinematicBody{Shape: shape, Grounded: true}))
	require.NoError(t, ecs.Add(w, player, component.VisibilityComponent.Kind(), &component.Visibility{Visible: true}))

	camera := ecs.CreateEntity(w)
	camTr := component.NewTransform(mgl32.Vec3{})
	require.NoError(t, ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, camera, component.TransformComponent.Kind(), &camTr))
	require.NoError(t, ecs.Add(w, camera, component.CameraRigComponent.Kind(), &component.CameraRig{
		Kind:     kind,
		Target:   "player",
		Settings: component.DefaultCameraSettings(),
	}))
	require.NoError(t, ecs.Add(w, camera, component.ProjectionComponent.Kind(), &component.Projection{
		Kind: component.ProjectionPerspective,
		FOV:  0.75,
	}))

	return &testScene{w: w, player: player, camera: camera}
}

func (s *testScene) rig(t *testing.T) *component.CameraRig {
	t.Helper()
	rig, ok := ecs.Get(s.w, s.camera, component.CameraRigComponent.Kind())
	require.True(t, ok)
	return rig
}

func (s *testScene) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(s.w, s.player, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func (s *testScene) walker(t *testing.T) *component.Walker {
	t.Helper()
	walker, ok := ecs.Get(s.w, s.player, component.WalkerComponent.Kind())
	require.True(t, ok)
	return walker
}

func (s *testScene) jump(t *testing.T) *component.Jump {
	t.Helper()
	jump, ok := ecs.Get(s.w, s.player, component.JumpComponent.Kind())
	require.True(t, ok)
	return jump
}

func (s *testScene) body(t *testing.T) *component.KinematicBody {
	t.Helper()
	body, ok := ecs.Get(s.w, s.player, component.KinematicBodyComponent.Kind())
	require.True(t, ok)
	return body
}

func (s *testScene) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(s.w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func (s *testScene) visible(t *testing.T) bool {
	t.Helper()
	v, ok := ecs.Get(s.w, s.player, component.VisibilityComponent.Kind())
	require.True(t, ok)
	return v.Visible
}

// run executes the systems once as a single tick.
func (s *testScene) run(systems ...ecs.System) {
	sched := ecs.NewScheduler()
	_ = sched.AddStage("test", systems...)
	sched.Update(s.w, tickDT)
}

func floorWorld() *physics.World {
	pw := physics.NewWorld()
	pw.AddStatic(mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{50, 0, 50})
	return pw
}

func vecInDelta(t *testing.T, want, got mgl32.Vec3, delta float32) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], float64(delta), "component %d: want %v, got %v", i, want, got)
	}
}
