package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var body = Capsule{Height: 1, Radius: 0.4}

// floor top sits at y=0
func floorWorld() *World {
	w := NewWorld()
	w.AddStatic(mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{50, 0, 50})
	return w
}

func standingY() float32 {
	return body.HalfExtents().Y()
}

func TestCapsuleBox(t *testing.T) {
	bb := body.Box(mgl32.Vec3{1, 2, 3})
	assertVecInDelta(t, mgl32.Vec3{0.6, 1.1, 2.6}, bb.Min(), 1e-5)
	assertVecInDelta(t, mgl32.Vec3{1.4, 2.9, 3.4}, bb.Max(), 1e-5)
	assert.True(t, body.Valid())
	assert.False(t, Capsule{}.Valid())
}

func TestIntegrateFreeFall(t *testing.T) {
	w := NewWorld()
	res := w.Integrate(body, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, -2, 0}, 0.5)
	assertVecInDelta(t, mgl32.Vec3{0.5, 9, 0}, res.Position, 1e-5)
	assert.Equal(t, mgl32.Vec3{1, -2, 0}, res.Velocity)
	assert.False(t, res.Grounded)
	assert.Empty(t, res.Blocked)
}

func TestIntegrateLandsOnFloor(t *testing.T) {
	w := floorWorld()
	start := mgl32.Vec3{0, standingY() + 0.1, 0}

	res := w.Integrate(body, start, mgl32.Vec3{2, -10, 0}, 0.1)
	require.True(t, res.Grounded)
	assert.InDelta(t, standingY(), res.Position.Y(), 1e-4)
	assert.InDelta(t, 0.2, res.Position.X(), 1e-5)
	assert.Zero(t, res.Velocity.Y())
	assert.Equal(t, float32(2), res.Velocity.X())
	assert.True(t, res.BlockedBy(NormalUp))
}

func TestIntegrateRestingStaysGrounded(t *testing.T) {
	w := floorWorld()
	pos := mgl32.Vec3{0, standingY(), 0}
	for i := 0; i < 10; i++ {
		res := w.Integrate(body, pos, mgl32.Vec3{0, -0.5, 1}, 1.0/60)
		require.True(t, res.Grounded)
		assert.InDelta(t, standingY(), res.Position.Y(), 1e-4)
		pos = res.Position
	}
	assert.Greater(t, pos.Z(), float32(0.1))
}

func TestIntegrateWallZeroesVelocityAlongNormal(t *testing.T) {
	w := floorWorld()
	// wall face at x=2
	w.AddStatic(mgl32.Vec3{2, 0, -5}, mgl32.Vec3{3, 4, 5})
	pos := mgl32.Vec3{1.5, standingY(), 0}

	res := w.Integrate(body, pos, mgl32.Vec3{5, 0, 3}, 0.2)
	assert.InDelta(t, 2-body.Radius, res.Position.X(), 1e-4)
	assert.InDelta(t, 0.6, res.Position.Z(), 1e-5)
	assert.Zero(t, res.Velocity.X())
	assert.Equal(t, float32(3), res.Velocity.Z())
	assert.True(t, res.BlockedBy(mgl32.Vec3{-1, 0, 0}))
	assert.False(t, res.Grounded)
}

func TestIntegrateCeiling(t *testing.T) {
	w := NewWorld()
	w.AddStatic(mgl32.Vec3{-5, 3, -5}, mgl32.Vec3{5, 4, 5})
	top := standingY()
	pos := mgl32.Vec3{0, 3 - top - 0.05, 0}

	res := w.Integrate(body, pos, mgl32.Vec3{0, 6, 0}, 0.1)
	assert.InDelta(t, 3-top, res.Position.Y(), 1e-4)
	assert.Zero(t, res.Velocity.Y())
	assert.True(t, res.BlockedBy(NormalDown))
	assert.False(t, res.Grounded)
}

func TestIntegrateWalkOffLedge(t *testing.T) {
	w := NewWorld()
	w.AddStatic(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 0, 1})
	pos := mgl32.Vec3{0, standingY(), 3}

	res := w.Integrate(body, pos, mgl32.Vec3{0, -1, 0}, 0.1)
	assert.False(t, res.Grounded)
	assert.InDelta(t, standingY()-0.1, res.Position.Y(), 1e-5)
}

func TestIntegrateRejectsBadInput(t *testing.T) {
	w := floorWorld()
	pos := mgl32.Vec3{0, 5, 0}
	nan := math32.NaN()

	res := w.Integrate(body, pos, mgl32.Vec3{nan, 0, 0}, 0.1)
	assert.Equal(t, pos, res.Position)
	assert.Equal(t, mgl32.Vec3{}, res.Velocity)

	res = w.Integrate(body, pos, mgl32.Vec3{1, 0, 0}, 0)
	assert.Equal(t, pos, res.Position)

	w.Clear()
	assert.Empty(t, w.Statics())
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}
