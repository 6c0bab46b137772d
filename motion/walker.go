package motion

import "github.com/go-gl/mathgl/mgl32"

// WalkTuning configures horizontal movement.
type WalkTuning struct {
	WalkSpeed        float32 `yaml:"walk_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	// Acceleration bounds the change of horizontal velocity per second, for
	// speeding up and slowing down alike.
	Acceleration float32 `yaml:"acceleration"`
}

// DefaultWalkTuning matches the player prefab defaults.
func DefaultWalkTuning() WalkTuning {
	return WalkTuning{WalkSpeed: 4, SprintMultiplier: 1.8, Acceleration: 40}
}

// TargetSpeed returns the horizontal speed the walker aims for.
func (t WalkTuning) TargetSpeed(sprinting bool) float32 {
	if sprinting && t.SprintMultiplier > 0 {
		return t.WalkSpeed * t.SprintMultiplier
	}
	return t.WalkSpeed
}

// WalkVelocity returns the next horizontal velocity. current's vertical part is
// ignored and the result's vertical part is zero. Without a direction the
// velocity decays toward zero under the same acceleration bound.
func WalkVelocity(current mgl32.Vec3, dir mgl32.Vec3, hasDir, sprinting bool, t WalkTuning, dt float32) mgl32.Vec3 {
	target := mgl32.Vec3{}
	if hasDir {
		target = Horizontal(dir).Mul(t.TargetSpeed(sprinting))
	}
	return Approach(Horizontal(current), target, t.Acceleration*dt)
}

// Approach moves current toward target by at most maxDelta.
func Approach(current, target mgl32.Vec3, maxDelta float32) mgl32.Vec3 {
	if !Finite(current) {
		current = mgl32.Vec3{}
	}
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxDelta || dist < 1e-6 {
		return target
	}
	if maxDelta <= 0 {
		return current
	}
	return current.Add(delta.Mul(maxDelta / dist))
}
