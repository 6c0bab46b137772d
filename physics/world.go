package physics

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const contactEpsilon = 1e-4

// World holds the static colliders of a level.
type World struct {
	mu      sync.RWMutex
	statics []cube.BBox
}

func NewWorld() *World {
	return &World{}
}

// AddStatic adds a solid box spanning min to max.
func (w *World) AddStatic(min, max mgl32.Vec3) {
	w.AddBox(cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z()))
}

func (w *World) AddBox(b cube.BBox) {
	w.mu.Lock()
	w.statics = append(w.statics, b)
	w.mu.Unlock()
}

// Clear removes every static collider.
func (w *World) Clear() {
	w.mu.Lock()
	w.statics = nil
	w.mu.Unlock()
}

func (w *World) Statics() []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]cube.BBox, len(w.statics))
	copy(out, w.statics)
	return out
}

// Integrate sweeps shape from pos by vel*dt. The displacement is clipped on
// Y first, then X, then Z. A body whose downward motion is stopped is
// grounded.
func (w *World) Integrate(shape Capsule, pos, vel mgl32.Vec3, dt float32) Result {
	if !finite(vel) {
		vel = mgl32.Vec3{}
	}
	if !finite(pos) || dt <= 0 || !shape.Valid() {
		return Result{Position: pos, Velocity: vel}
	}

	disp := vel.Mul(dt)
	bb := shape.Box(pos)
	candidates := w.nearby(bb.Extend(disp).Grow(contactEpsilon))

	res := Result{Velocity: vel}
	var moved mgl32.Vec3
	for _, axis := range [3]int{1, 0, 2} {
		want := disp[axis]
		got := clipAxis(axis, bb, want, candidates)
		if math32.Abs(got-want) > 1e-6 {
			n := mgl32.Vec3{}
			if want < 0 {
				n[axis] = 1
			} else {
				n[axis] = -1
			}
			res.Blocked = append(res.Blocked, n)
			res.Velocity[axis] = 0
			if axis == 1 && want < 0 {
				res.Grounded = true
			}
		}
		var step mgl32.Vec3
		step[axis] = got
		bb = bb.Translate(step)
		moved[axis] = got
	}
	res.Position = pos.Add(moved)
	return res
}

func (w *World) nearby(area cube.BBox) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []cube.BBox
	for _, s := range w.statics {
		if s.IntersectsWith(area) {
			out = append(out, s)
		}
	}
	return out
}

// clipAxis limits d so that moving bb along axis does not enter any of the
// boxes it overlaps on the other two axes.
func clipAxis(axis int, bb cube.BBox, d float32, statics []cube.BBox) float32 {
	if d == 0 {
		return 0
	}
	for _, s := range statics {
		if !overlapsExcept(axis, bb, s) {
			continue
		}
		if d > 0 && bb.Max()[axis] <= s.Min()[axis]+contactEpsilon {
			if gap := s.Min()[axis] - bb.Max()[axis]; gap < d {
				d = math32.Max(gap, 0)
			}
		} else if d < 0 && bb.Min()[axis] >= s.Max()[axis]-contactEpsilon {
			if gap := s.Max()[axis] - bb.Min()[axis]; gap > d {
				d = math32.Min(gap, 0)
			}
		}
	}
	return d
}

func overlapsExcept(axis int, a, b cube.BBox) bool {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if a.Max()[i] <= b.Min()[i]+contactEpsilon || a.Min()[i] >= b.Max()[i]-contactEpsilon {
			return false
		}
	}
	return true
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
