package ecs

import (
	"github.com/milk9111/embodiment/ecs/component"
)

// World owns entities, component storage, and per-tick timing.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	delta float32
	tick  uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Delta returns the duration of the tick being simulated, in seconds.
func (w *World) Delta() float32 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Tick returns how many ticks the scheduler has completed.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Add attaches (or replaces) a component value on an entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns the component pointer stored on an entity.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// First returns the first live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.store(kind.ID(), false).ids() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities carry the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

func snapshot(s *SparseSet) []entityID {
	ids := s.ids()
	if len(ids) == 0 {
		return nil
	}
	return append([]entityID(nil), ids...)
}

// ForEach visits every entity carrying component a.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(a.ID(), false)
	for _, id := range snapshot(sa) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 visits every entity carrying both components.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb := w.store(a.ID(), false), w.store(b.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range snapshot(sa) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 visits every entity carrying all three components.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc := w.store(a.ID(), false), w.store(b.ID(), false), w.store(c.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range snapshot(sa) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		vc, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// ForEach4 visits every entity carrying all four components.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc, sd := w.store(a.ID(), false), w.store(b.ID(), false), w.store(c.ID(), false), w.store(d.ID(), false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, id := range snapshot(sa) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		vc, okC := sc.Get(id).(*C)
		vd, okD := sd.Get(id).(*D)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}
