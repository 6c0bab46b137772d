package ecs

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

var (
	ErrDuplicateStage = errors.New("ecs: duplicate stage")
	ErrUnknownStage   = errors.New("ecs: unknown stage")
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f != nil {
		f(w)
	}
}

// Scheduler runs named stages in insertion order. Systems inside a stage run
// in the order they were added. Stage order is fixed once registered so the
// per-tick write/read ordering can be audited through Stages.
type Scheduler struct {
	stages *orderedmap.OrderedMap[string, []System]
}

func NewScheduler() *Scheduler {
	return &Scheduler{stages: orderedmap.NewOrderedMap[string, []System]()}
}

// AddStage appends a new stage after every existing stage.
func (s *Scheduler) AddStage(name string, systems ...System) error {
	if _, ok := s.stages.Get(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStage, name)
	}
	list := make([]System, 0, len(systems))
	for _, system := range systems {
		if system != nil {
			list = append(list, system)
		}
	}
	s.stages.Set(name, list)
	return nil
}

// Add appends a system to an existing stage.
func (s *Scheduler) Add(stage string, system System) error {
	list, ok := s.stages.Get(stage)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	if system == nil {
		return nil
	}
	s.stages.Set(stage, append(list, system))
	return nil
}

// Stages returns the stage names in execution order.
func (s *Scheduler) Stages() []string {
	names := make([]string, 0, s.stages.Len())
	for el := s.stages.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Systems returns every system in execution order.
func (s *Scheduler) Systems() []System {
	var systems []System
	for el := s.stages.Front(); el != nil; el = el.Next() {
		systems = append(systems, el.Value...)
	}
	return systems
}

// Update runs one tick of dt seconds. Events pushed during the tick are
// visible to later systems of the same tick and dropped afterwards.
func (s *Scheduler) Update(w *World, dt float32) {
	if w == nil {
		return
	}
	w.delta = dt
	for el := s.stages.Front(); el != nil; el = el.Next() {
		for _, system := range el.Value {
			system.Update(w)
		}
	}
	w.events.flush()
	w.tick++
}
