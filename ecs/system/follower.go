package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/navigation"
)

// FollowerSystem feeds navigation output toward the player into each
// follower's walker, the same way the intent system does for the player.
type FollowerSystem struct {
	nav navigation.Navigator
}

func NewFollowerSystem(nav navigation.Navigator) *FollowerSystem {
	if nav == nil {
		nav = navigation.Direct{}
	}
	return &FollowerSystem{nav: nav}
}

// SetNavigator swaps the navigation source, e.g. after a script reload.
func (s *FollowerSystem) SetNavigator(nav navigation.Navigator) {
	if nav != nil {
		s.nav = nav
	}
}

func (s *FollowerSystem) Update(w *ecs.World) {
	var target *component.Transform
	if player, ok := controlled(w); ok {
		target, _ = ecs.Get(w, player, component.TransformComponent.Kind())
	}

	ecs.ForEach3(w, component.FollowerComponent.Kind(), component.WalkerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, f *component.Follower, walker *component.Walker, t *component.Transform) {
		walker.Sprinting = false
		if target == nil || t == target {
			walker.ClearDirection()
			return
		}
		gap := motion.Horizontal(target.Position.Sub(t.Position))
		if gap.Len() <= f.StopDistance {
			walker.ClearDirection()
			return
		}
		dir, ok := s.nav.Direction(t.Position, target.Position)
		if !ok {
			walker.ClearDirection()
			return
		}
		walker.SetDirection(dir)
	})
}
