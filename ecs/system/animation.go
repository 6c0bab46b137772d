package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
)

// AnimationSystem picks the clip each character should play: aerial while
// airborne, walk while moving faster than WalkThreshold, idle otherwise.
type AnimationSystem struct {
	WalkThreshold float32
}

func NewAnimationSystem(walkThreshold float32) *AnimationSystem {
	return &AnimationSystem{WalkThreshold: walkThreshold}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterAnimationsComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, clips *component.CharacterAnimations, anim *component.Animation) {
		clip := clips.Idle

		body, hasBody := ecs.Get(w, e, component.KinematicBodyComponent.Kind())
		airborne := hasBody && !body.Grounded
		if jump, ok := ecs.Get(w, e, component.JumpComponent.Kind()); ok {
			airborne = jump.Machine.Airborne()
		}

		switch {
		case airborne && clips.Aerial != "":
			clip = clips.Aerial
		case !airborne && hasBody && body.HorizontalSpeed() > a.WalkThreshold && clips.Walk != "":
			clip = clips.Walk
		}

		anim.Changed = clip != anim.Current
		anim.Current = clip
	})
}
