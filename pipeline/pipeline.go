// Package pipeline wires the controller systems into the fixed per-tick
// stage order:
//
//	input → camera → intent → reconcile → integrate → feedback → events
//
// Each shared resource has one writing stage; later stages of the same tick
// only read it.
package pipeline

import (
	"fmt"

	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/system"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/navigation"
	"github.com/milk9111/embodiment/physics"
	"github.com/sirupsen/logrus"
)

const (
	StageInput     = "input"
	StageCamera    = "camera"
	StageIntent    = "intent"
	StageReconcile = "reconcile"
	StageIntegrate = "integrate"
	StageFeedback  = "feedback"
	StageEvents    = "events"
)

// Order lists the stages in execution order.
var Order = []string{
	StageInput,
	StageCamera,
	StageIntent,
	StageReconcile,
	StageIntegrate,
	StageFeedback,
	StageEvents,
}

type Options struct {
	Input         system.InputSource
	Physics       physics.Backend
	Navigator     navigation.Navigator
	FOV           motion.FOVCurve
	WalkThreshold float32
	Log           logrus.FieldLogger
	EventSink     func(ecs.Event)
}

// Pipeline is a scheduler with handles to the systems that can be retuned at
// runtime.
type Pipeline struct {
	*ecs.Scheduler

	Follower    *system.FollowerSystem
	SpeedEffect *system.SpeedEffectSystem
	Animation   *system.AnimationSystem
}

func New(opts Options) (*Pipeline, error) {
	if opts.FOV == (motion.FOVCurve{}) {
		opts.FOV = motion.DefaultFOVCurve()
	}

	p := &Pipeline{
		Scheduler:   ecs.NewScheduler(),
		Follower:    system.NewFollowerSystem(opts.Navigator),
		SpeedEffect: system.NewSpeedEffectSystem(opts.FOV),
		Animation:   system.NewAnimationSystem(opts.WalkThreshold),
	}

	stages := []struct {
		name    string
		systems []ecs.System
	}{
		{StageInput, []ecs.System{system.NewInputSystem(opts.Input)}},
		{StageCamera, []ecs.System{system.NewCameraRigSystem(opts.Log)}},
		{StageIntent, []ecs.System{system.NewIntentSystem()}},
		{StageReconcile, []ecs.System{p.Follower, system.NewFacingSystem(), system.NewCameraModeSystem(opts.Log)}},
		{StageIntegrate, []ecs.System{system.NewJumpSystem(opts.Log), system.NewMovementSystem(opts.Physics, opts.Log)}},
		{StageFeedback, []ecs.System{system.NewCameraSystem(), p.SpeedEffect, p.Animation}},
		{StageEvents, []ecs.System{system.NewEventLogSystem(opts.Log, opts.EventSink)}},
	}
	for _, st := range stages {
		if err := p.AddStage(st.name, st.systems...); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
	}
	return p, nil
}
