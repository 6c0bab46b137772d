// Command simulate runs a level headless for a fixed number of ticks with a
// scripted input sequence and logs the resulting events and final state.
package main

import (
	"flag"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/config"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/ecs/system"
	"github.com/milk9111/embodiment/logger"
	"github.com/milk9111/embodiment/session"
	"github.com/sirupsen/logrus"
)

func main() {
	levelName := flag.String("level", "level.yaml", "level prefab to load")
	ticks := flag.Int("ticks", 180, "number of ticks to simulate")
	jumpAt := flag.Int("jump-at", 30, "tick to press jump on; negative disables")
	sprint := flag.Bool("sprint", false, "hold sprint while walking")
	flag.Parse()

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.Init(cfg.Log)

	input := system.NewQueueInput()
	for i := 0; i < *ticks; i++ {
		input.Push(component.Input{
			Move:   mgl32.Vec2{0, 1},
			Sprint: *sprint,
			Jump:   i == *jumpAt,
		})
	}

	s, err := session.New(cfg, session.Options{
		Input: input,
		Log:   log,
		EventSink: func(evt ecs.Event) {
			log.WithFields(logrus.Fields{"event": evt.Type, "entity": evt.Entity}).Info("event")
		},
	})
	if err != nil {
		log.WithError(err).Fatal("create session")
	}
	if err := s.LoadLevel(*levelName); err != nil {
		log.WithError(err).Fatal("load level")
	}

	dt := cfg.TickDuration()
	for i := 0; i < *ticks; i++ {
		s.Step(dt)
	}

	player, ok := s.Player()
	if !ok {
		log.Error("level has no player")
		os.Exit(1)
	}
	w := s.World()
	fields := logrus.Fields{"ticks": w.Tick()}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		fields["position"] = t.Position
	}
	if body, ok := ecs.Get(w, player, component.KinematicBodyComponent.Kind()); ok {
		fields["speed"] = body.HorizontalSpeed()
		fields["grounded"] = body.Grounded
	}
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		fields["animation"] = anim.Current
	}
	log.WithFields(fields).Info("simulation finished")
}
