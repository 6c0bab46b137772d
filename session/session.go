// Package session owns one running level: the ECS world, the collision world,
// the navigation source and the tick pipeline.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/assets"
	"github.com/milk9111/embodiment/config"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/ecs/entity"
	"github.com/milk9111/embodiment/ecs/system"
	"github.com/milk9111/embodiment/logger"
	"github.com/milk9111/embodiment/navigation"
	"github.com/milk9111/embodiment/physics"
	"github.com/milk9111/embodiment/pipeline"
	"github.com/milk9111/embodiment/prefabs"
	"github.com/sirupsen/logrus"
)

// maxCatchUp bounds how many fixed ticks Advance runs for one call.
const maxCatchUp = 5

type Options struct {
	Input     system.InputSource
	Models    entity.ModelResolver
	Log       *logrus.Logger
	EventSink func(ecs.Event)
}

type Session struct {
	cfg      config.Config
	opts     Options
	log      *logrus.Logger
	world    *ecs.World
	physics  *physics.World
	steering *navigation.Steering
	pipeline *pipeline.Pipeline

	accumulator time.Duration
}

func New(cfg config.Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Log == nil {
		opts.Log = logger.L()
	}
	if opts.Models == nil {
		catalog, err := assets.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		opts.Models = catalog
	}

	s := &Session{
		cfg:      cfg,
		opts:     opts,
		log:      opts.Log,
		world:    ecs.NewWorld(),
		physics:  physics.NewWorld(),
		steering: navigation.NewSteering(cfg.Navigation.Radius, cfg.Navigation.Lookahead),
	}

	nav, err := s.navigator()
	if err != nil {
		return nil, err
	}
	s.pipeline, err = pipeline.New(pipeline.Options{
		Input:         opts.Input,
		Physics:       s.physics,
		Navigator:     nav,
		FOV:           cfg.FOV,
		WalkThreshold: cfg.Animation.WalkThreshold,
		Log:           opts.Log,
		EventSink:     opts.EventSink,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) World() *ecs.World { return s.world }
func (s *Session) Physics() *physics.World { return s.physics }
func (s *Session) Pipeline() *pipeline.Pipeline { return s.pipeline }
func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) navigator() (navigation.Navigator, error) {
	switch s.cfg.Navigation.Mode {
	case config.NavigationDirect:
		return navigation.Direct{}, nil
	case config.NavigationScript:
		src, err := prefabs.LoadScript(s.cfg.Navigation.Script)
		if err != nil {
			return nil, fmt.Errorf("session: load script %q: %w", s.cfg.Navigation.Script, err)
		}
		return navigation.NewScript(s.cfg.Navigation.Script, src)
	default:
		return s.steering, nil
	}
}

// LoadLevel spawns a level's colliders and entities. If any entity fails to
// build, the error is returned and nothing else from that spawn is kept.
func (s *Session) LoadLevel(name string) error {
	level, err := prefabs.LoadLevelSpec(name)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	for _, c := range level.Colliders {
		if err := s.AddCollider(c.Min, c.Max, c.Floor); err != nil {
			return fmt.Errorf("session: level %s: %w", name, err)
		}
	}

	var errs []error
	for _, spawn := range level.Spawns {
		if _, err := s.Spawn(spawn.Prefab, spawn.Position); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("session: level %s: %w", name, err)
	}

	s.log.WithFields(logrus.Fields{
		"level":     level.Name,
		"colliders": len(level.Colliders),
		"entities":  len(ecs.Entities(s.world)),
	}).Info("level loaded")
	return nil
}

// AddCollider registers static geometry with the world, physics and
// navigation.
func (s *Session) AddCollider(min, max mgl32.Vec3, floor bool) error {
	e := ecs.CreateEntity(s.world)
	c := &component.StaticCollider{Min: min, Max: max, Floor: floor}
	if err := ecs.Add(s.world, e, component.StaticColliderComponent.Kind(), c); err != nil {
		return err
	}
	s.registerCollider(c)
	return nil
}

func (s *Session) registerCollider(c *component.StaticCollider) {
	s.physics.AddStatic(c.Min, c.Max)
	if !c.Floor {
		s.steering.AddObstacle(c.Min, c.Max)
	}
}

// Spawn builds an entity prefab, optionally moving it to pos. A prefab that
// carries a static collider is registered as level geometry; its box is in
// world space and does not follow pos.
func (s *Session) Spawn(prefab string, pos *mgl32.Vec3) (ecs.Entity, error) {
	e, err := entity.BuildEntity(s.world, prefab, entity.Options{
		Models: s.opts.Models,
		Camera: s.cfg.Camera,
	})
	if err != nil {
		s.log.WithError(err).WithField("prefab", prefab).Error("spawn failed")
		return 0, err
	}
	if pos != nil {
		if err := entity.SetEntityPosition(s.world, e, *pos); err != nil {
			ecs.DestroyEntity(s.world, e)
			return 0, fmt.Errorf("session: place %s: %w", prefab, err)
		}
	}
	if c, ok := ecs.Get(s.world, e, component.StaticColliderComponent.Kind()); ok {
		s.registerCollider(c)
	}
	return e, nil
}

// Step runs exactly one tick of dt seconds.
func (s *Session) Step(dt float32) {
	s.pipeline.Update(s.world, dt)
}

// Advance runs as many fixed ticks as elapsed covers and returns how many ran.
// Leftover time carries into the next call.
func (s *Session) Advance(elapsed time.Duration) int {
	step := time.Second / time.Duration(s.cfg.TickRate)
	s.accumulator += elapsed
	if limit := step * maxCatchUp; s.accumulator > limit {
		s.accumulator = limit
	}
	n := 0
	for s.accumulator >= step {
		s.Step(s.cfg.TickDuration())
		s.accumulator -= step
		n++
	}
	return n
}

// Player returns the controlled entity.
func (s *Session) Player() (ecs.Entity, bool) {
	return ecs.First(s.world, component.PlayerTagComponent.Kind())
}

// Camera returns the rig entity.
func (s *Session) Camera() (ecs.Entity, bool) {
	return ecs.First(s.world, component.CameraRigComponent.Kind())
}
