package session

import (
	"fmt"

	"github.com/milk9111/embodiment/config"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/navigation"
	"github.com/milk9111/embodiment/prefabs"
	"github.com/sirupsen/logrus"
)

// Reload applies an edited prefab file to the running session. Tuning from
// config.yaml and the navigation script are hot swapped; entity prefabs only
// affect future spawns.
func (s *Session) Reload(change prefabs.Change) error {
	switch change.Kind {
	case prefabs.ChangeScript:
		if s.cfg.Navigation.Mode != config.NavigationScript || prefabs.ScriptPath(change.Name) != prefabs.ScriptPath(s.cfg.Navigation.Script) {
			return nil
		}
		src, err := prefabs.LoadScript(change.Name)
		if err != nil {
			return fmt.Errorf("session: reload %s: %w", change.Name, err)
		}
		nav, err := navigation.NewScript(change.Name, src)
		if err != nil {
			return fmt.Errorf("session: reload %s: %w", change.Name, err)
		}
		s.pipeline.Follower.SetNavigator(nav)
	case prefabs.ChangeSpec:
		if change.Name != config.DefaultFile {
			return nil
		}
		cfg, err := config.Load(change.Name)
		if err != nil {
			return fmt.Errorf("session: reload %s: %w", change.Name, err)
		}
		s.ApplyTuning(cfg)
	}
	s.log.WithField("file", change.Name).Info("reloaded")
	return nil
}

// ApplyTuning swaps in tuning that can change while running. Tick rate and
// navigation mode stay as they were at start.
func (s *Session) ApplyTuning(cfg config.Config) {
	s.cfg.FOV = cfg.FOV
	s.cfg.Camera = cfg.Camera
	s.cfg.Animation = cfg.Animation
	s.pipeline.SpeedEffect.Curve = cfg.FOV
	s.pipeline.Animation.WalkThreshold = cfg.Animation.WalkThreshold

	ecs.ForEach(s.world, component.CameraRigComponent.Kind(), func(e ecs.Entity, rig *component.CameraRig) {
		rig.Settings = cfg.Camera
	})

	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		s.log.SetLevel(lvl)
	}
}
