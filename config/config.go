// Package config holds the session-wide tuning document.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/logger"
	"github.com/milk9111/embodiment/motion"
	"github.com/milk9111/embodiment/prefabs"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

const DefaultFile = "config.yaml"

type NavigationMode string

const (
	NavigationDirect   NavigationMode = "direct"
	NavigationSteering NavigationMode = "steering"
	NavigationScript   NavigationMode = "script"
)

type Navigation struct {
	Mode      NavigationMode `yaml:"mode"`
	Radius    float32        `yaml:"radius"`
	Lookahead float32        `yaml:"lookahead"`
	Script    string         `yaml:"script"`
}

type Animation struct {
	// WalkThreshold is the horizontal speed above which the walk clip plays.
	WalkThreshold float32 `yaml:"walk_threshold"`
}

type Config struct {
	TickRate   int                      `yaml:"tick_rate"`
	FOV        motion.FOVCurve          `yaml:"fov"`
	Camera     component.CameraSettings `yaml:"camera"`
	Navigation Navigation               `yaml:"navigation"`
	Animation  Animation                `yaml:"animation"`
	Log        logger.Config            `yaml:"log"`
}

func Default() Config {
	return Config{
		TickRate: 60,
		FOV:      motion.DefaultFOVCurve(),
		Camera:   component.DefaultCameraSettings(),
		Navigation: Navigation{
			Mode:      NavigationSteering,
			Radius:    0.4,
			Lookahead: 2,
			Script:    "follow.tengo",
		},
		Animation: Animation{WalkThreshold: 0.1},
		Log:       logger.Config{Level: "info", Format: "text"},
	}
}

// TickDuration is the fixed simulation step in seconds.
func (c Config) TickDuration() float32 {
	return 1 / float32(c.TickRate)
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.FOV.MaxSpeed <= 0 {
		return fmt.Errorf("%w: fov.max_speed_for_fov must be positive", ErrInvalid)
	}
	if c.FOV.Min <= 0 || c.FOV.Max < c.FOV.Min {
		return fmt.Errorf("%w: fov range [%v, %v]", ErrInvalid, c.FOV.Min, c.FOV.Max)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("%w: camera distance range [%v, %v]", ErrInvalid, c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	switch c.Navigation.Mode {
	case NavigationDirect, NavigationSteering:
	case NavigationScript:
		if c.Navigation.Script == "" {
			return fmt.Errorf("%w: navigation.script required in script mode", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown navigation mode %q", ErrInvalid, c.Navigation.Mode)
	}
	return nil
}

// Load reads a prefab-relative config file over the defaults.
func Load(name string) (Config, error) {
	data, err := prefabs.Load(name)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads a config file from an explicit path over the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
