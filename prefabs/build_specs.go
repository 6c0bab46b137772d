package prefabs

import (
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type NameComponentSpec struct {
	Value string `yaml:"value"`
}

type TransformComponentSpec struct {
	Position mgl32.Vec3  `yaml:"position,flow"`
	Yaw      float32     `yaml:"yaw"`
	Scale    *mgl32.Vec3 `yaml:"scale,flow"`
}

type KinematicBodyComponentSpec struct {
	Height float32 `yaml:"height"`
	Radius float32 `yaml:"radius"`
}

type WalkerComponentSpec struct {
	WalkSpeed        *float32 `yaml:"walk_speed"`
	SprintMultiplier *float32 `yaml:"sprint_multiplier"`
	Acceleration     *float32 `yaml:"acceleration"`
}

type JumpComponentSpec struct {
	Impulse       *float32 `yaml:"impulse"`
	Gravity       *float32 `yaml:"gravity"`
	MaxAscent     *float32 `yaml:"max_ascent"`
	TerminalSpeed *float32 `yaml:"terminal_speed"`
}

type CameraRigComponentSpec struct {
	Mode      string      `yaml:"mode"`
	Target    string      `yaml:"target"`
	Distance  float32     `yaml:"distance"`
	EyeHeight float32     `yaml:"eye_height"`
	Offset    *mgl32.Vec3 `yaml:"offset,flow"`
	Yaw       float32     `yaml:"yaw"`
	Pitch     float32     `yaml:"pitch"`
}

type ProjectionComponentSpec struct {
	Kind string  `yaml:"kind"`
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type VisibilityComponentSpec struct {
	Visible *bool `yaml:"visible"`
}

type FollowerComponentSpec struct {
	StopDistance float32 `yaml:"stop_distance"`
}

type ModelComponentSpec struct {
	Asset string `yaml:"asset"`
}

type AnimationsComponentSpec struct {
	Idle   string `yaml:"idle"`
	Walk   string `yaml:"walk"`
	Aerial string `yaml:"aerial"`
}

type StaticColliderComponentSpec struct {
	Min   mgl32.Vec3 `yaml:"min,flow"`
	Max   mgl32.Vec3 `yaml:"max,flow"`
	Floor bool       `yaml:"floor"`
}
