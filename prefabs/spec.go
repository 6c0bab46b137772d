package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BoxSpec is an axis aligned box in world units.
type BoxSpec struct {
	Min   mgl32.Vec3 `yaml:"min,flow"`
	Max   mgl32.Vec3 `yaml:"max,flow"`
	Floor bool       `yaml:"floor"`
}

// SpawnSpec places an entity prefab in a level. A nil Position keeps the
// prefab's own transform.
type SpawnSpec struct {
	Prefab   string      `yaml:"prefab"`
	Position *mgl32.Vec3 `yaml:"position,flow"`
}

type LevelSpec struct {
	Name      string      `yaml:"name"`
	Colliders []BoxSpec   `yaml:"colliders"`
	Spawns    []SpawnSpec `yaml:"spawns"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	for i, c := range spec.Colliders {
		for axis := 0; axis < 3; axis++ {
			if c.Max[axis] <= c.Min[axis] {
				return nil, fmt.Errorf("prefabs: level %s: collider %d is empty on axis %d", filename, i, axis)
			}
		}
	}
	for i, s := range spec.Spawns {
		if s.Prefab == "" {
			return nil, fmt.Errorf("prefabs: level %s: spawn %d has no prefab", filename, i)
		}
	}
	return &spec, nil
}
