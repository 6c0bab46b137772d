package navigation

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/logger"
)

// Script runs a tengo program to pick a direction. The program reads the
// globals from_x, from_z, to_x, to_z and writes dx and dz.
type Script struct {
	mu       sync.Mutex
	name     string
	compiled *tengo.Compiled
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for _, g := range []string{"from_x", "from_z", "to_x", "to_z", "dx", "dz"} {
		if err := script.Add(g, 0.0); err != nil {
			return nil, fmt.Errorf("navigation: script %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("navigation: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Direction(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dx, dz, err := s.run(from, to)
	if err != nil {
		logger.L().WithError(err).WithField("script", s.name).Warn("navigation script failed")
		return mgl32.Vec3{}, false
	}
	return flatten(mgl32.Vec3{dx, 0, dz})
}

func (s *Script) run(from, to mgl32.Vec3) (dx, dz float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			dx, dz = 0, 0
			err = fmt.Errorf("navigation: script %s: %v", s.name, r)
		}
	}()

	set := map[string]float64{
		"from_x": float64(from.X()),
		"from_z": float64(from.Z()),
		"to_x":   float64(to.X()),
		"to_z":   float64(to.Z()),
		"dx":     0,
		"dz":     0,
	}
	for k, v := range set {
		if err := s.compiled.Set(k, v); err != nil {
			return 0, 0, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return float32(s.compiled.Get("dx").Float()), float32(s.compiled.Get("dz").Float()), nil
}
