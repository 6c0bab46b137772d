// Package assets resolves model names used by prefabs to the scenes the
// renderer loads. Only the catalog lives here; loading meshes is the
// renderer's job.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrModelNotFound = errors.New("assets: model not found")

//go:embed *.yaml
var assetsFS embed.FS

const catalogFile = "models.yaml"

// ModelInfo describes one character or prop scene.
type ModelInfo struct {
	Scene string  `yaml:"scene"`
	Scale float32 `yaml:"scale"`
}

type Catalog struct {
	models map[string]ModelInfo
}

func NewCatalog(models map[string]ModelInfo) *Catalog {
	c := &Catalog{models: make(map[string]ModelInfo, len(models))}
	for name, m := range models {
		c.models[name] = m
	}
	return c
}

// LoadCatalog reads models.yaml, preferring a copy on disk under assets/ so
// the catalog can be edited without rebuilding.
func LoadCatalog() (*Catalog, error) {
	data, err := LoadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", catalogFile, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Models map[string]ModelInfo `yaml:"models"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: unmarshal catalog: %w", err)
	}
	return NewCatalog(doc.Models), nil
}

// Model returns the named model. A model without a scene counts as missing.
func (c *Catalog) Model(name string) (ModelInfo, error) {
	if c == nil {
		return ModelInfo{}, fmt.Errorf("%w: %q (no catalog)", ErrModelNotFound, name)
	}
	m, ok := c.models[name]
	if !ok || strings.TrimSpace(m.Scene) == "" {
		return ModelInfo{}, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	return m, nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile loads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if data, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(clean)
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
