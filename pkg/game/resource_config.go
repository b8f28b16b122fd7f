package game

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/types"
)

// ResourceConfig represents the texture configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	base_path: resources
//	textures:
//	  enemy:
//	    path: testasset.png
//	    width: 32
//	    height: 32
//	    color: {r: 90, g: 40, b: 130, a: 255}
type ResourceConfig struct {
	BasePath string                     `yaml:"base_path"` // Directory of all textures, relative to the asset root
	Textures map[string]TextureResource `yaml:"textures"`  // Texture definitions keyed by types.TextureID.Key()
}

// TextureResource is a single texture definition.
// Width, Height and Color describe the solid placeholder used when the file is missing.
type TextureResource struct {
	Path   string             `yaml:"path"`
	Width  int                `yaml:"width"`
	Height int                `yaml:"height"`
	Color  config.ColorConfig `yaml:"color"`
}

// ParseResourceConfig parses and validates resource YAML.
// Every texture id the renderer uses must be present.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	for _, id := range types.TextureIDs {
		res, ok := cfg.Textures[id.Key()]
		if !ok {
			return nil, fmt.Errorf("resource config missing texture %q", id.Key())
		}
		if res.Width <= 0 || res.Height <= 0 {
			return nil, fmt.Errorf("texture %q has invalid placeholder size %dx%d", id.Key(), res.Width, res.Height)
		}
	}

	return &cfg, nil
}
