package renderlayer

import (
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/uniforms"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RenderFlags uniforms.RenderFlags `yaml:"renderFlags"`
	ClearColor  [4]float32           `yaml:"clearColor"`
	// BlitToScreen tells the app to copy the layer output to the window after the pass
	BlitToScreen bool `yaml:"blitToScreen"`
	// SortByMaterial groups renderables sharing a material before drawing, ordered by
	// the first appearance of each material. Fewer rebinds, but draws are no longer in scene order
	SortByMaterial bool `yaml:"sortByMaterial"`
	// ColorLUTPath is an optional .cube file used as the scene color LUT
	ColorLUTPath string `yaml:"colorLUTPath"`
}

func (c *Config) ClearColorVec() gglm.Vec4 {
	return gglm.NewVec4(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3])
}

func DefaultConfig() Config {
	return Config{
		RenderFlags:  uniforms.RenderFlags_EnableColorCorrection,
		ClearColor:   [4]float32{0.1, 0.1, 0.1, 1},
		BlitToScreen: true,
	}
}

// ParseConfig decodes yaml on top of DefaultConfig, so missing keys keep their defaults
func ParseConfig(data []byte) (Config, error) {

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse render layer config: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads a yaml config file. A missing file returns DefaultConfig
func LoadConfig(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read render layer config '%s': %w", path, err)
	}

	return ParseConfig(data)
}
