package renderlayer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/nrender/uniforms"
)

func TestParseConfig(t *testing.T) {

	cfg, err := ParseConfig([]byte(`
renderFlags: []
clearColor: [0.5, 0.25, 0, 1]
sortByMaterial: true
colorLUTPath: ./res/luts/warm.cube
`))
	if err != nil {
		t.Fatalf("Expected no error parsing config, but got: %v", err)
	}

	if cfg.RenderFlags != uniforms.RenderFlags_None {
		t.Errorf("Expected no render flags, got %d", cfg.RenderFlags)
	}

	if cfg.ClearColor != [4]float32{0.5, 0.25, 0, 1} {
		t.Errorf("Unexpected clear color %v", cfg.ClearColor)
	}

	if !cfg.SortByMaterial || cfg.ColorLUTPath != "./res/luts/warm.cube" {
		t.Errorf("Unexpected config %+v", cfg)
	}

	// Not in the file so default is kept
	if !cfg.BlitToScreen {
		t.Errorf("Expected blitToScreen to keep its default")
	}
}

func TestParseConfigErrors(t *testing.T) {

	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "clearColor: [1, 2"},
		{name: "unknown flag", data: "renderFlags: [bloom]"},
		{name: "wrong type", data: "blitToScreen: [true]"},
	}

	for _, tt := range tests {
		if _, err := ParseConfig([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestLoadConfig(t *testing.T) {

	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to give defaults, but got: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Fatalf("Expected default config, got %+v", cfg)
	}

	path := filepath.Join(dir, "nrender.yaml")
	err = os.WriteFile(path, []byte("blitToScreen: false\nrenderFlags: [colorCorrection]\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error loading config, but got: %v", err)
	}

	if cfg.BlitToScreen || !cfg.RenderFlags.Has(uniforms.RenderFlags_EnableColorCorrection) {
		t.Fatalf("Unexpected config %+v", cfg)
	}
}
