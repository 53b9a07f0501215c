package uniforms

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RenderFlags is a bitmask of post-processing toggles read by shaders through FrameUniforms
type RenderFlags uint32

const (
	RenderFlags_None                  RenderFlags = iota
	RenderFlags_EnableColorCorrection RenderFlags = 1 << (iota - 1)
)

var renderFlagNames = []struct {
	Name string
	Flag RenderFlags
}{
	{Name: "colorCorrection", Flag: RenderFlags_EnableColorCorrection},
}

func (rf *RenderFlags) Set(flags RenderFlags) {
	*rf |= flags
}

func (rf *RenderFlags) Remove(flags RenderFlags) {
	*rf &= ^flags
}

func (rf RenderFlags) Has(flags RenderFlags) bool {
	return rf&flags == flags
}

// Names returns the names of the set flags, in declaration order
func (rf RenderFlags) Names() []string {

	names := make([]string, 0, len(renderFlagNames))
	for i := 0; i < len(renderFlagNames); i++ {
		if rf.Has(renderFlagNames[i].Flag) {
			names = append(names, renderFlagNames[i].Name)
		}
	}

	return names
}

// ParseRenderFlag returns the flag with the given name
func ParseRenderFlag(name string) (RenderFlags, error) {

	for i := 0; i < len(renderFlagNames); i++ {
		if renderFlagNames[i].Name == name {
			return renderFlagNames[i].Flag, nil
		}
	}

	return RenderFlags_None, fmt.Errorf("unknown render flag '%s'", name)
}

// UnmarshalYAML decodes flags from a list of names, e.g. [colorCorrection]
func (rf *RenderFlags) UnmarshalYAML(value *yaml.Node) error {

	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("render flags must be a list of flag names: %w", err)
	}

	flags := RenderFlags_None
	for _, name := range names {

		f, err := ParseRenderFlag(name)
		if err != nil {
			return err
		}

		flags.Set(f)
	}

	*rf = flags
	return nil
}

func (rf RenderFlags) MarshalYAML() (any, error) {
	return rf.Names(), nil
}
