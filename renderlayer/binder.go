package renderlayer

import (
	"github.com/bloeys/nrender/renderer"
)

// Binder tracks the bound material so consecutive draws with the same material skip
// rebinding the shader and reapplying parameters.
//
// Materials are compared by identity. The zero Binder has no material bound.
type Binder struct {
	current renderer.Material
}

// Use binds the shader and applies mat if it differs from the bound material.
// Returns true if a bind happened.
func (b *Binder) Use(mat renderer.Material) bool {

	if b.current == mat {
		return false
	}

	b.current = mat
	mat.BindShader()
	mat.Apply()
	return true
}

// Current returns the bound material, or nil if none is
func (b *Binder) Current() renderer.Material {
	return b.current
}

// Reset forgets the bound material. Must be called whenever GL state may have changed
// outside the binder, e.g. at the start of a frame.
func (b *Binder) Reset() {
	b.current = nil
}
