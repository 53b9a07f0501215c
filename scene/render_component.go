package scene

import (
	"github.com/bloeys/nrender/renderer"
)

// RenderComponent pairs a mesh with the material it is drawn with.
// A nil Mesh is never drawn. A nil Material falls back to the scene default material.
type RenderComponent struct {
	ComponentBase
	Mesh     renderer.Mesh
	Material renderer.Material
}

func NewRenderComponent(mesh renderer.Mesh, mat renderer.Material) *RenderComponent {
	return &RenderComponent{
		Mesh:     mesh,
		Material: mat,
	}
}
