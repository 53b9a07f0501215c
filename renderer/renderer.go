// Package renderer holds the interfaces the render pass draws through.
// rend3dgl implements them on top of OpenGL, while tests use recording fakes.
package renderer

import (
	"github.com/bloeys/gglm/gglm"
)

// Mesh is geometry that can issue its own draw call(s)
type Mesh interface {
	Draw()
}

// Material is a shader program plus its parameters. Materials are compared by identity,
// so implementations should be pointer types.
type Material interface {
	// BindShader makes the material's shader program current
	BindShader()
	// Apply uploads the material's parameters and binds its textures. Expects BindShader to have been called
	Apply()
}

// Texture is any texture that can be bound to a texture unit
type Texture interface {
	Bind(slot uint32)
}

// RenderTarget is the output of a render pass (e.g. a framebuffer)
type RenderTarget interface {
	Bind()
	Resize(width, height uint32)
	Size() (width, height uint32)
}

type Render interface {
	SetViewport(width, height int32)
	// Clear clears color and depth of the currently bound target
	Clear(color *gglm.Vec4)
	EnableDepthTest()
	EnableBackFaceCulling()
	DrawCubemap(mesh Mesh, mat Material)
	UnbindVertexArray()
	FrameEnd()
}
