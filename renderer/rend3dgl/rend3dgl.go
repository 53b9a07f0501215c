package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct {
	cullingEnabled bool
}

func (r *Rend3DGL) SetViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (r *Rend3DGL) Clear(color *gglm.Vec4) {
	gl.ClearColor(color.Data[0], color.Data[1], color.Data[2], color.Data[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EnableDepthTest is always sent to GL since other passes (e.g. ui) may have disabled it
func (r *Rend3DGL) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Rend3DGL) EnableBackFaceCulling() {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	r.cullingEnabled = true
}

// DrawCubemap draws a cube at maximum depth, so it only shows where nothing else was drawn
func (r *Rend3DGL) DrawCubemap(mesh renderer.Mesh, mat renderer.Material) {

	mat.BindShader()
	mat.Apply()

	gl.DepthFunc(gl.LEQUAL)
	if r.cullingEnabled {
		gl.Disable(gl.CULL_FACE)
	}

	mesh.Draw()

	gl.DepthFunc(gl.LESS)
	if r.cullingEnabled {
		gl.Enable(gl.CULL_FACE)
	}
}

func (r *Rend3DGL) UnbindVertexArray() {
	gl.BindVertexArray(0)
}

func (r *Rend3DGL) FrameEnd() {
	r.cullingEnabled = false
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
