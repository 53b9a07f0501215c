package renderlayer

import (
	"github.com/bloeys/nrender/buffers"
	"github.com/bloeys/nrender/logging"
	"github.com/bloeys/nrender/renderer"
	"github.com/bloeys/nrender/uniforms"
)

// GLLayer is a Layer drawing into an OpenGL framebuffer with GL uniform buffers
type GLLayer struct {
	*Layer
	Fbo *buffers.Framebuffer

	frameBuf    *buffers.UniformBuffer
	instanceBuf *buffers.UniformBuffer
}

// Blit copies the layer output to the window back buffer if blitting is enabled
func (g *GLLayer) Blit(windowWidth, windowHeight int32) {

	if !g.IsBlitEnabled() {
		return
	}

	g.Fbo.BlitToBackBuffer(windowWidth, windowHeight)
}

func (g *GLLayer) Delete() {
	g.Fbo.Delete()
	g.frameBuf.Delete()
	g.instanceBuf.Delete()
}

// NewGL sets up depth testing and back face culling, then creates a window sized framebuffer
// with an RGB8 color and a depth-stencil attachment, and both uniform buffers. Requires a GL context
func NewGL(cfg Config, windowWidth, windowHeight uint32, rend renderer.Render, clock Clock) *GLLayer {

	rend.EnableDepthTest()
	rend.EnableBackFaceCulling()

	fbo := buffers.NewFramebuffer(windowWidth, windowHeight)
	fbo.NewColorAttachment(buffers.FramebufferAttachmentType_Texture, buffers.FramebufferAttachmentDataFormat_RGB8)
	fbo.NewDepthStencilAttachment(buffers.FramebufferAttachmentType_Renderbuffer, buffers.FramebufferAttachmentDataFormat_Depth24Stencil8)

	if !fbo.IsComplete() {
		logging.ErrLog.Fatalln("Primary framebuffer is not complete")
	}

	frameBuf := uniforms.NewFrameUniformBuffer()
	instanceBuf := uniforms.NewInstanceUniformBuffer()

	return &GLLayer{
		Layer:       New(cfg, fbo, rend, frameBuf, instanceBuf, clock),
		Fbo:         fbo,
		frameBuf:    frameBuf,
		instanceBuf: instanceBuf,
	}
}
