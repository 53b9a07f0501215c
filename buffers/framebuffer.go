package buffers

import (
	"github.com/bloeys/nrender/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type FramebufferAttachmentType uint8

const (
	FramebufferAttachmentType_Unknown FramebufferAttachmentType = iota
	// Texture attachments can be sampled later
	FramebufferAttachmentType_Texture
	// Renderbuffer attachments can only be rendered into and blitted
	FramebufferAttachmentType_Renderbuffer
)

type FramebufferAttachmentDataFormat uint8

const (
	FramebufferAttachmentDataFormat_Unknown FramebufferAttachmentDataFormat = iota
	FramebufferAttachmentDataFormat_RGB8
	FramebufferAttachmentDataFormat_RGBA8
	FramebufferAttachmentDataFormat_SRGBA
	FramebufferAttachmentDataFormat_Depth24Stencil8
)

type attachmentFormatInfo struct {
	internalFormat int32
	format         uint32
	dataType       uint32
	isDepth        bool
}

var attachmentFormatInfos = [...]attachmentFormatInfo{
	FramebufferAttachmentDataFormat_RGB8:            {internalFormat: gl.RGB8, format: gl.RGB, dataType: gl.UNSIGNED_BYTE},
	FramebufferAttachmentDataFormat_RGBA8:           {internalFormat: gl.RGBA8, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE},
	FramebufferAttachmentDataFormat_SRGBA:           {internalFormat: gl.SRGB8_ALPHA8, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE},
	FramebufferAttachmentDataFormat_Depth24Stencil8: {internalFormat: gl.DEPTH24_STENCIL8, format: gl.DEPTH_STENCIL, dataType: gl.UNSIGNED_INT_24_8, isDepth: true},
}

func (f FramebufferAttachmentDataFormat) info() *attachmentFormatInfo {

	if f == FramebufferAttachmentDataFormat_Unknown || int(f) >= len(attachmentFormatInfos) {
		logging.ErrLog.Panicf("unknown framebuffer attachment data format. Format=%d\n", f)
	}

	return &attachmentFormatInfos[f]
}

func (f FramebufferAttachmentDataFormat) IsDepthFormat() bool {
	return f.info().isDepth
}

type FramebufferAttachment struct {
	Id     uint32
	Type   FramebufferAttachmentType
	Format FramebufferAttachmentDataFormat
}

// Framebuffer is an offscreen render target. All attachments share the framebuffer size
type Framebuffer struct {
	Id          uint32
	Attachments []FramebufferAttachment
	Width       uint32
	Height      uint32

	colorAttachmentCount uint32
}

func (fbo *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
}

func (fbo *Framebuffer) Size() (width, height uint32) {
	return fbo.Width, fbo.Height
}

// IsComplete returns true if OpenGL reports that the fbo is usable.
// The default framebuffer is bound afterwards
func (fbo *Framebuffer) IsComplete() bool {
	fbo.Bind()
	isComplete := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return isComplete
}

func (fbo *Framebuffer) NewColorAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if attachFormat.IsDepthFormat() {
		logging.ErrLog.Panicf("failed creating color attachment for framebuffer because format=%d is a depth format\n", attachFormat)
	}

	fbo.attach(FramebufferAttachment{Type: attachType, Format: attachFormat})
}

func (fbo *Framebuffer) NewDepthStencilAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if !attachFormat.IsDepthFormat() {
		logging.ErrLog.Panicf("failed creating depth-stencil attachment for framebuffer because format=%d is not a depth format\n", attachFormat)
	}

	for _, a := range fbo.Attachments {
		if a.Format.IsDepthFormat() {
			logging.ErrLog.Panicln("failed creating depth-stencil attachment for framebuffer because one already exists")
		}
	}

	fbo.attach(FramebufferAttachment{Type: attachType, Format: attachFormat})
}

// attach allocates storage for a at the framebuffer size and attaches it.
// The default framebuffer is bound afterwards
func (fbo *Framebuffer) attach(a FramebufferAttachment) {

	info := a.Format.info()

	attachmentPoint := uint32(gl.DEPTH_STENCIL_ATTACHMENT)
	if !info.isDepth {
		attachmentPoint = gl.COLOR_ATTACHMENT0 + fbo.colorAttachmentCount
	}

	fbo.Bind()

	switch a.Type {

	case FramebufferAttachmentType_Texture:

		gl.GenTextures(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Panicf("failed to generate texture for framebuffer. GlError=%d\n", gl.GetError())
		}

		gl.BindTexture(gl.TEXTURE_2D, a.Id)
		gl.TexImage2D(gl.TEXTURE_2D, 0, info.internalFormat, int32(fbo.Width), int32(fbo.Height), 0, info.format, info.dataType, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachmentPoint, gl.TEXTURE_2D, a.Id, 0)

	case FramebufferAttachmentType_Renderbuffer:

		gl.GenRenderbuffers(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Panicf("failed to generate render buffer for framebuffer. GlError=%d\n", gl.GetError())
		}

		gl.BindRenderbuffer(gl.RENDERBUFFER, a.Id)
		gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(info.internalFormat), int32(fbo.Width), int32(fbo.Height))
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachmentPoint, gl.RENDERBUFFER, a.Id)

	default:
		logging.ErrLog.Panicf("unknown framebuffer attachment type. Type=%d\n", a.Type)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if !info.isDepth {
		fbo.colorAttachmentCount++
	}
	fbo.Attachments = append(fbo.Attachments, a)
}

// Resize recreates all attachments with the new size, keeping their types and formats.
// The default framebuffer is bound afterwards
func (fbo *Framebuffer) Resize(width, height uint32) {

	if width == fbo.Width && height == fbo.Height {
		return
	}

	oldAttachments := fbo.Attachments
	fbo.deleteAttachments()

	fbo.Width = width
	fbo.Height = height
	for _, a := range oldAttachments {
		fbo.attach(FramebufferAttachment{Type: a.Type, Format: a.Format})
	}
}

// BlitToBackBuffer copies the first color attachment into the default framebuffer,
// scaling it to the given size
func (fbo *Framebuffer) BlitToBackBuffer(dstWidth, dstHeight int32) {

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fbo.Id)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)

	gl.BlitFramebuffer(
		0, 0, int32(fbo.Width), int32(fbo.Height),
		0, 0, dstWidth, dstHeight,
		gl.COLOR_BUFFER_BIT,
		gl.LINEAR,
	)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (fbo *Framebuffer) deleteAttachments() {

	for i := range fbo.Attachments {

		a := &fbo.Attachments[i]
		if a.Type == FramebufferAttachmentType_Texture {
			gl.DeleteTextures(1, &a.Id)
		} else {
			gl.DeleteRenderbuffers(1, &a.Id)
		}
	}

	fbo.Attachments = nil
	fbo.colorAttachmentCount = 0
}

func (fbo *Framebuffer) Delete() {

	if fbo.Id == 0 {
		return
	}

	fbo.deleteAttachments()
	gl.DeleteFramebuffers(1, &fbo.Id)
	fbo.Id = 0
}

func NewFramebuffer(width, height uint32) *Framebuffer {

	fbo := &Framebuffer{
		Width:  width,
		Height: height,
	}

	gl.GenFramebuffers(1, &fbo.Id)
	if fbo.Id == 0 {
		logging.ErrLog.Panicf("failed to generate framebuffer. GlError=%d\n", gl.GetError())
	}

	return fbo
}
