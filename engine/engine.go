// Package engine owns the SDL window, the OpenGL context and the frame loop.
// Everything in it must run on the main thread, which Init locks.
package engine

import (
	"fmt"
	"runtime"

	"github.com/bloeys/nrender/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var isInited = false

// glAttribs are applied before any window is created. The render pass needs a
// 4.1 core context with a depth buffer
var glAttribs = []struct {
	attr  sdl.GLattr
	value int
}{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},
	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},

	{sdl.GL_RED_SIZE, 8},
	{sdl.GL_GREEN_SIZE, 8},
	{sdl.GL_BLUE_SIZE, 8},
	{sdl.GL_ALPHA_SIZE, 8},
	{sdl.GL_DEPTH_SIZE, 24},
	{sdl.GL_DOUBLEBUFFER, 1},
	{sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1},
}

func Init() error {

	runtime.LockOSThread()
	timing.Init()

	if err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to init sdl: %w", err)
	}

	for _, a := range glAttribs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("failed to set gl attribute %d=%d: %w", a.attr, a.value, err)
		}
	}

	isInited = true
	return nil
}

// initOpenGL loads the GL functions of the current context and sets the state the
// engine expects. The render layer enables depth testing and culling itself
func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to init opengl: %w", err)
	}

	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetSrgbFramebuffer(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
		return
	}

	gl.Disable(gl.FRAMEBUFFER_SRGB)
}

func SetVSync(enabled bool) error {

	interval := 0
	if enabled {
		interval = 1
	}

	return sdl.GLSetSwapInterval(interval)
}
