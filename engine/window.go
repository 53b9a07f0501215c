package engine

import (
	"fmt"

	"github.com/bloeys/nrender/assert"
	"github.com/bloeys/nrender/input"
	"github.com/bloeys/nrender/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// ResizeCallback receives the drawable size before and after a window resize
type ResizeCallback func(oldWidth, oldHeight, newWidth, newHeight int32)

type Window struct {
	SDLWin *sdl.Window
	GlCtx  sdl.GLContext
	Rend   renderer.Render

	// EventCallbacks see every SDL event before the engine handles it
	EventCallbacks  []func(sdl.Event)
	ResizeCallbacks []ResizeCallback

	width  int32
	height int32
}

// Size returns the drawable size in pixels, which can differ from the window size on high dpi displays
func (w *Window) Size() (width, height int32) {
	return w.width, w.height
}

func (w *Window) pollEvents() {

	input.EventLoopStart()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		w.handleEvent(event)
	}
}

func (w *Window) handleEvent(event sdl.Event) {

	for _, cb := range w.EventCallbacks {
		cb(event)
	}

	switch e := event.(type) {

	case *sdl.KeyboardEvent:
		input.HandleKeyboardEvent(e)

	case *sdl.MouseButtonEvent:
		input.HandleMouseBtnEvent(e)

	case *sdl.MouseMotionEvent:
		input.HandleMouseMotionEvent(e)

	case *sdl.MouseWheelEvent:
		input.HandleMouseWheelEvent(e)

	case *sdl.QuitEvent:
		input.HandleQuitEvent(e)

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			w.resize(w.SDLWin.GLGetDrawableSize())
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			input.SetFocused(true)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			input.SetFocused(false)
		}
	}
}

// resize updates the default framebuffer viewport and notifies resize callbacks.
// Minimized windows report a zero size, which callbacks still receive
func (w *Window) resize(newWidth, newHeight int32) {

	oldWidth, oldHeight := w.width, w.height
	w.width, w.height = newWidth, newHeight

	if newWidth > 0 && newHeight > 0 {
		gl.Viewport(0, 0, newWidth, newHeight)
	}

	for _, cb := range w.ResizeCallbacks {
		cb(oldWidth, oldHeight, newWidth, newHeight)
	}
}

func (w *Window) Destroy() error {

	sdl.GLDeleteContext(w.GlCtx)
	if err := w.SDLWin.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy window: %w", err)
	}

	return nil
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, rend)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win := &Window{
		SDLWin: sdlWin,
		Rend:   rend,
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, fmt.Errorf("failed to create opengl context: %w", err)
	}

	if err := initOpenGL(); err != nil {
		win.Destroy()
		return nil, err
	}

	win.width, win.height = sdlWin.GLGetDrawableSize()

	// Show black instead of whatever the driver left in the back buffer
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}
