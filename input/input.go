// The input package tracks mouse and keyboard state from SDL events, along with
// pressed/released this frame, double clicks, and normalized motion.
//
// While the window is unfocused all queries report no input (keys up, no motion),
// so held keys don't keep driving gameplay after focus moves to another window.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type buttonState struct {
	down bool
	// pressed and released are edges seen during the current frame
	pressed       bool
	released      bool
	doubleClicked bool
}

// buttonSet holds the buttons that are down or changed this frame. Missing buttons are up
type buttonSet[K comparable] map[K]buttonState

func (bs buttonSet[K]) newFrame() {

	for k, s := range bs {

		if !s.down {
			delete(bs, k)
			continue
		}

		bs[k] = buttonState{down: true}
	}
}

func (bs buttonSet[K]) update(k K, down, isEdge bool) buttonState {

	s := bs[k]
	s.down = down
	s.pressed = down && isEdge
	s.released = !down && isEdge
	bs[k] = s

	return s
}

type mouseState struct {
	x, y           int32
	xDelta, yDelta int32
	wheelX, wheelY int32
}

var (
	keyMap      = buttonSet[sdl.Keycode]{}
	mouseBtnMap = buttonSet[uint8]{}
	mouse       mouseState

	isQuitRequested bool
	isUnfocused     bool
)

// EventLoopStart resets per frame state. Call once per frame before handling the frame's events
func EventLoopStart() {

	keyMap.newFrame()
	mouseBtnMap.newFrame()

	mouse.xDelta, mouse.yDelta = 0, 0
	mouse.wheelX, mouse.wheelY = 0, 0

	isQuitRequested = false
}

// SetFocused is called on window focus changes. Losing focus clears all state, since
// release events for held keys go to whatever window has focus
func SetFocused(focused bool) {

	isUnfocused = !focused
	if focused {
		return
	}

	clear(keyMap)
	clear(mouseBtnMap)
	mouse.xDelta, mouse.yDelta = 0, 0
	mouse.wheelX, mouse.wheelY = 0, 0
}

func IsFocused() bool {
	return !isUnfocused
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	if isUnfocused {
		return
	}

	// Held keys repeat press events, which are not new presses
	keyMap.update(e.Keysym.Sym, e.State == sdl.PRESSED, e.Repeat == 0)
}

func HandleMouseBtnEvent(e *sdl.MouseButtonEvent) {

	if isUnfocused {
		return
	}

	isDown := e.State == sdl.PRESSED
	s := mouseBtnMap.update(e.Button, isDown, true)
	s.doubleClicked = isDown && e.Clicks == 2
	mouseBtnMap[e.Button] = s
}

// HandleMouseMotionEvent always tracks the position, but deltas only while focused
func HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {

	mouse.x, mouse.y = e.X, e.Y
	if isUnfocused {
		return
	}

	mouse.xDelta, mouse.yDelta = e.XRel, e.YRel
}

func HandleMouseWheelEvent(e *sdl.MouseWheelEvent) {

	if isUnfocused {
		return
	}

	mouse.wheelX, mouse.wheelY = e.X, e.Y
}

// GetMousePos returns the window coordinates of the mouse, focused or not
func GetMousePos() (x, y int32) {
	return mouse.x, mouse.y
}

// GetMouseMotion returns how many pixels were moved last frame
func GetMouseMotion() (xDelta, yDelta int32) {
	return mouse.xDelta, mouse.yDelta
}

// GetMouseMotionNorm returns the sign of the last frame motion. Y is flipped so up is positive
func GetMouseMotionNorm() (xDelta, yDelta int32) {
	return sign(mouse.xDelta), -sign(mouse.yDelta)
}

func GetMouseWheelMotion() (xDelta, yDelta int32) {
	return mouse.wheelX, mouse.wheelY
}

// GetMouseWheelYNorm returns the sign of the last frame vertical wheel motion
func GetMouseWheelYNorm() int32 {
	return sign(mouse.wheelY)
}

func sign(x int32) int32 {

	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func KeyClicked(kc sdl.Keycode) bool {
	return keyMap[kc].pressed
}

func KeyReleased(kc sdl.Keycode) bool {
	return keyMap[kc].released
}

func KeyDown(kc sdl.Keycode) bool {
	return keyMap[kc].down
}

func KeyUp(kc sdl.Keycode) bool {
	return !KeyDown(kc)
}

// KeyAxis returns -1 if only neg is down, 1 if only pos is down, and 0 otherwise
func KeyAxis(neg, pos sdl.Keycode) float32 {

	var axis float32
	if KeyDown(neg) {
		axis--
	}

	if KeyDown(pos) {
		axis++
	}

	return axis
}

func MouseClicked(mb uint8) bool {
	return mouseBtnMap[mb].pressed
}

func MouseDoubleClicked(mb uint8) bool {
	return mouseBtnMap[mb].doubleClicked
}

func MouseReleased(mb uint8) bool {
	return mouseBtnMap[mb].released
}

func MouseDown(mb uint8) bool {
	return mouseBtnMap[mb].down
}

func MouseUp(mb uint8) bool {
	return !MouseDown(mb)
}
