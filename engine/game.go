package engine

import (
	"github.com/bloeys/nrender/input"
	"github.com/bloeys/nrender/timing"
)

// Game is driven by Run. Render draws into whatever the game wants, and the
// window back buffer is swapped after it returns
type Game interface {
	Init()
	Update()
	Render()
	FrameEnd()
	DeInit()
}

var isRunning = false

// Run calls game.Init then runs the frame loop until Quit is called or the window is closed.
// Must be called on the thread that created the window
func Run(g Game, w *Window) {

	isRunning = true
	g.Init()

	for isRunning {

		timing.FrameStarted()

		w.pollEvents()
		if input.IsQuitClicked() {
			Quit()
		}

		g.Update()
		g.Render()

		w.Rend.FrameEnd()
		g.FrameEnd()

		w.SDLWin.GLSwap()

		timing.FrameEnded()
	}

	g.DeInit()
}

// Quit stops Run after the current frame
func Quit() {
	isRunning = false
}
