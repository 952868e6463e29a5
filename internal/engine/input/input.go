// Package input translates SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vectorscope/internal/viewer"
)

// Bindings maps keys to viewer actions.
type Bindings map[sdl.Scancode]viewer.Action

// DefaultBindings returns the standard key layout.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_ESCAPE:    viewer.ActionQuit,
		sdl.SCANCODE_Q:         viewer.ActionQuit,
		sdl.SCANCODE_RIGHT:     viewer.ActionNextSolid,
		sdl.SCANCODE_LEFT:      viewer.ActionPrevSolid,
		sdl.SCANCODE_P:         viewer.ActionToggleProjection,
		sdl.SCANCODE_I:         viewer.ActionTogglePolarity,
		sdl.SCANCODE_UP:        viewer.ActionFreqUp,
		sdl.SCANCODE_DOWN:      viewer.ActionFreqDown,
		sdl.SCANCODE_W:         viewer.ActionNextWave,
		sdl.SCANCODE_SPACE:     viewer.ActionToggleSpin,
		sdl.SCANCODE_F12:       viewer.ActionSnapshot,
		sdl.SCANCODE_C:         viewer.ActionClear,
		sdl.SCANCODE_BACKSPACE: viewer.ActionClear,
	}
}

// Input polls SDL events once per video frame.
type Input struct {
	bindings Bindings
	actions  []viewer.Action

	resized       bool
	width, height int
}

// New creates an input handler with the given bindings.
func New(b Bindings) *Input {
	return &Input{
		bindings: b,
		actions:  make([]viewer.Action, 0, 8),
	}
}

// Update drains the SDL event queue. It returns true when the window was
// closed or a quit key was pressed.
func (i *Input) Update() bool {
	i.actions = i.actions[:0]
	i.resized = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
				i.width, i.height = int(e.Data1), int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			a, ok := i.bindings[e.Keysym.Scancode]
			if !ok {
				continue
			}
			if a == viewer.ActionQuit {
				quit = true
				continue
			}
			i.actions = append(i.actions, a)
		}
	}
	return quit
}

// Actions returns the actions triggered since the last Update.
func (i *Input) Actions() []viewer.Action {
	return i.actions
}

// Resized reports a window size change seen by the last Update.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}
