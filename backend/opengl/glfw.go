package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/flashdeck/cards"
)

// InputAdapter feeds GLFW keyboard events into a cards.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *cards.InputState
}

// NewInputAdapter creates a new GLFW input adapter and registers its
// callbacks on the window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	adapter := &InputAdapter{
		window: window,
		input:  cards.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)

	return adapter
}

// Update clears per-frame input state.
// Call this each frame before polling events.
func (a *InputAdapter) Update() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *InputAdapter) Input() *cards.InputState {
	return a.input
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	quizKey := glfwKeyToQuizKey(key)
	if quizKey == cards.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(quizKey, true)
	case glfw.Release:
		a.input.SetKey(quizKey, false)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

// glfwKeyToQuizKey maps GLFW keys to the keys the quiz reacts to.
func glfwKeyToQuizKey(key glfw.Key) cards.Key {
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return cards.KeyEnter
	case glfw.KeyEscape:
		return cards.KeyEscape
	case glfw.KeyBackspace:
		return cards.KeyBackspace
	case glfw.KeyDelete:
		return cards.KeyDelete
	default:
		return cards.KeyNone
	}
}
