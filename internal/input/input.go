package input

import "github.com/go-gl/glfw/v3.3/glfw"

// CloseRequester is the part of *glfw.Window the key handler needs
type CloseRequester interface {
	SetShouldClose(value bool)
}

// HandleKey applies the sandbox key bindings: Escape on press closes the window.
// Every other key or action is ignored.
func HandleKey(w CloseRequester, key glfw.Key, action glfw.Action) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// KeyCallback adapts HandleKey to glfw.Window.SetKeyCallback
func KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	HandleKey(w, key, action)
}
