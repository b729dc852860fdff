package window

import (
	"fmt"
	"log"

	"evo/internal/config"
	"evo/internal/input"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Open initializes GLFW, creates a window with a current OpenGL core context
// and loads the GL function pointers. Callers must defer glfw.Terminate once
// Open returns without error. Must be called from the main, locked OS thread.
func Open(s config.Settings, logger *log.Logger) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Init only logs platform errors (no display), so the first failure
	// shows up as a panic from the calls below.
	window, err := createWindow(s)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Printf("OpenGL %s, GLSL %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	window.SetKeyCallback(input.KeyCallback)

	return window, nil
}

func createWindow(s config.Settings) (window *glfw.Window, err error) {
	defer recoverError(&err)
	applyHints(s)
	return glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
}

// recoverError turns a panic carrying an error, as raised by glfw on
// NotInitialized and similar codes, into *err. Other panics propagate.
func recoverError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = e
}

func applyHints(s config.Settings) {
	glfw.WindowHint(glfw.Samples, s.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, s.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, s.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if s.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
}
