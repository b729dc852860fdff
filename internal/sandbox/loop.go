package sandbox

import (
	"log"
	"time"

	"evo/internal/profiling"
)

// Surface is the window side of the frame loop. *glfw.Window satisfies it.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// Scene issues the draw calls for one frame
type Scene interface {
	Draw()
}

// Loop drives a Scene on a Surface until the surface is asked to close
type Loop struct {
	Surface Surface
	Scene   Scene

	// Poll pumps window events, normally glfw.PollEvents
	Poll func()
	// Viewport and Clear are invoked before each Draw; nil skips them
	Viewport func(width, height int)
	Clear    func()

	Stats *FrameStats

	// Frames slower than SlowFrame are logged with their top phases; zero disables it
	SlowFrame time.Duration
	Logger    *log.Logger

	profile *profiling.Frame
}

// Run renders frames until Surface.ShouldClose reports true and returns the number of frames rendered.
// The close flag is checked before every frame, so a surface that is already closing renders nothing.
func (l *Loop) Run() int {
	if l.profile == nil {
		l.profile = profiling.New()
	}

	frames := 0
	for !l.Surface.ShouldClose() {
		l.profile.Reset()
		start := time.Now()

		l.frame()

		frames++
		if l.Stats != nil {
			l.Stats.Frame()
		}
		if d := time.Since(start); l.SlowFrame > 0 && d > l.SlowFrame && l.Logger != nil {
			l.Logger.Printf("Slow frame: %v. Top tasks: %s", d, l.profile.TopN(3))
		}
	}
	return frames
}

func (l *Loop) frame() {
	if l.Viewport != nil {
		l.Viewport(l.Surface.GetFramebufferSize())
	}
	if l.Clear != nil {
		l.Clear()
	}
	func() { defer l.profile.Track("scene.Draw")(); l.Scene.Draw() }()

	func() { defer l.profile.Track("glfw.SwapBuffers")(); l.Surface.SwapBuffers() }()
	if l.Poll != nil {
		func() { defer l.profile.Track("glfw.PollEvents")(); l.Poll() }()
	}
}
