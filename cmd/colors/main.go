package main

import (
	"runtime"

	"evo/internal/geometry"
	"evo/internal/sandbox"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	sandbox.Main(sandbox.Variant{
		Name:           "colors",
		Geometry:       geometry.ColoredPentagon(),
		VertexShader:   "color.vert",
		FragmentShader: "color.frag",
	})
}
