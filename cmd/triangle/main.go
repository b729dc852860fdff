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
		Name:           "triangle",
		Geometry:       geometry.Triangle(),
		VertexShader:   "position.vert",
		FragmentShader: "solid.frag",
	})
}
