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
		Name:           "pentagon",
		Geometry:       geometry.Pentagon(),
		VertexShader:   "position.vert",
		FragmentShader: "solid.frag",
	})
}
