// Package geometry holds the fixed demo shapes drawn by the sandbox binaries.
package geometry

import (
	"evo/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute locations, matching the layout qualifiers in shaders/
const (
	PositionLocation = 0
	ColorLocation    = 1
)

// Geometry is CPU-side vertex data ready for graphics.NewMesh
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Layout   graphics.Layout
}

// VertexCount returns how many vertices Vertices holds
func (g Geometry) VertexCount() int {
	n := g.Layout.Components()
	if n == 0 {
		return 0
	}
	return len(g.Vertices) / n
}

var positionLayout = graphics.Layout{
	{Name: "position", Location: PositionLocation, Components: 2},
}

var colorLayout = graphics.Layout{
	{Name: "position", Location: PositionLocation, Components: 2},
	{Name: "color", Location: ColorLocation, Components: 3},
}

var trianglePositions = []mgl32.Vec2{
	{0.0, 0.5},
	{0.5, -0.5},
	{-0.5, -0.5},
}

// Counter-clockwise from the top vertex
var pentagonPositions = []mgl32.Vec2{
	{0.0, 0.6},
	{-0.57, 0.19},
	{-0.35, -0.49},
	{0.35, -0.49},
	{0.57, 0.19},
}

// Triangle fan around vertex 0
var pentagonIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
	0, 3, 4,
}

var pentagonColors = []mgl32.Vec3{
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
}

// Triangle is a single non-indexed triangle
func Triangle() Geometry {
	return Geometry{
		Vertices: Interleave(trianglePositions, nil),
		Layout:   positionLayout,
	}
}

// Pentagon is an indexed pentagon built from three triangles
func Pentagon() Geometry {
	return Geometry{
		Vertices: Interleave(pentagonPositions, nil),
		Indices:  append([]uint32(nil), pentagonIndices...),
		Layout:   positionLayout,
	}
}

// ColoredPentagon is Pentagon with a per-vertex RGB color interleaved after each position
func ColoredPentagon() Geometry {
	return Geometry{
		Vertices: Interleave(pentagonPositions, pentagonColors),
		Indices:  append([]uint32(nil), pentagonIndices...),
		Layout:   colorLayout,
	}
}

// Interleave flattens positions, each followed by its color when colors is non-nil.
// Panics if colors is non-nil and of a different length.
func Interleave(positions []mgl32.Vec2, colors []mgl32.Vec3) []float32 {
	if colors != nil && len(colors) != len(positions) {
		panic("geometry: positions and colors length mismatch")
	}
	per := 2
	if colors != nil {
		per += 3
	}
	out := make([]float32, 0, len(positions)*per)
	for i, p := range positions {
		out = append(out, p[0], p[1])
		if colors != nil {
			c := colors[i]
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}
