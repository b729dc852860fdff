package graphics

import "github.com/go-gl/gl/v3.3-core/gl"

const (
	sizeOfFloat32 = 4
	sizeOfUint32  = 4
)

// Attribute describes one float vertex input bound to a shader location
type Attribute struct {
	Name       string
	Location   uint32
	Components int32
}

// Layout is an ordered, interleaved set of float attributes within one buffer
type Layout []Attribute

// Components returns the number of floats in one vertex
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += int(a.Components)
	}
	return n
}

// Stride returns the byte distance between consecutive vertices
func (l Layout) Stride() int32 {
	return int32(l.Components() * sizeOfFloat32)
}

// Offset returns the byte offset of attribute i within a vertex
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Components) * sizeOfFloat32
	}
	return off
}

// Apply binds every attribute to the currently bound ARRAY_BUFFER.
// The target VAO must be bound.
func (l Layout) Apply() {
	stride := l.Stride()
	for i, a := range l {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Components, gl.FLOAT, false, stride, gl.PtrOffset(l.Offset(i)))
	}
}
