package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh holds uploaded vertex data and the VAO describing it
type Mesh struct {
	VAO uint32
	VBO uint32
	EBO uint32 // zero when drawing non-indexed

	vertexCount int32
	indexCount  int32
}

// ValidateGeometry checks that vertices and indices are consistent with layout
func ValidateGeometry(vertices []float32, indices []uint32, layout Layout) error {
	per := layout.Components()
	if per == 0 {
		return errors.New("layout has no components")
	}
	if len(vertices) == 0 {
		return errors.New("no vertex data")
	}
	if len(vertices)%per != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d floats per vertex", len(vertices), per)
	}
	count := uint32(len(vertices) / per)
	for i, idx := range indices {
		if idx >= count {
			return fmt.Errorf("index %d at position %d out of range for %d vertices", idx, i, count)
		}
	}
	return nil
}

// NewMesh uploads vertices (and optional indices) and records the attribute layout
func NewMesh(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	if err := ValidateGeometry(vertices, indices, layout); err != nil {
		return nil, err
	}

	m := &Mesh{
		vertexCount: int32(len(vertices) / layout.Components()),
		indexCount:  int32(len(indices)),
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeOfFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*sizeOfUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	layout.Apply()

	// unbind to reduce accidental state changes; the EBO binding stays with the VAO
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// Indexed reports whether the mesh draws through an element buffer
func (m *Mesh) Indexed() bool {
	return m.indexCount > 0
}

// Draw issues one draw call for the whole mesh
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.Indexed() {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
}

// Delete releases the GL objects owned by the mesh
func (m *Mesh) Delete() {
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}
