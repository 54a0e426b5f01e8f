package geom

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/mobile/exp/f32"
)

// Mesh is interleaved vertex data with an optional triangle index list.
// Meshes are immutable once built.
type Mesh struct {
	Layout   Layout
	Vertices []float32
	Indices  []uint16
}

// Indexed returns true if the mesh is drawn with an element buffer.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount returns the number of whole vertices in m.
func (m *Mesh) VertexCount() int {
	n := m.Layout.Components()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

// DrawCount returns the element count of one draw call for m.
func (m *Mesh) DrawCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Validate checks that the vertex data matches the layout and that every
// index addresses a declared vertex.
func (m *Mesh) Validate() error {
	err := m.Layout.Validate()
	if err != nil {
		return err
	}
	n := m.Layout.Components()
	if len(m.Vertices) == 0 || len(m.Vertices)%n != 0 {
		return fmt.Errorf("%d floats do not form whole vertices of %d components", len(m.Vertices), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("number of indices %d is not a multiple of three", len(m.Indices))
	}
	count := m.VertexCount()
	for i, x := range m.Indices {
		if int(x) >= count {
			return fmt.Errorf("index %d: vertex %d out of range [0, %d)", i, x, count)
		}
	}
	return nil
}

// VertexBytes serializes the vertex data for a GL array buffer.
func (m *Mesh) VertexBytes() []byte {
	return f32.Bytes(binary.LittleEndian, m.Vertices...)
}

// IndexBytes serializes the index list for a GL element array buffer of
// UNSIGNED_SHORT indices.
func (m *Mesh) IndexBytes() []byte {
	b := make([]byte, 0, 2*len(m.Indices))
	for _, x := range m.Indices {
		b = binary.LittleEndian.AppendUint16(b, x)
	}
	return b
}
