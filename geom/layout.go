/*
Package geom describes interleaved vertex data and the tutorial meshes drawn
by the scenes.  A Mesh carries its own Layout so the byte stride and offsets
handed to VertexAttribPointer are always derived from the same declaration
as the vertex data itself.

	m := geom.Cube()
	if err := m.Validate(); err != nil {
		log.Fatal(err)
	}
	glctx.BufferData(gl.ARRAY_BUFFER, m.VertexBytes(), gl.STATIC_DRAW)
*/
package geom

import (
	"fmt"
)

// bytesPerFloat is the size of one float32 component in a vertex buffer.
const bytesPerFloat = 4

// Attribute is one interleaved vertex input.  Slot is the shader input
// location (layout (location = N)) and Size the number of float components.
type Attribute struct {
	Name       string
	Slot       uint
	Size       int
	Normalized bool
}

// Layout is the ordered list of attributes making up a single vertex.
type Layout []Attribute

// Components returns the number of floats in one vertex.
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += a.Size
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int {
	return l.Components() * bytesPerFloat
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l[:i] {
		n += a.Size
	}
	return n * bytesPerFloat
}

// Validate reports whether the layout can be handed to the GL.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("empty vertex layout")
	}
	slots := make(map[uint]string, len(l))
	for _, a := range l {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("attribute %s: invalid size %d", a.Name, a.Size)
		}
		if prev, ok := slots[a.Slot]; ok {
			return fmt.Errorf("attribute %s: slot %d already used by %s", a.Name, a.Slot, prev)
		}
		slots[a.Slot] = a.Name
	}
	return nil
}
