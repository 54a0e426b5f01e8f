package geom

// Shader input names and locations shared by every tutorial scene.
const (
	SlotPosition = 0
	SlotColor    = 1
	SlotTexCoord = 2
)

var (
	position = Attribute{Name: "aPos", Slot: SlotPosition, Size: 3}
	color    = Attribute{Name: "aColor", Slot: SlotColor, Size: 3}
	texCoord = Attribute{Name: "aTexCoord", Slot: SlotTexCoord, Size: 2}
)

// CubePositions are the world space offsets of the ten cubes, drawn in
// this order.
var CubePositions = [10][3]float32{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// Cube returns a unit cube centered on the origin as 36 non-indexed
// position+texcoord vertices.
func Cube() *Mesh {
	return &Mesh{
		Layout: Layout{position, texCoord},
		Vertices: []float32{
			-0.5, -0.5, -0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 0.0,

			-0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,

			-0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, 0.5, 1.0, 0.0,

			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,

			-0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,

			-0.5, 0.5, -0.5, 0.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
		},
	}
}

// Quad returns a textured, vertex colored square made of two indexed
// triangles.
func Quad() *Mesh {
	return &Mesh{
		Layout: Layout{position, color, texCoord},
		Vertices: []float32{
			// positions     // colors     // texture coords
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
		},
		Indices: []uint16{
			0, 1, 3, // first triangle
			1, 2, 3, // second triangle
		},
	}
}

var triangleVertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom left
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
}

// Triangle returns a single vertex colored triangle drawn without indices.
func Triangle() *Mesh {
	return &Mesh{
		Layout:   Layout{position, color},
		Vertices: triangleVertices,
	}
}

// IndexedTriangle returns the same triangle as Triangle drawn through an
// element buffer.
func IndexedTriangle() *Mesh {
	return &Mesh{
		Layout:   Layout{position, color},
		Vertices: triangleVertices,
		Indices:  []uint16{0, 1, 2},
	}
}
