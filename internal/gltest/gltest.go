// Package gltest provides a recording gl.Context for tests that run without
// a GPU.  Only the calls made by this module are implemented; anything else
// panics through the nil embedded interface.
package gltest

import (
	"golang.org/x/mobile/gl"
)

// DefaultAttribs are the input locations reported for programs when
// Context.Attribs is nil.
var DefaultAttribs = map[string]int{
	"aPos":      0,
	"aColor":    1,
	"aTexCoord": 2,
}

// Draw is one recorded draw call.
type Draw struct {
	Mode     gl.Enum
	Count    int
	Indexed  bool
	Type     gl.Enum
	Program  gl.Program
	VAO      gl.VertexArray
	Textures map[gl.Enum]gl.Texture // by texture unit
}

// Matrix is one recorded UniformMatrix4fv call.
type Matrix struct {
	Name string
	M    [16]float32
}

// Context records GL calls.  The zero value is ready to use.
type Context struct {
	gl.Context3

	// CompileLog makes compilation of the given shader type fail with the
	// log as the driver diagnostic.
	CompileLog map[gl.Enum]string
	// LinkLog, if not empty, makes program linking fail.
	LinkLog string
	// Attribs overrides DefaultAttribs.  Unknown names report -1.
	Attribs map[string]int
	// MissingUniforms report location -1.
	MissingUniforms map[string]bool
	// NoTextures makes CreateTexture fail.
	NoTextures bool

	Draws      []Draw
	Matrices   []Matrix
	Samplers   map[string]int
	Enabled    map[gl.Enum]bool
	DepthFn    gl.Enum
	ClearRGBA  [4]float32
	Clears     []gl.Enum
	ViewportWH [2]int
	Uploads    [][]byte // TexImage2D data
	TexParams  map[gl.Enum]int
	Mipmaps    int

	next        uint32
	shaderTypes map[uint32]gl.Enum
	uniforms    map[int32]string
	live        map[string]map[uint32]bool
	program     gl.Program
	vao         gl.VertexArray
	unit        gl.Enum
	units       map[gl.Enum]gl.Texture
	pointers    map[uint]VertexPointer
	enabledAttr map[uint]bool
}

// VertexPointer is a recorded VertexAttribPointer call.
type VertexPointer struct {
	Size       int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
}

func (c *Context) id(kind string) uint32 {
	c.next++
	if c.live == nil {
		c.live = make(map[string]map[uint32]bool)
	}
	if c.live[kind] == nil {
		c.live[kind] = make(map[uint32]bool)
	}
	c.live[kind][c.next] = true
	return c.next
}

func (c *Context) release(kind string, v uint32) {
	delete(c.live[kind], v)
}

// Live returns the number of objects of kind ("program", "shader",
// "buffer", "texture", "vertexarray") that were created and not deleted.
func (c *Context) Live(kind string) int {
	return len(c.live[kind])
}

// LiveTotal returns the number of GL objects not yet deleted.
func (c *Context) LiveTotal() int {
	n := 0
	for _, m := range c.live {
		n += len(m)
	}
	return n
}

// Pointer returns the VertexAttribPointer state recorded for location a.
func (c *Context) Pointer(a uint) (VertexPointer, bool) {
	p, ok := c.pointers[a]
	return p, ok
}

// AttribEnabled reports whether EnableVertexAttribArray was called for a.
func (c *Context) AttribEnabled(a uint) bool {
	return c.enabledAttr[a]
}

// MatricesNamed returns the recorded uploads of the named uniform.
func (c *Context) MatricesNamed(name string) [][16]float32 {
	var ms [][16]float32
	for _, m := range c.Matrices {
		if m.Name == name {
			ms = append(ms, m.M)
		}
	}
	return ms
}

// Reset forgets recorded frame state (draws, matrices, clears) but keeps
// live objects.
func (c *Context) Reset() {
	c.Draws = nil
	c.Matrices = nil
	c.Clears = nil
}

func (c *Context) CreateProgram() gl.Program {
	return gl.Program{Init: true, Value: c.id("program")}
}

func (c *Context) DeleteProgram(p gl.Program) { c.release("program", p.Value) }

func (c *Context) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: c.id("shader")}
	if c.shaderTypes == nil {
		c.shaderTypes = make(map[uint32]gl.Enum)
	}
	c.shaderTypes[s.Value] = ty
	return s
}

func (c *Context) DeleteShader(s gl.Shader) { c.release("shader", s.Value) }

func (c *Context) ShaderSource(s gl.Shader, src string) {}

func (c *Context) CompileShader(s gl.Shader) {}

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname != gl.COMPILE_STATUS {
		return 0
	}
	if _, bad := c.CompileLog[c.shaderTypes[s.Value]]; bad {
		return gl.FALSE
	}
	return gl.TRUE
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	return c.CompileLog[c.shaderTypes[s.Value]]
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {}

func (c *Context) LinkProgram(p gl.Program) {}

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && c.LinkLog != "" {
		return gl.FALSE
	}
	return gl.TRUE
}

func (c *Context) GetProgramInfoLog(p gl.Program) string { return c.LinkLog }

func (c *Context) UseProgram(p gl.Program) { c.program = p }

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	attribs := c.Attribs
	if attribs == nil {
		attribs = DefaultAttribs
	}
	loc, ok := attribs[name]
	if !ok {
		loc = -1
	}
	return gl.Attrib{Value: uint(loc)}
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	if c.MissingUniforms[name] {
		return gl.Uniform{Value: -1}
	}
	if c.uniforms == nil {
		c.uniforms = make(map[int32]string)
	}
	for loc, n := range c.uniforms {
		if n == name {
			return gl.Uniform{Value: loc}
		}
	}
	loc := int32(len(c.uniforms))
	c.uniforms[loc] = name
	return gl.Uniform{Value: loc}
}

func (c *Context) Uniform1i(dst gl.Uniform, v int) {
	if c.Samplers == nil {
		c.Samplers = make(map[string]int)
	}
	c.Samplers[c.uniforms[dst.Value]] = v
}

func (c *Context) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	var m Matrix
	m.Name = c.uniforms[dst.Value]
	copy(m.M[:], src)
	c.Matrices = append(c.Matrices, m)
}

func (c *Context) CreateVertexArray() gl.VertexArray {
	return gl.VertexArray{Value: c.id("vertexarray")}
}

func (c *Context) BindVertexArray(v gl.VertexArray) { c.vao = v }

func (c *Context) DeleteVertexArray(v gl.VertexArray) { c.release("vertexarray", v.Value) }

func (c *Context) CreateBuffer() gl.Buffer { return gl.Buffer{Value: c.id("buffer")} }

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {}

func (c *Context) BufferData(target gl.Enum, src []byte, usage gl.Enum) {}

func (c *Context) DeleteBuffer(b gl.Buffer) { c.release("buffer", b.Value) }

func (c *Context) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	if c.pointers == nil {
		c.pointers = make(map[uint]VertexPointer)
	}
	c.pointers[dst.Value] = VertexPointer{Size: size, Type: ty, Normalized: normalized, Stride: stride, Offset: offset}
}

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	if c.enabledAttr == nil {
		c.enabledAttr = make(map[uint]bool)
	}
	c.enabledAttr[a.Value] = true
}

func (c *Context) CreateTexture() gl.Texture {
	if c.NoTextures {
		return gl.Texture{}
	}
	return gl.Texture{Value: c.id("texture")}
}

func (c *Context) DeleteTexture(t gl.Texture) { c.release("texture", t.Value) }

func (c *Context) ActiveTexture(unit gl.Enum) { c.unit = unit }

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	if c.units == nil {
		c.units = make(map[gl.Enum]gl.Texture)
	}
	c.units[c.unit] = t
}

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	c.Uploads = append(c.Uploads, append([]byte(nil), data...))
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	if c.TexParams == nil {
		c.TexParams = make(map[gl.Enum]int)
	}
	c.TexParams[pname] = param
}

func (c *Context) GenerateMipmap(target gl.Enum) { c.Mipmaps++ }

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	c.Draws = append(c.Draws, c.draw(mode, count, false, 0))
}

func (c *Context) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.Draws = append(c.Draws, c.draw(mode, count, true, ty))
}

func (c *Context) draw(mode gl.Enum, count int, indexed bool, ty gl.Enum) Draw {
	units := make(map[gl.Enum]gl.Texture, len(c.units))
	for u, t := range c.units {
		if t.Value != 0 {
			units[u] = t
		}
	}
	return Draw{
		Mode:     mode,
		Count:    count,
		Indexed:  indexed,
		Type:     ty,
		Program:  c.program,
		VAO:      c.vao,
		Textures: units,
	}
}

func (c *Context) Enable(cap gl.Enum) {
	if c.Enabled == nil {
		c.Enabled = make(map[gl.Enum]bool)
	}
	c.Enabled[cap] = true
}

func (c *Context) Disable(cap gl.Enum) {
	if c.Enabled != nil {
		c.Enabled[cap] = false
	}
}

func (c *Context) DepthFunc(fn gl.Enum) { c.DepthFn = fn }

func (c *Context) ClearColor(r, g, b, a float32) { c.ClearRGBA = [4]float32{r, g, b, a} }

func (c *Context) Clear(mask gl.Enum) { c.Clears = append(c.Clears, mask) }

func (c *Context) Viewport(x, y, width, height int) { c.ViewportWH = [2]int{width, height} }

func (c *Context) GetString(pname gl.Enum) string {
	if pname == gl.VERSION {
		return "OpenGL ES 3.0 gltest"
	}
	return ""
}
