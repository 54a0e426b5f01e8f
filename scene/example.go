/*
Package scene draws the tutorial scenes.  Every scene is an Example built from
a Spec: a mesh, a shader pair, up to two textures and a Transformer that
supplies the uniform matrices of each frame.  An Example owns all of its GL
objects and gives them back in Release, so a lost GL context can be
recovered by building the Example again.

All methods must be called on the GL thread.
*/
package scene

import (
	"fmt"
	"time"

	"github.com/bmatsuo/learngl/geom"
	"github.com/bmatsuo/learngl/mobtex"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/gl"
)

// Frame is the per-frame input of a Transformer.
type Frame struct {
	Width  int // viewport size in pixels, zero until known
	Height int
	Time   time.Time
}

// Binding assigns a matrix to a uniform.
type Binding struct {
	ID UniformID
	M  mgl32.Mat4
}

// Pass is the uniform state of one frame.  Shared bindings are uploaded
// once; each element of Instances is uploaded before its own draw call.  A
// Pass without instances is drawn once.
type Pass struct {
	Shared    []Binding
	Instances [][]Binding
}

// Transformer computes the uniform matrices of a frame.
type Transformer interface {
	Pass(fr Frame) Pass
}

// TransformFunc adapts a function to the Transformer interface.
type TransformFunc func(fr Frame) Pass

// Pass calls f(fr).
func (f TransformFunc) Pass(fr Frame) Pass { return f(fr) }

// TextureSpec is a texture sampled by a scene.  The i-th texture of a Spec
// is bound to texture unit i.
type TextureSpec struct {
	Sampler UniformID
	Path    string
	Options mobtex.Options
}

// TextureLoader creates a texture from an asset.  mobtex.LoadPath is the
// default.
type TextureLoader func(glctx gl.Context, path string, opt mobtex.Options) (gl.Texture, error)

// Spec describes a scene.
type Spec struct {
	Name           string
	Mesh           *geom.Mesh
	VertexShader   string
	FragmentShader string
	// Uniforms lists the matrix uniforms the Transformer binds.
	Uniforms  []UniformID
	Textures  []TextureSpec
	Transform Transformer // nil draws the mesh once with no matrices
}

type unitTexture struct {
	unit    gl.Enum
	texture gl.Texture
}

// Example is a scene whose GL objects live in a particular context.
type Example struct {
	spec     Spec
	program  *program
	vao      gl.VertexArray
	vbo      gl.Buffer
	ebo      gl.Buffer
	textures []unitTexture
	count    int
}

// New creates the GL objects of s in glctx.  Textures are loaded with load,
// or mobtex.LoadPath if load is nil.  On error everything created so far
// is released.
func New(glctx gl.Context, s Spec, load TextureLoader) (*Example, error) {
	if load == nil {
		load = mobtex.LoadPath
	}
	if s.Mesh == nil {
		return nil, fmt.Errorf("scene %s: no mesh", s.Name)
	}
	err := s.Mesh.Validate()
	if err != nil {
		return nil, fmt.Errorf("scene %s: mesh: %w", s.Name, err)
	}
	if len(s.Textures) > 2 {
		return nil, fmt.Errorf("scene %s: %d textures, at most 2 supported", s.Name, len(s.Textures))
	}

	e := &Example{spec: s, count: s.Mesh.DrawCount()}
	err = e.init(glctx, load)
	if err != nil {
		e.Release(glctx)
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return e, nil
}

func (e *Example) init(glctx gl.Context, load TextureLoader) error {
	uniforms := append([]UniformID(nil), e.spec.Uniforms...)
	for _, t := range e.spec.Textures {
		uniforms = append(uniforms, t.Sampler)
	}

	var err error
	e.program, err = newProgram(glctx, e.spec.VertexShader, e.spec.FragmentShader, uniforms)
	if err != nil {
		return err
	}
	mesh := e.spec.Mesh
	err = e.program.checkLayout(glctx, mesh.Layout)
	if err != nil {
		return err
	}

	e.vao = glctx.CreateVertexArray()
	glctx.BindVertexArray(e.vao)

	e.vbo = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, e.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, mesh.VertexBytes(), gl.STATIC_DRAW)

	stride := mesh.Layout.Stride()
	for i, a := range mesh.Layout {
		loc := gl.Attrib{Value: a.Slot}
		glctx.VertexAttribPointer(loc, a.Size, gl.FLOAT, a.Normalized, stride, mesh.Layout.Offset(i))
		glctx.EnableVertexAttribArray(loc)
	}

	// The element buffer binding is vertex array state; it must stay bound
	// until the vertex array is unbound.
	if mesh.Indexed() {
		e.ebo = glctx.CreateBuffer()
		glctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, e.ebo)
		glctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, mesh.IndexBytes(), gl.STATIC_DRAW)
	}

	glctx.BindVertexArray(gl.VertexArray{})
	glctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})

	// tell the GL which texture unit each sampler reads (only has to be
	// done once)
	glctx.UseProgram(e.program.Program)
	for i, t := range e.spec.Textures {
		tex, err := load(glctx, t.Path, t.Options)
		if err != nil {
			return err
		}
		e.textures = append(e.textures, unitTexture{unit: gl.TEXTURE0 + gl.Enum(i), texture: tex})
		e.program.setInt(glctx, t.Sampler, i)
	}
	return nil
}

// Name returns the name of the scene.
func (e *Example) Name() string { return e.spec.Name }

// Draw renders one frame of the scene.  Every object the draw uses is bound
// explicitly; nothing is assumed about prior GL state except the enabled
// capabilities.
func (e *Example) Draw(glctx gl.Context, fr Frame) {
	if e.program == nil || e.program.Value == 0 {
		return
	}
	var pass Pass
	if e.spec.Transform != nil {
		pass = e.spec.Transform.Pass(fr)
	}

	glctx.UseProgram(e.program.Program)
	for _, b := range pass.Shared {
		e.program.setMat4(glctx, b.ID, b.M)
	}
	for _, t := range e.textures {
		glctx.ActiveTexture(t.unit)
		glctx.BindTexture(gl.TEXTURE_2D, t.texture)
	}
	glctx.BindVertexArray(e.vao)

	if len(pass.Instances) == 0 {
		e.submit(glctx)
	}
	for _, inst := range pass.Instances {
		for _, b := range inst {
			e.program.setMat4(glctx, b.ID, b.M)
		}
		e.submit(glctx)
	}

	glctx.BindVertexArray(gl.VertexArray{})
}

func (e *Example) submit(glctx gl.Context) {
	if e.spec.Mesh.Indexed() {
		glctx.DrawElements(gl.TRIANGLES, e.count, gl.UNSIGNED_SHORT, 0)
		return
	}
	glctx.DrawArrays(gl.TRIANGLES, 0, e.count)
}

// Release deletes the GL objects of the scene.  Release may be called more
// than once and on a partially constructed Example.
func (e *Example) Release(glctx gl.Context) {
	for _, t := range e.textures {
		glctx.DeleteTexture(t.texture)
	}
	e.textures = nil
	if e.ebo.Value != 0 {
		glctx.DeleteBuffer(e.ebo)
		e.ebo = gl.Buffer{}
	}
	if e.vbo.Value != 0 {
		glctx.DeleteBuffer(e.vbo)
		e.vbo = gl.Buffer{}
	}
	if e.vao.Value != 0 {
		glctx.DeleteVertexArray(e.vao)
		e.vao = gl.VertexArray{}
	}
	if e.program != nil {
		e.program.release(glctx)
	}
}
