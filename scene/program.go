package scene

import (
	"fmt"

	"github.com/bmatsuo/learngl/geom"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/gl"
)

// ShaderError is returned when the driver rejects a shader stage or the
// linked program.  Log holds the driver's info log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("program link: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compile: %s", e.Stage, e.Log)
}

// program is a linked GL program with its uniform locations cached.
type program struct {
	gl.Program
	uniforms [numUniforms]gl.Uniform
	resolved [numUniforms]bool
}

// newProgram compiles and links vertexSrc and fragmentSrc and resolves the
// locations of uniforms.  A uniform the driver does not know is an error.
// Every object created is deleted again on failure.
//
// Derived from glutil.CreateProgram in golang.org/x/mobile (Copyright The
// Go Authors, BSD license).
func newProgram(glctx gl.Context, vertexSrc, fragmentSrc string, uniforms []UniformID) (*program, error) {
	p := glctx.CreateProgram()
	if p.Value == 0 {
		return nil, fmt.Errorf("no programs available")
	}

	vs, err := compileShader(glctx, gl.VERTEX_SHADER, "vertex", vertexSrc)
	if err != nil {
		glctx.DeleteProgram(p)
		return nil, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, "fragment", fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		glctx.DeleteProgram(p)
		return nil, err
	}

	glctx.AttachShader(p, vs)
	glctx.AttachShader(p, fs)
	glctx.LinkProgram(p)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)

	if glctx.GetProgrami(p, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(p)
		return nil, &ShaderError{Stage: "link", Log: glctx.GetProgramInfoLog(p)}
	}

	prog := &program{Program: p}
	for _, id := range uniforms {
		loc := glctx.GetUniformLocation(p, id.String())
		if loc.Value < 0 {
			glctx.DeleteProgram(p)
			return nil, fmt.Errorf("uniform %q not found in program", id)
		}
		prog.uniforms[id] = loc
		prog.resolved[id] = true
	}
	return prog, nil
}

func compileShader(glctx gl.Context, ty gl.Enum, stage, src string) (gl.Shader, error) {
	s := glctx.CreateShader(ty)
	if s.Value == 0 {
		return gl.Shader{}, fmt.Errorf("could not create %s shader", stage)
	}
	glctx.ShaderSource(s, src)
	glctx.CompileShader(s)
	if glctx.GetShaderi(s, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(s)
		return gl.Shader{}, &ShaderError{Stage: stage, Log: glctx.GetShaderInfoLog(s)}
	}
	return s, nil
}

// checkLayout verifies that every attribute of l is an active program input
// at the location the layout declares.
func (p *program) checkLayout(glctx gl.Context, l geom.Layout) error {
	for _, a := range l {
		loc := glctx.GetAttribLocation(p.Program, a.Name)
		if loc.Value != a.Slot {
			return fmt.Errorf("attribute %s: program location %d, layout slot %d", a.Name, int(loc.Value), a.Slot)
		}
	}
	return nil
}

// setMat4 uploads m to the cached location of id.  Uniforms that were not
// resolved at setup are skipped.
func (p *program) setMat4(glctx gl.Context, id UniformID, m mgl32.Mat4) {
	if !p.resolved[id] {
		return
	}
	glctx.UniformMatrix4fv(p.uniforms[id], m[:])
}

func (p *program) setInt(glctx gl.Context, id UniformID, v int) {
	if !p.resolved[id] {
		return
	}
	glctx.Uniform1i(p.uniforms[id], v)
}

func (p *program) release(glctx gl.Context) {
	if p.Value != 0 {
		glctx.DeleteProgram(p.Program)
		p.Program = gl.Program{}
	}
}
