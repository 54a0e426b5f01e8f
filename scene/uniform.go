package scene

import "fmt"

// UniformID names a shader uniform independently of any program.  Locations
// are resolved once per program and cached by UniformID.
type UniformID int

// Uniforms used by the tutorial shaders.
const (
	UniformModel UniformID = iota
	UniformView
	UniformProjection
	UniformTransform
	UniformTexture1
	UniformTexture2
	numUniforms
)

var uniformNames = [numUniforms]string{
	UniformModel:      "model",
	UniformView:       "view",
	UniformProjection: "projection",
	UniformTransform:  "transform",
	UniformTexture1:   "texture1",
	UniformTexture2:   "texture2",
}

// String returns the GLSL name of the uniform.
func (id UniformID) String() string {
	if id < 0 || id >= numUniforms {
		return fmt.Sprintf("UniformID(%d)", int(id))
	}
	return uniformNames[id]
}
