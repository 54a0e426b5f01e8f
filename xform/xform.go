// Package xform computes the matrices uploaded to the tutorial shaders each
// frame.  Matrices are mgl32 values, column-major like the GL expects, so
// they are passed to UniformMatrix4fv as is.
package xform

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters shared by the perspective scenes.
const (
	FieldOfView float32 = 45 // degrees, vertical
	Near        float32 = 0.1
	Far         float32 = 100.0
)

// InstanceStep is the rotation in degrees added per cube instance.
const InstanceStep float32 = 20.0

// InstanceAxis is the axis every cube instance rotates about.  It is
// normalized before use.
var InstanceAxis = mgl32.Vec3{1.0, 0.3, 0.5}

// CubeView returns the camera transform: the world pushed three units away
// from the viewer.
func CubeView() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -3)
}

// Perspective holds the projection matrix for a viewport.  The zero value
// is not usable; use NewPerspective.
type Perspective struct {
	M mgl32.Mat4
}

// NewPerspective returns a Perspective holding the identity matrix.
func NewPerspective() *Perspective {
	return &Perspective{M: mgl32.Ident4()}
}

// Update recomputes the projection for a width x height viewport.  If
// either dimension is zero the viewport is not known yet and the matrix is
// left unchanged; Update returns false in that case.
func (p *Perspective) Update(width, height int) bool {
	if width == 0 || height == 0 {
		return false
	}
	aspect := float32(width) / float32(height)
	p.M = mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
	return true
}

// InstanceAngle returns the rotation in degrees of cube instance i.
func InstanceAngle(i int) float32 {
	return InstanceStep * float32(i)
}

// CubeModel returns the model matrix of cube instance i placed at offset:
// translate to the offset, then rotate about InstanceAxis.
func CubeModel(i int, offset mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(offset[0], offset[1], offset[2])
	r := mgl32.HomogRotate3D(mgl32.DegToRad(InstanceAngle(i)), InstanceAxis.Normalize())
	return t.Mul4(r)
}

// QuadAngle returns the rotation in degrees of the animated quad at time t.
// The angle advances one degree every 10ms and wraps at 360, so it is
// always in [0, 360).
func QuadAngle(t time.Time) float32 {
	ms := t.UnixMilli()
	deg := (ms / 10) % 360
	if deg < 0 {
		deg += 360
	}
	return float32(deg)
}

// QuadTransform returns the quad transform for angle degrees: scaled by
// half, moved to the lower right and spun about the z axis.
func QuadTransform(angle float32) mgl32.Mat4 {
	s := mgl32.Scale3D(0.5, 0.5, 0.5)
	t := mgl32.Translate3D(0.5, -0.5, 0)
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(angle))
	return s.Mul4(t).Mul4(r)
}
