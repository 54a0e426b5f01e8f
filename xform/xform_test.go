package xform

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, tol), "want %v, got %v", want, got)
}

func TestPerspectiveZeroViewport(t *testing.T) {
	p := NewPerspective()
	assert.False(t, p.Update(0, 1080))
	assert.False(t, p.Update(1920, 0))
	assert.Equal(t, mgl32.Ident4(), p.M)

	require.True(t, p.Update(1920, 1080))
	prev := p.M
	assert.NotEqual(t, mgl32.Ident4(), prev)

	assert.False(t, p.Update(0, 0))
	assert.Equal(t, prev, p.M)
}

func TestPerspective(t *testing.T) {
	p := NewPerspective()
	require.True(t, p.Update(1920, 1080))

	f := float32(1 / math.Tan(math.Pi/8))
	assert.InDelta(t, f/(1920.0/1080.0), p.M[0], tol)
	assert.InDelta(t, f, p.M[5], tol)
	assert.InDelta(t, (Near+Far)/(Near-Far), p.M[10], tol)
	assert.InDelta(t, -1, p.M[11], tol)
	assert.InDelta(t, 2*Far*Near/(Near-Far), p.M[14], tol)
}

func TestCubeView(t *testing.T) {
	v := CubeView()
	assertVec3(t, mgl32.Vec3{0, 0, -3}, v.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())
}

func TestInstanceAngle(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, 20*float32(i), InstanceAngle(i))
	}
	assert.Equal(t, float32(0), InstanceAngle(0))
	assert.Equal(t, float32(180), InstanceAngle(9))
}

func TestCubeModelFirstInstance(t *testing.T) {
	offset := mgl32.Vec3{2, 5, -15}
	m := CubeModel(0, offset)
	assert.True(t, mgl32.Translate3D(2, 5, -15).ApproxEqualThreshold(m, tol))
}

func TestCubeModelHalfTurn(t *testing.T) {
	offset := mgl32.Vec3{-1.3, 1.0, -1.5}
	m := CubeModel(9, offset)
	axis := InstanceAxis.Normalize()

	// points on the axis stay put, the rest of the origin's neighbourhood
	// is mirrored through it.
	assertVec3(t, offset, m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())
	assertVec3(t, offset.Add(axis), m.Mul4x1(axis.Vec4(1)).Vec3())

	perp := axis.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	assertVec3(t, offset.Sub(perp), m.Mul4x1(perp.Vec4(1)).Vec3())
}

func TestCubeModelsDistinct(t *testing.T) {
	var models []mgl32.Mat4
	for i, p := range [][3]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}} {
		models = append(models, CubeModel(i, mgl32.Vec3(p)))
	}
	assert.NotEqual(t, models[0], models[1])
	assert.NotEqual(t, models[1], models[2])
}

func TestQuadAngle(t *testing.T) {
	assert.Equal(t, float32(154), QuadAngle(time.UnixMilli(12345)))
	assert.Equal(t, float32(0), QuadAngle(time.UnixMilli(3600)))
	assert.Equal(t, float32(359), QuadAngle(time.UnixMilli(3599)))
}

func TestQuadAngleAdvances(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	prev := QuadAngle(start)
	for step := 1; step <= 720; step++ {
		a := QuadAngle(start.Add(time.Duration(step) * 10 * time.Millisecond))
		require.GreaterOrEqual(t, a, float32(0))
		require.Less(t, a, float32(360))
		assert.Equal(t, float32(math.Mod(float64(prev)+1, 360)), a)
		prev = a
	}
}

func TestQuadTransform(t *testing.T) {
	m := QuadTransform(0)
	// the quad center lands at half the translation
	assertVec3(t, mgl32.Vec3{0.25, -0.25, 0}, m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())
	assertVec3(t, mgl32.Vec3{0.5, -0.25, 0}, m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3())

	m = QuadTransform(90)
	assertVec3(t, mgl32.Vec3{0.25, 0, 0}, m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3())
}
