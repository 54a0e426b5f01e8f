package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bmatsuo/learngl/geom"
	"github.com/bmatsuo/learngl/mobtex"
	"github.com/bmatsuo/learngl/xform"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownScene is returned by Lookup for names not in the catalog.
var ErrUnknownScene = errors.New("unknown scene")

// Assets names the texture assets of the textured scenes.
type Assets struct {
	Container string // opaque box texture
	Face      string // emoji texture, flipped vertically on load
	Filter    mobtex.Filter
}

func (a Assets) textures() []TextureSpec {
	return []TextureSpec{
		{Sampler: UniformTexture1, Path: a.Container, Options: mobtex.Options{Filter: a.Filter}},
		{Sampler: UniformTexture2, Path: a.Face, Options: mobtex.Options{Filter: a.Filter, FlipV: true}},
	}
}

// Builder returns a fresh Spec for a scene.  Specs carry transform state so
// each Example needs its own.
type Builder func(a Assets) Spec

var catalog = map[string]Builder{
	"cube":             Cube,
	"quad":             Quad,
	"triangle":         Triangle,
	"indexed-triangle": IndexedTriangle,
}

// Lookup returns the Builder of the scene called name.
func Lookup(name string) (Builder, error) {
	b, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	return b, nil
}

// Names returns the catalog's scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cube is ten textured cubes seen through a perspective camera.
func Cube(a Assets) Spec {
	return Spec{
		Name:           "cube",
		Mesh:           geom.Cube(),
		VertexShader:   cubeVertexShader,
		FragmentShader: cubeFragmentShader,
		Uniforms:       []UniformID{UniformModel, UniformView, UniformProjection},
		Textures:       a.textures(),
		Transform:      newCubeTransform(geom.CubePositions[:]),
	}
}

// Quad is a textured square spinning in the lower right of the viewport.
func Quad(a Assets) Spec {
	return Spec{
		Name:           "quad",
		Mesh:           geom.Quad(),
		VertexShader:   quadVertexShader,
		FragmentShader: quadFragmentShader,
		Uniforms:       []UniformID{UniformTransform},
		Textures:       a.textures(),
		Transform:      TransformFunc(quadPass),
	}
}

// Triangle is a single vertex colored triangle.
func Triangle(Assets) Spec {
	return Spec{
		Name:           "triangle",
		Mesh:           geom.Triangle(),
		VertexShader:   triangleVertexShader,
		FragmentShader: triangleFragmentShader,
	}
}

// IndexedTriangle is Triangle drawn through an element buffer.
func IndexedTriangle(Assets) Spec {
	return Spec{
		Name:           "indexed-triangle",
		Mesh:           geom.IndexedTriangle(),
		VertexShader:   triangleVertexShader,
		FragmentShader: triangleFragmentShader,
	}
}

type cubeTransform struct {
	view      mgl32.Mat4
	proj      *xform.Perspective
	positions [][3]float32
}

func newCubeTransform(positions [][3]float32) *cubeTransform {
	return &cubeTransform{
		view:      xform.CubeView(),
		proj:      xform.NewPerspective(),
		positions: positions,
	}
}

func (c *cubeTransform) Pass(fr Frame) Pass {
	c.proj.Update(fr.Width, fr.Height)
	p := Pass{
		Shared: []Binding{
			{ID: UniformView, M: c.view},
			{ID: UniformProjection, M: c.proj.M},
		},
		Instances: make([][]Binding, len(c.positions)),
	}
	for i, pos := range c.positions {
		p.Instances[i] = []Binding{{ID: UniformModel, M: xform.CubeModel(i, mgl32.Vec3(pos))}}
	}
	return p
}

func quadPass(fr Frame) Pass {
	m := xform.QuadTransform(xform.QuadAngle(fr.Time))
	return Pass{Shared: []Binding{{ID: UniformTransform, M: m}}}
}
