// Package renderer connects a scene to the surface lifecycle of the app.
// It mirrors the callbacks of a platform GL view: the surface is created,
// resized, drawn and eventually destroyed, possibly many times over the life
// of the app.  Every GL object is created in SurfaceCreated and deleted in
// SurfaceDestroyed so a new context starts from nothing.
//
// A Renderer is not safe for concurrent use; call it from the GL thread.
package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bmatsuo/learngl/scene"
	"golang.org/x/mobile/gl"
)

// ErrNoES3 is returned by SurfaceCreated when the context is not an
// OpenGL ES 3 context.
var ErrNoES3 = errors.New("OpenGL ES 3.0 context required")

// DefaultClearColor is the background of every frame.
var DefaultClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Options configure a Renderer.
type Options struct {
	Assets scene.Assets
	// ClearColor is the background; DefaultClearColor if nil.
	ClearColor *[4]float32
	// Load creates textures; mobtex.LoadPath if nil.
	Load scene.TextureLoader
	// Now is the frame clock; time.Now if nil.
	Now    func() time.Time
	Logger *slog.Logger
}

// Renderer draws one scene into the current surface.
type Renderer struct {
	build  scene.Builder
	opts   Options
	log    *slog.Logger
	now    func() time.Time
	ex     *scene.Example
	width  int
	height int
	frames uint64
}

// New returns a Renderer for the scene produced by build.
func New(build scene.Builder, opts Options) *Renderer {
	r := &Renderer{
		build: build,
		opts:  opts,
		log:   opts.Logger,
		now:   opts.Now,
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// SurfaceCreated prepares a new GL context and builds the scene in it.
// Any scene left from a previous context is forgotten, not deleted, since
// its objects died with that context.
func (r *Renderer) SurfaceCreated(glctx gl.Context) error {
	r.ex = nil
	if _, ok := glctx.(gl.Context3); !ok {
		r.log.Error("surface created", "err", ErrNoES3)
		return ErrNoES3
	}

	glctx.Enable(gl.DEPTH_TEST)
	glctx.DepthFunc(gl.LESS)
	c := DefaultClearColor
	if r.opts.ClearColor != nil {
		c = *r.opts.ClearColor
	}
	glctx.ClearColor(c[0], c[1], c[2], c[3])

	ex, err := scene.New(glctx, r.build(r.opts.Assets), r.opts.Load)
	if err != nil {
		r.log.Error("scene setup failed", "err", err)
		return fmt.Errorf("surface created: %w", err)
	}
	r.ex = ex
	r.frames = 0
	r.log.Info("surface created", "scene", ex.Name(), "version", glctx.GetString(gl.VERSION))
	return nil
}

// SurfaceChanged records the new surface size and resets the viewport.
func (r *Renderer) SurfaceChanged(glctx gl.Context, width, height int) {
	r.width = width
	r.height = height
	if glctx != nil {
		glctx.Viewport(0, 0, width, height)
	}
	r.log.Debug("surface changed", "width", width, "height", height)
}

// DrawFrame clears the surface and draws one frame of the scene.  Without
// a scene the frame is skipped.
func (r *Renderer) DrawFrame(glctx gl.Context) {
	if r.ex == nil {
		r.log.Warn("frame skipped: no scene")
		return
	}
	glctx.Enable(gl.DEPTH_TEST)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.ex.Draw(glctx, scene.Frame{
		Width:  r.width,
		Height: r.height,
		Time:   r.now(),
	})
	r.frames++
}

// SurfaceDestroyed deletes the scene's GL objects while the context is
// still current.
func (r *Renderer) SurfaceDestroyed(glctx gl.Context) {
	if r.ex == nil {
		return
	}
	r.ex.Release(glctx)
	r.log.Info("surface destroyed", "scene", r.ex.Name(), "frames", r.frames)
	r.ex = nil
}
