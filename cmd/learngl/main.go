//go:build darwin || linux || windows

// Command learngl draws one of the learngl scenes with OpenGL ES 3.0.
//
// Build it as an Android APK with gomobile:
//
//	$ gomobile build github.com/bmatsuo/learngl/cmd/learngl
//	$ gomobile install github.com/bmatsuo/learngl/cmd/learngl
//
// or run it on the desktop with
//
//	$ go install github.com/bmatsuo/learngl/cmd/learngl && learngl
//
// The scene and textures are chosen by assets/learngl.toml.  Texture assets
// are read from the same directory.
package main

import (
	"log/slog"
	"os"

	"github.com/bmatsuo/learngl/config"
	"github.com/bmatsuo/learngl/renderer"
	"github.com/bmatsuo/learngl/scene"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

var (
	images *glutil.Images
	fps    *debug.FPS

	cfg    *config.Config
	render *renderer.Renderer
	log    *slog.Logger
)

func main() {
	log = slog.New(slog.NewTextHandler(os.Stderr, nil))

	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Error("loading config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	build, err := scene.Lookup(cfg.Scene)
	if err != nil {
		log.Error("selecting scene", "err", err, "scenes", scene.Names())
		os.Exit(1)
	}
	filter, _ := cfg.Filter()
	render = renderer.New(build, renderer.Options{
		Assets: scene.Assets{
			Container: cfg.Textures.Container,
			Face:      cfg.Textures.Face,
			Filter:    filter,
		},
		ClearColor: &cfg.ClearColor,
		Logger:     log,
	})

	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					onStart(glctx, sz)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					onStop(glctx)
					glctx = nil
				}
			case size.Event:
				sz = e
				if glctx != nil {
					render.SurfaceChanged(glctx, sz.WidthPx, sz.HeightPx)
				}
			case paint.Event:
				if glctx == nil || e.External {
					// We paint as fast as we can, so paint events sent by the
					// system are redundant.
					continue
				}

				onPaint(glctx, sz)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}

func onStart(glctx gl.Context, sz size.Event) {
	err := render.SurfaceCreated(glctx)
	if err != nil {
		// frames are skipped until the next surface
		log.Error("surface setup failed", "err", err)
	}
	render.SurfaceChanged(glctx, sz.WidthPx, sz.HeightPx)

	if cfg.ShowFPS {
		images = glutil.NewImages(glctx)
		fps = debug.NewFPS(images)
	}
}

func onStop(glctx gl.Context) {
	render.SurfaceDestroyed(glctx)
	if fps != nil {
		fps.Release()
		images.Release()
		fps, images = nil, nil
	}
}

func onPaint(glctx gl.Context, sz size.Event) {
	render.DrawFrame(glctx)

	if fps != nil {
		// the gauge is drawn over the scene
		glctx.Disable(gl.DEPTH_TEST)
		fps.Draw(sz)
	}
}
