// Package config holds the startup settings of the learngl app.  Settings
// are read from a TOML asset bundled with the app:
//
//	scene = "cube"
//	clear_color = [0.2, 0.3, 0.3, 1.0]
//	show_fps = false
//	log_level = "info"
//
//	[textures]
//	container = "container.jpg"
//	face = "awesomeface.png"
//	filter = "nearest"
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/bmatsuo/learngl/mobtex"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mobile/asset"
)

// AssetName is the asset Load reads.
const AssetName = "learngl.toml"

// Textures names the texture assets of the textured scenes.
type Textures struct {
	Container string `toml:"container"`
	Face      string `toml:"face"`
	Filter    string `toml:"filter"`
}

// Config is the app configuration.
type Config struct {
	Scene      string     `toml:"scene"`
	ClearColor [4]float32 `toml:"clear_color"`
	ShowFPS    bool       `toml:"show_fps"`
	LogLevel   string     `toml:"log_level"`
	Textures   Textures   `toml:"textures"`
}

// Default returns the configuration used when no asset is bundled.
func Default() *Config {
	return &Config{
		Scene:      "cube",
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		LogLevel:   "info",
		Textures: Textures{
			Container: "container.jpg",
			Face:      "awesomeface.png",
			Filter:    "nearest",
		},
	}
}

// Decode reads a TOML configuration from r.  Keys missing from r keep
// their Default values; unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the AssetName asset.  If the app bundles no such asset the
// Default configuration is returned.
func Load() (*Config, error) {
	f, err := asset.Open(AssetName)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks the ranges of the configuration values.
func (c *Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("config: scene is required")
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: clear_color[%d] = %v outside [0, 1]", i, v)
		}
	}
	_, err := c.Level()
	if err != nil {
		return err
	}
	if c.Textures.Container == "" || c.Textures.Face == "" {
		return fmt.Errorf("config: textures.container and textures.face are required")
	}
	_, err = c.Filter()
	return err
}

// Filter returns the texture filter named by Textures.Filter.
func (c *Config) Filter() (mobtex.Filter, error) {
	f, err := mobtex.ParseFilter(c.Textures.Filter)
	if err != nil {
		return f, fmt.Errorf("config: textures.filter: %w", err)
	}
	return f, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return l, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
