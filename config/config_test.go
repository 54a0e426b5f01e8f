package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/bmatsuo/learngl/mobtex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "cube", c.Scene)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, c.ClearColor)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	f, err := c.Filter()
	require.NoError(t, err)
	assert.Equal(t, mobtex.Nearest, f)
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(`
scene = "quad"
show_fps = true
log_level = "debug"

[textures]
face = "face.bmp"
filter = "mipmap"
`))
	require.NoError(t, err)
	assert.Equal(t, "quad", c.Scene)
	assert.True(t, c.ShowFPS)
	assert.Equal(t, "face.bmp", c.Textures.Face)
	// unset keys keep their defaults
	assert.Equal(t, "container.jpg", c.Textures.Container)
	assert.Equal(t, Default().ClearColor, c.ClearColor)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	f, err := c.Filter()
	require.NoError(t, err)
	assert.Equal(t, mobtex.Mipmap, f)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", `sceen = "cube"`},
		{"syntax", `scene = `},
		{"color range", `clear_color = [0.2, 0.3, 1.5, 1.0]`},
		{"log level", `log_level = "loud"`},
		{"filter", "[textures]\nfilter = \"bicubic\""},
		{"empty scene", `scene = ""`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(test.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingAsset(t *testing.T) {
	// no assets directory next to this package
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
