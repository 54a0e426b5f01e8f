package mobtex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"strings"
	"testing"

	"github.com/bmatsuo/learngl/internal/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/mobile/gl"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoRows is a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)
	return img
}

func encodePNG(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRows()))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t)), Options{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(1, 1))
}

func TestDecodeFlip(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t)), Options{FlipV: true})
	require.NoError(t, err)
	assert.Equal(t, blue, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, twoRows()))

	img, err := Decode(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, red, img.RGBAAt(1, 0))
}

func TestDecodeNotImage(t *testing.T) {
	_, err := Decode(strings.NewReader("#version 300 es\nvoid main() {}"), Options{})
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestParseFilter(t *testing.T) {
	for _, f := range []Filter{Nearest, Linear, Mipmap} {
		got, err := ParseFilter(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, Nearest, f)

	_, err = ParseFilter("trilinear")
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t)), Options{FlipV: true})
	require.NoError(t, err)

	glctx := &gltest.Context{}
	tex, err := Upload(glctx, img, Options{})
	require.NoError(t, err)
	assert.NotZero(t, tex.Value)
	assert.Equal(t, 1, glctx.Live("texture"))

	require.Len(t, glctx.Uploads, 1)
	assert.Equal(t, img.Pix, glctx.Uploads[0])
	assert.Equal(t, gl.NEAREST, glctx.TexParams[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, gl.NEAREST, glctx.TexParams[gl.TEXTURE_MAG_FILTER])
	assert.Zero(t, glctx.Mipmaps)
}

func TestUploadMipmap(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t)), Options{})
	require.NoError(t, err)

	glctx := &gltest.Context{}
	_, err = Upload(glctx, img, Options{Filter: Mipmap})
	require.NoError(t, err)
	assert.Equal(t, gl.LINEAR_MIPMAP_LINEAR, glctx.TexParams[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, 1, glctx.Mipmaps)
}

func TestUploadNoTextures(t *testing.T) {
	glctx := &gltest.Context{NoTextures: true}
	_, err := Upload(glctx, image.NewRGBA(image.Rect(0, 0, 1, 1)), Options{})
	assert.Error(t, err)
}

func TestLoadPathMissing(t *testing.T) {
	glctx := &gltest.Context{}
	_, err := LoadPath(glctx, "nope.png", Options{})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "nope.png")
	assert.Zero(t, glctx.LiveTotal())
}
