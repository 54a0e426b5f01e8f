package mobtex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for image.Decode
	_ "image/png"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/gl"
)

// ErrNotImage is returned when an asset's contents are not a known image
// format.
var ErrNotImage = errors.New("not an image")

// Filter selects the texture minification and magnification filters.
type Filter int

// Available texture filters.
const (
	Nearest Filter = iota
	Linear
	// Mipmap generates mipmaps and filters between them.
	Mipmap
)

var filterNames = [...]string{
	Nearest: "nearest",
	Linear:  "linear",
	Mipmap:  "mipmap",
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter returns the Filter named s.  The empty string is Nearest.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return Nearest, nil
	}
	for i, name := range filterNames {
		if strings.EqualFold(s, name) {
			return Filter(i), nil
		}
	}
	return Nearest, fmt.Errorf("unknown texture filter %q", s)
}

// Options control how an image asset becomes a texture.
type Options struct {
	// FlipV mirrors the image top to bottom before upload.
	FlipV  bool
	Filter Filter
}

// LoadPath loads the image asset at path into glctx and returns the
// gl.Texture identifier for the resulting texture.
func LoadPath(glctx gl.Context, path string, opt Options) (gl.Texture, error) {
	f, err := asset.Open(path)
	if err != nil {
		return gl.Texture{}, fmt.Errorf("texture asset %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, opt)
	if err != nil {
		return gl.Texture{}, fmt.Errorf("texture asset %s: %w", path, err)
	}
	return Upload(glctx, img, opt)
}

// Decode reads an encoded image from r and returns its pixels as RGBA with
// the origin at (0, 0), flipped vertically if opt.FlipV is set.
func Decode(r io.Reader, opt Options) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w (detected %s)", ErrNotImage, kind.Extension)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}

	if opt.FlipV {
		return transform.FlipV(src), nil
	}
	return toRGBA(src), nil
}

func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Upload creates a 2D texture in glctx from img.  The texture is left
// unbound.  img may be discarded once Upload returns.
func Upload(glctx gl.Context, img *image.RGBA, opt Options) (gl.Texture, error) {
	texture := glctx.CreateTexture()
	if texture.Value == 0 {
		return gl.Texture{}, fmt.Errorf("no textures available")
	}
	b := img.Bounds()

	glctx.BindTexture(gl.TEXTURE_2D, texture)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, b.Dx(), b.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)

	switch opt.Filter {
	case Linear:
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	case Mipmap:
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		glctx.GenerateMipmap(gl.TEXTURE_2D)
	default:
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	}

	glctx.BindTexture(gl.TEXTURE_2D, gl.Texture{})
	return texture, nil
}
