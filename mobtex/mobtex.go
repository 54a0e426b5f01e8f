/*
Package mobtex decodes bundled image assets and loads them into a gl.Context
from golang.org/x/mobile/gl as 2D textures.  PNG, JPEG and BMP assets are
supported.  Images decoded from files have their origin in the top left
corner while GL texture coordinates start at the bottom left, so assets may
be flipped vertically as they are decoded.

Typically an application will just make use of the generic function LoadPath.

	texture, err := mobtex.LoadPath(glctx, "awesomeface.png", mobtex.Options{FlipV: true})
	if err != nil {
		slog.Error("texture asset failed to load", "err", err)
	}
*/
package mobtex
