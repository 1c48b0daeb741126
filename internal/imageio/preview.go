package imageio

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/grayfx"
)

// Preview scales g to width x height with nearest-neighbour sampling, so
// individual samples stay visible as blocks. Non-positive dimensions keep
// the grid's own size.
func Preview(g *grayfx.Grid, width, height int) *image.Gray {
	if width <= 0 {
		width = g.Width()
	}
	if height <= 0 {
		height = g.Height()
	}

	src := g.ToGray()
	if width == g.Width() && height == g.Height() {
		return src
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePreview writes a scaled preview of g to w as GIF.
func EncodePreview(w io.Writer, g *grayfx.Grid, width, height int) error {
	if err := encodeGrayGIF(w, Preview(g, width, height)); err != nil {
		return fmt.Errorf("imageio: encode preview: %w", err)
	}
	return nil
}

// SavePreview writes a scaled GIF preview of g to path.
func SavePreview(g *grayfx.Grid, path string, width, height int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePreview(f, g, width, height); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
