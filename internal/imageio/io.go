package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/grayfx"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file's container format or
	// pixel encoding cannot be read or written.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Load reads an image file and converts it to a grid.
// The container format is detected from the file content.
func Load(path string) (*grayfx.Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	g, _, err := Decode(f)
	return g, err
}

// DecodeBytes decodes an in-memory image, auto-detecting the format.
func DecodeBytes(data []byte) (*grayfx.Grid, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format, and returns
// the grid together with the format name reported by the decoder.
func Decode(r io.Reader) (*grayfx.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}

	g, err := FromStdImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("imageio: decode %s: %w", format, err)
	}
	return g, format, nil
}

// Save writes g to path, choosing the encoder from the file extension.
func Save(g *grayfx.Grid, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, g, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g *grayfx.Grid, format Format) error {
	img := g.ToGray()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatGIF:
		err = encodeGrayGIF(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", format, err)
	}
	return nil
}

// grayPalette maps palette index i to gray level i.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// encodeGrayGIF writes a GIF whose palette index equals the gray level,
// so no quantization takes place.
func encodeGrayGIF(w io.Writer, img *image.Gray) error {
	pal := image.NewPaletted(img.Bounds(), grayPalette)
	copy(pal.Pix, img.Pix)
	return gif.Encode(w, pal, &gif.Options{NumColors: 256})
}
