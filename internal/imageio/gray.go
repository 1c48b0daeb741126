package imageio

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/grayfx"
)

// FromStdImage converts a decoded image into a grid of intensities.
//
// *image.Gray is copied directly and *image.Gray16 keeps the high byte of
// each sample. RGB-family images are reduced with
// round(0.299R + 0.587G + 0.114B) over non-premultiplied 8-bit channels;
// alpha is ignored. Any other pixel type returns ErrUnsupportedFormat.
func FromStdImage(img image.Image) (*grayfx.Grid, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	samples := make([]uint8, width*height)

	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			start := (b.Min.Y+y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			copy(samples[y*width:(y+1)*width], src.Pix[start:start+width])
		}

	case *image.Gray16:
		for y := range height {
			for x := range width {
				samples[y*width+x] = uint8(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}

	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.YCbCr, *image.NYCbCrA, *image.CMYK, *image.Paletted:
		for y := range height {
			for x := range width {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				samples[y*width+x] = Luma(c.R, c.G, c.B)
			}
		}

	default:
		return nil, fmt.Errorf("%w: pixel type %T", ErrUnsupportedFormat, img)
	}

	return grayfx.FromSamples(width, height, samples)
}

// Luma returns round(0.299r + 0.587g + 0.114b), rounded half away from zero.
func Luma(r, g, b uint8) uint8 {
	v := math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	if v > 255 {
		return 255
	}
	return uint8(v)
}
