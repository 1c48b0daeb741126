package grayfx

import (
	"fmt"
	"math"
)

// Invert returns a new grid with every sample v replaced by 255-v.
// Applying Invert twice returns the original samples.
func (p *Processor) Invert(g *Grid) *Grid {
	p.log().Debug("grayfx: effect", "effect", "invert", "width", g.width, "height", g.height)
	return g.Map(func(v uint8) uint8 { return 255 - v })
}

// Blur returns g correlated with a size x size box kernel.
// Returns ErrInvalidKernel if size is even or non-positive.
func (p *Processor) Blur(g *Grid, size int) (*Grid, error) {
	k, err := BoxKernel(size)
	if err != nil {
		return nil, fmt.Errorf("blur: %w", err)
	}
	p.log().Debug("grayfx: effect", "effect", "blur", "size", size)
	return p.Convolve(g, k), nil
}

// Sharpen returns an unsharp mask of g: each output sample is
// clamp(round(2*orig - blurred), 0, 255) where blurred is Blur(g, size).
// g is not modified.
func (p *Processor) Sharpen(g *Grid, size int) (*Grid, error) {
	k, err := BoxKernel(size)
	if err != nil {
		return nil, fmt.Errorf("sharpen: %w", err)
	}
	p.log().Debug("grayfx: effect", "effect", "sharpen", "size", size)

	blurred := p.Convolve(g, k)
	out := newGrid(g.width, g.height)
	p.forRows(g.height, func(y0, y1 int) {
		for i := y0 * g.width; i < y1*g.width; i++ {
			out.samples[i] = roundClamp(2*float64(g.samples[i]) - float64(blurred.samples[i]))
		}
	})
	return out, nil
}

// Edges returns the Sobel gradient magnitude of g.
//
// The horizontal and vertical passes are each clamped to [0, 255] by the
// convolution before they are combined as round(sqrt(gx² + gy²)), so
// negative gradients contribute zero.
func (p *Processor) Edges(g *Grid) *Grid {
	p.log().Debug("grayfx: effect", "effect", "edges", "width", g.width, "height", g.height)

	gx := p.Convolve(g, SobelX())
	gy := p.Convolve(g, SobelY())

	out := newGrid(g.width, g.height)
	p.forRows(g.height, func(y0, y1 int) {
		for i := y0 * g.width; i < y1*g.width; i++ {
			x := float64(gx.samples[i])
			y := float64(gy.samples[i])
			out.samples[i] = roundClamp(math.Sqrt(x*x + y*y))
		}
	})
	return out
}

// Invert inverts g using the default processor.
func Invert(g *Grid) *Grid {
	return defaultProcessor.Invert(g)
}

// Blur box-blurs g using the default processor.
func Blur(g *Grid, size int) (*Grid, error) {
	return defaultProcessor.Blur(g, size)
}

// Sharpen unsharp-masks g using the default processor.
func Sharpen(g *Grid, size int) (*Grid, error) {
	return defaultProcessor.Sharpen(g, size)
}

// Edges computes the gradient magnitude of g using the default processor.
func Edges(g *Grid) *Grid {
	return defaultProcessor.Edges(g)
}
