package grayfx

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Grid is a rectangular buffer of single-channel intensity samples.
//
// Samples are stored row-major: the sample at (x, y) lives at index
// x + width*y. Effects never modify a grid they receive; they allocate
// and return a new one. Set exists for building a grid before it is
// handed to other code.
type Grid struct {
	width   int
	height  int
	samples []uint8
}

// NewGrid creates a blank grid (all samples zero) of the given dimensions.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return newGrid(width, height), nil
}

// FromSamples creates a grid holding a copy of samples.
// The slice must contain exactly width*height values in row-major order.
func FromSamples(width, height int, samples []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d grid", ErrInvalidDimensions, len(samples), width, height)
	}
	g := newGrid(width, height)
	copy(g.samples, samples)
	return g, nil
}

// newGrid allocates a grid without validating dimensions.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		samples: make([]uint8, width*height),
	}
}

// Width returns the grid width in samples.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in samples.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of samples (width*height).
func (g *Grid) Len() int {
	return len(g.samples)
}

// Samples returns a copy of the row-major sample data.
func (g *Grid) Samples() []uint8 {
	out := make([]uint8, len(g.samples))
	copy(out, g.samples)
	return out
}

// Get returns the sample at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the grid.
func (g *Grid) Get(x, y int) (uint8, error) {
	if !g.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.at(x, y), nil
}

// Set stores v at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the grid.
func (g *Grid) Set(x, y int, v uint8) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.samples[x+g.width*y] = v
	return nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// at is the unchecked accessor used by the convolution loops.
func (g *Grid) at(x, y int) uint8 {
	return g.samples[x+g.width*y]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	copy(c.samples, g.samples)
	return c
}

// Equal reports whether g and o have the same dimensions and samples.
// A nil grid is only equal to another nil grid.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i, v := range g.samples {
		if o.samples[i] != v {
			return false
		}
	}
	return true
}

// Map returns a new grid with fn applied to every sample.
func (g *Grid) Map(fn func(uint8) uint8) *Grid {
	out := newGrid(g.width, g.height)
	for i, v := range g.samples {
		out.samples[i] = fn(v)
	}
	return out
}

// String formats the grid as Grid(width, height, [samples...]).
func (g *Grid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid(%d, %d, [", g.width, g.height)
	for i, v := range g.samples {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteString("])")
	return sb.String()
}

// At implements the image.Image interface.
func (g *Grid) At(x, y int) color.Color {
	if !g.inBounds(x, y) {
		return color.Gray{}
	}
	return color.Gray{Y: g.at(x, y)}
}

// Bounds implements the image.Image interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// ColorModel implements the image.Image interface.
func (g *Grid) ColorModel() color.Model {
	return color.GrayModel
}

// ToGray copies the grid into a standard library *image.Gray.
func (g *Grid) ToGray() *image.Gray {
	img := image.NewGray(g.Bounds())
	for y := 0; y < g.height; y++ {
		copy(img.Pix[y*img.Stride:], g.samples[y*g.width:(y+1)*g.width])
	}
	return img
}
