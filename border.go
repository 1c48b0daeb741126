package grayfx

// Padded is a grid extended by a border of replicated edge samples.
//
// The view is logical: no samples are copied. Padded coordinate (px, py)
// reads source sample (clamp(px-r, 0, w-1), clamp(py-r, 0, h-1)), which
// replicates the nearest row or column outward, corners included.
type Padded struct {
	src    *Grid
	radius int
}

// Extend returns g padded by radius samples on every side.
// A radius of zero (or less) yields a view identical to g.
func Extend(g *Grid, radius int) *Padded {
	if radius < 0 {
		radius = 0
	}
	return &Padded{src: g, radius: radius}
}

// Radius returns the border width.
func (p *Padded) Radius() int {
	return p.radius
}

// Width returns the padded width, src width + 2*radius.
func (p *Padded) Width() int {
	return p.src.width + 2*p.radius
}

// Height returns the padded height, src height + 2*radius.
func (p *Padded) Height() int {
	return p.src.height + 2*p.radius
}

// At returns the sample at padded coordinate (px, py).
// Coordinates beyond the padded area clamp to it as well.
func (p *Padded) At(px, py int) uint8 {
	x := clampInt(px-p.radius, 0, p.src.width-1)
	y := clampInt(py-p.radius, 0, p.src.height-1)
	return p.src.at(x, y)
}

// Grid materializes the padded view into a new grid.
func (p *Padded) Grid() *Grid {
	w, h := p.Width(), p.Height()
	out := newGrid(w, h)
	for py := 0; py < h; py++ {
		row := out.samples[py*w : (py+1)*w]
		for px := range row {
			row[px] = p.At(px, py)
		}
	}
	return out
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
