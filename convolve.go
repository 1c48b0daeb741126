package grayfx

import (
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/grayfx/internal/parallel"
)

// Processor runs convolution passes and effects.
//
// A zero-option Processor works on the calling goroutine. With
// WithWorkers(n > 1) it owns a worker pool that splits the row loop of
// every pass; call Close to release it. Processors hold no per-call state
// and are safe for concurrent use.
type Processor struct {
	pool   *parallel.WorkerPool
	logger *slog.Logger
}

// NewProcessor creates a processor configured by opts.
func NewProcessor(opts ...Option) *Processor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Processor{logger: o.logger}
	if o.workers > 1 {
		p.pool = parallel.NewWorkerPool(o.workers)
	}
	return p
}

// defaultProcessor backs the package-level effect functions.
var defaultProcessor = NewProcessor()

// Close releases the worker pool, if any. Close is safe to call multiple
// times; a closed processor keeps working sequentially.
func (p *Processor) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Workers returns the number of goroutines used per pass.
func (p *Processor) Workers() int {
	if p.pool == nil {
		return 1
	}
	return p.pool.Workers()
}

func (p *Processor) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// forRows calls fn over disjoint row ranges covering [0, height).
func (p *Processor) forRows(height int, fn func(y0, y1 int)) {
	if p.pool == nil {
		fn(0, height)
		return
	}
	p.pool.ForRange(height, fn)
}

// Convolve correlates g with k and returns a new grid.
//
// The grid is first extended by k.Radius() with replicated edge samples.
// For each output (x, y) the weighted sum
//
//	sum(padded(x+col, y+row) * k(row, col))  for row, col in [0, size)
//
// is rounded half away from zero and clamped to [0, 255]. The kernel is not
// flipped, so the center weight multiplies the sample at (x, y).
func (p *Processor) Convolve(g *Grid, k *Kernel) *Grid {
	start := time.Now()
	out := p.convolve(g, k)
	p.log().Debug("grayfx: convolve",
		"width", g.width,
		"height", g.height,
		"kernel", k.size,
		"workers", p.Workers(),
		"elapsed", time.Since(start))
	return out
}

func (p *Processor) convolve(g *Grid, k *Kernel) *Grid {
	padded := Extend(g, k.Radius())
	out := newGrid(g.width, g.height)
	size := k.size

	p.forRows(g.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := out.samples[y*g.width : (y+1)*g.width]
			for x := range row {
				var sum float64
				for i := 0; i < size; i++ {
					weights := k.weights[i*size : (i+1)*size]
					for j, w := range weights {
						sum += float64(padded.At(x+j, y+i)) * w
					}
				}
				row[x] = roundClamp(sum)
			}
		}
	})

	return out
}

// Convolve correlates g with k using the default sequential processor.
func Convolve(g *Grid, k *Kernel) *Grid {
	return defaultProcessor.Convolve(g, k)
}

// roundClamp rounds v half away from zero and clamps it to [0, 255].
// Every rounding site in grayfx goes through this function.
func roundClamp(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
