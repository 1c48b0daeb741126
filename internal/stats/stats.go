// Package stats summarizes the intensity distribution of a grid.
package stats

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/grayfx"
)

// Bins is the number of histogram bins; each covers 256/Bins levels.
const Bins = 16

// Summary describes the sample distribution of a grid.
type Summary struct {
	Mean   float64
	StdDev float64 // population standard deviation
	Median float64
	Min    uint8
	Max    uint8

	// Histogram[i] counts samples in [i*256/Bins, (i+1)*256/Bins).
	Histogram [Bins]int
}

// Summarize computes the distribution statistics of g.
func Summarize(g *grayfx.Grid) Summary {
	x := values(g)
	sort.Float64s(x)

	var s Summary
	s.Mean, s.StdDev = stat.PopMeanStdDev(x, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	s.Min = uint8(floats.Min(x))
	s.Max = uint8(floats.Max(x))

	dividers := make([]float64, Bins+1)
	floats.Span(dividers, 0, 256)
	counts := stat.Histogram(nil, dividers, x, nil)
	for i, c := range counts {
		s.Histogram[i] = int(c)
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("median", s.Median),
		slog.Int("min", int(s.Min)),
		slog.Int("max", int(s.Max)),
	)
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("mean=%.2f stddev=%.2f median=%.0f min=%d max=%d",
		s.Mean, s.StdDev, s.Median, s.Min, s.Max)
}

// PlotHistogram renders the intensity histogram of g to path, one bar per
// bin labelled with the bin's lower bound. The output format follows the
// file extension (png, svg, pdf, ...).
func PlotHistogram(g *grayfx.Grid, title, path string) error {
	s := Summarize(g)

	counts := make(plotter.Values, Bins)
	labels := make([]string, Bins)
	for i, c := range s.Histogram {
		counts[i] = float64(c)
		labels[i] = strconv.Itoa(i * 256 / Bins)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Intensity"
	p.Y.Label.Text = "Samples"

	bars, err := plotter.NewBarChart(counts, vg.Points(12))
	if err != nil {
		return fmt.Errorf("stats: histogram: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("stats: save histogram: %w", err)
	}
	return nil
}

// values returns the samples of g as float64.
func values(g *grayfx.Grid) []float64 {
	s := g.Samples()
	x := make([]float64, len(s))
	for i, v := range s {
		x[i] = float64(v)
	}
	return x
}
