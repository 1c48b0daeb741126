package stats

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/grayfx"
)

func TestSummarize(t *testing.T) {
	g, err := grayfx.FromSamples(4, 1, []uint8{0, 10, 20, 255})
	require.NoError(t, err)

	s := Summarize(g)

	assert.InDelta(t, 71.25, s.Mean, 1e-9)
	assert.InDelta(t, 106.32, s.StdDev, 0.01) // population stddev
	assert.Equal(t, uint8(0), s.Min)
	assert.Equal(t, uint8(255), s.Max)

	var want [Bins]int
	want[0] = 2  // 0, 10
	want[1] = 1  // 20
	want[15] = 1 // 255
	assert.Equal(t, want, s.Histogram)
}

func TestSummarizeUniform(t *testing.T) {
	g, err := grayfx.FromSamples(3, 3, bytes.Repeat([]byte{100}, 9))
	require.NoError(t, err)

	s := Summarize(g)

	assert.InDelta(t, 100, s.Mean, 1e-9)
	assert.InDelta(t, 0, s.StdDev, 1e-9)
	assert.InDelta(t, 100, s.Median, 1e-9)
	assert.Equal(t, 9, s.Histogram[100*Bins/256])
}

func TestSummarizeHistogramTotal(t *testing.T) {
	samples := make([]uint8, 256)
	for i := range samples {
		samples[i] = uint8(i)
	}
	g, err := grayfx.FromSamples(16, 16, samples)
	require.NoError(t, err)

	s := Summarize(g)

	for i, c := range s.Histogram {
		assert.Equal(t, 256/Bins, c, "bin %d", i)
	}
}

func TestSummaryLogValue(t *testing.T) {
	g, err := grayfx.FromSamples(2, 1, []uint8{10, 30})
	require.NoError(t, err)

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("grid", "stats", Summarize(g))

	out := buf.String()
	assert.True(t, strings.Contains(out, "stats.mean=20"), out)
	assert.True(t, strings.Contains(out, "stats.min=10"), out)
}

func TestPlotHistogram(t *testing.T) {
	g, err := grayfx.FromSamples(4, 1, []uint8{0, 64, 128, 255})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, PlotHistogram(g, "test", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlotHistogramUniformSVG(t *testing.T) {
	g, err := grayfx.FromSamples(2, 2, []uint8{7, 7, 7, 7})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hist.svg")
	require.NoError(t, PlotHistogram(g, "uniform", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPlotHistogramUnknownExtension(t *testing.T) {
	g, err := grayfx.FromSamples(1, 1, []uint8{0})
	require.NoError(t, err)

	err = PlotHistogram(g, "x", filepath.Join(t.TempDir(), "hist.nope"))
	assert.Error(t, err)
}
