// Package grayfx provides spatial filters for single-channel intensity grids.
//
// # Overview
//
// grayfx works on a Grid of 8-bit samples and offers four effects built on
// one correlation engine:
//   - Invert: 255 - v for every sample
//   - Blur: size x size box (mean) kernel
//   - Sharpen: unsharp mask, 2*original - blurred
//   - Edges: Sobel gradient magnitude
//
// # Quick Start
//
//	g, _ := grayfx.FromSamples(3, 1, []uint8{10, 20, 30})
//
//	blurred, err := grayfx.Blur(g, 3)
//	if err != nil {
//	    // even or non-positive size: errors.Is(err, grayfx.ErrInvalidKernel)
//	}
//
//	edges := grayfx.Edges(blurred)
//
// # Borders
//
// Kernels reach past the grid edge by their radius. Samples outside the grid
// replicate the nearest edge sample (see Extend), so a uniform grid stays
// uniform under Blur and produces zero under Edges.
//
// # Rounding
//
// Weighted sums are rounded half away from zero (math.Round) and clamped to
// [0, 255]. The same rule applies to Sharpen and Edges.
//
// # Concurrency
//
// Package-level functions run sequentially. NewProcessor(WithWorkers(n))
// splits each pass by rows across a worker pool; results are identical.
//
// # Versioning
//
// grayfx follows semantic versioning. The current version is tracked by the
// Version constant.
package grayfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
