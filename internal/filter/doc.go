// Package filter generates the weight tables behind grayfx kernels.
//
// Tables are square and row-major, with an odd side length so that the
// center weight sits at (size/2, size/2):
//   - Box (uniform mean) weights, cached per size
//   - Identity weights (a single 1 at the center)
//   - Sobel horizontal and vertical gradient weights
//
// The package does not validate sizes; callers in grayfx reject even and
// non-positive sizes before asking for a table.
package filter
