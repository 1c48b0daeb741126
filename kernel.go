package grayfx

import (
	"fmt"

	"github.com/gogpu/grayfx/internal/filter"
)

// Kernel is a square, odd-sized matrix of correlation weights.
//
// Weights are stored row-major. The center weight, at (Radius, Radius),
// multiplies the sample being computed. Kernels are immutable once built.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel creates a kernel of the given size from row-major weights.
// The weights are copied.
//
// Returns ErrInvalidKernel if size is even or non-positive, or if
// len(weights) != size*size.
func NewKernel(size int, weights []float64) (*Kernel, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	if len(weights) != size*size {
		return nil, fmt.Errorf("%w: %d weights for size %d", ErrInvalidKernel, len(weights), size)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Kernel{size: size, weights: w}, nil
}

// KernelFromRows creates a kernel from a square matrix given row by row.
func KernelFromRows(rows [][]float64) (*Kernel, error) {
	size := len(rows)
	weights := make([]float64, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrInvalidKernel, i, len(row), size)
		}
		weights = append(weights, row...)
	}
	return NewKernel(size, weights)
}

// BoxKernel creates a uniform mean kernel: every weight is 1/(size*size).
func BoxKernel(size int) (*Kernel, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	// Cached tables are shared; Kernel never writes to its weights.
	return &Kernel{size: size, weights: filter.CachedBoxWeights(size)}, nil
}

// IdentityKernel creates a kernel whose only non-zero weight is a 1 at
// the center. Correlating with it returns the input unchanged.
func IdentityKernel(size int) (*Kernel, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	return &Kernel{size: size, weights: filter.IdentityWeights(size)}, nil
}

// SobelX returns the 3x3 horizontal gradient kernel
// [[-1,0,1],[-2,0,2],[-1,0,1]].
func SobelX() *Kernel {
	return &Kernel{size: 3, weights: filter.SobelX()}
}

// SobelY returns the 3x3 vertical gradient kernel
// [[1,2,1],[0,0,0],[-1,-2,-1]].
func SobelY() *Kernel {
	return &Kernel{size: 3, weights: filter.SobelY()}
}

func validateKernelSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: size %d must be odd and positive", ErrInvalidKernel, size)
	}
	return nil
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int {
	return k.size
}

// Radius returns (Size-1)/2, the reach of the kernel from its center.
func (k *Kernel) Radius() int {
	return (k.size - 1) / 2
}

// Weight returns the weight at the given row and column.
// Returns ErrOutOfBounds if either index is outside [0, Size).
func (k *Kernel) Weight(row, col int) (float64, error) {
	if row < 0 || row >= k.size || col < 0 || col >= k.size {
		return 0, fmt.Errorf("%w: (%d,%d) in size %d kernel", ErrOutOfBounds, row, col, k.size)
	}
	return k.weights[row*k.size+col], nil
}

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}
