package filter

import "sync"

// sobelX is the horizontal gradient operator, row-major.
var sobelX = [9]float64{
	-1, 0, 1,
	-2, 0, 2,
	-1, 0, 1,
}

// sobelY is the vertical gradient operator, row-major.
var sobelY = [9]float64{
	1, 2, 1,
	0, 0, 0,
	-1, -2, -1,
}

// SobelX returns a fresh copy of the 3x3 horizontal gradient weights.
func SobelX() []float64 {
	w := sobelX
	return w[:]
}

// SobelY returns a fresh copy of the 3x3 vertical gradient weights.
func SobelY() []float64 {
	w := sobelY
	return w[:]
}

// BoxWeights generates size*size uniform weights, each 1/(size*size).
//
// For size <= 0, returns a single-element table [1.0] (identity).
func BoxWeights(size int) []float64 {
	if size <= 0 {
		return []float64{1.0}
	}

	n := size * size
	weights := make([]float64, n)
	val := 1.0 / float64(n)

	for i := range weights {
		weights[i] = val
	}

	return weights
}

// IdentityWeights generates size*size weights that are zero everywhere
// except for a 1 at the center.
//
// For size <= 0, returns [1.0].
func IdentityWeights(size int) []float64 {
	if size <= 0 {
		return []float64{1.0}
	}

	weights := make([]float64, size*size)
	c := KernelCenter(size)
	weights[c*size+c] = 1
	return weights
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// weightCache caches box weight tables keyed by kernel size.
// Cached slices are shared and must not be modified by callers.
type weightCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultWeightCache = newWeightCache(32)

// newWeightCache creates a weight cache with the given maximum entries.
func newWeightCache(maxLen int) *weightCache {
	return &weightCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves box weights from cache or generates and caches them.
func (c *weightCache) get(size int) []float64 {
	c.mu.RLock()
	if w, ok := c.cache[size]; ok {
		c.mu.RUnlock()
		return w
	}
	c.mu.RUnlock()

	w := BoxWeights(size)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: drop half the entries.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[size] = w
	c.mu.Unlock()

	return w
}

// len returns the number of cached tables.
func (c *weightCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedBoxWeights returns shared box weights for the size.
// The returned slice must be treated as read-only.
func CachedBoxWeights(size int) []float64 {
	return defaultWeightCache.get(size)
}
