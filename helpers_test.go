package grayfx

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Test helper functions shared across grayfx tests.

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, w, h int, samples []uint8) *Grid {
	t.Helper()
	g, err := FromSamples(w, h, samples)
	if err != nil {
		t.Fatalf("FromSamples(%d, %d) error = %v", w, h, err)
	}
	return g
}

// mustKernel builds a kernel or fails the test.
func mustKernel(t testing.TB, size int, weights []float64) *Kernel {
	t.Helper()
	k, err := NewKernel(size, weights)
	if err != nil {
		t.Fatalf("NewKernel(%d) error = %v", size, err)
	}
	return k
}

// uniformSamples returns n samples all equal to v.
func uniformSamples(n int, v uint8) []uint8 {
	s := make([]uint8, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// randomGrid returns a w x h grid of deterministic pseudo-random samples.
func randomGrid(t testing.TB, w, h int, seed uint64) *Grid {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := make([]uint8, w*h)
	for i := range s {
		s[i] = uint8(r.IntN(256))
	}
	return mustGrid(t, w, h, s)
}

// assertGrid fails the test if got does not match want.
func assertGrid(t *testing.T, got, want *Grid) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if diff := cmp.Diff(want.Samples(), got.Samples()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}
