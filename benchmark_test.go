package grayfx

import (
	"fmt"
	"testing"
)

func BenchmarkConvolve(b *testing.B) {
	g := randomGrid(b, 512, 512, 1)

	for _, size := range []int{3, 5, 9} {
		k, _ := BoxKernel(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Convolve(g, k)
			}
		})
	}
}

func BenchmarkConvolveParallel(b *testing.B) {
	g := randomGrid(b, 512, 512, 1)
	k, _ := BoxKernel(5)

	for _, workers := range []int{2, 4, 8} {
		p := NewProcessor(WithWorkers(workers))
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = p.Convolve(g, k)
			}
		})
		p.Close()
	}
}

func BenchmarkEffects(b *testing.B) {
	g := randomGrid(b, 256, 256, 2)
	effects := []Effect{InvertEffect{}, BlurEffect{Size: 3}, SharpenEffect{Size: 3}, EdgesEffect{}}

	for _, e := range effects {
		b.Run(e.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Apply(g, e)
			}
		})
	}
}
