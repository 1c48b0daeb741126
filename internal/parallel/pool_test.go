package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestWorkerPool_CreateNegativeWorkers(t *testing.T) {
	pool := NewWorkerPool(-5)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != int64(numTasks) {
		t.Errorf("counter = %d, want %d", got, numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// Should return immediately without blocking.
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if got := counter.Load(); got != 2 {
		t.Errorf("counter after close = %d, want 2 (inline execution)", got)
	}
}

// =============================================================================
// ForRange Tests
// =============================================================================

func TestWorkerPool_ForRange_CoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		n       int
	}{
		{"more rows than workers", 4, 103},
		{"fewer rows than workers", 8, 3},
		{"single row", 4, 1},
		{"exact multiple", 4, 16},
		{"single worker", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()

			hits := make([]int32, tt.n)
			pool.ForRange(tt.n, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})

			for i, h := range hits {
				if h != 1 {
					t.Errorf("index %d visited %d times, want 1", i, h)
				}
			}
		})
	}
}

func TestWorkerPool_ForRange_Disjoint(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	var ranges [][2]int
	pool.ForRange(10, func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})

	total := 0
	for _, r := range ranges {
		if r[0] >= r[1] {
			t.Errorf("empty or inverted range %v", r)
		}
		total += r[1] - r[0]
	}
	if total != 10 {
		t.Errorf("ranges cover %d indices, want 10", total)
	}
	if len(ranges) > 4 {
		t.Errorf("got %d chunks, want at most 4", len(ranges))
	}
}

func TestWorkerPool_ForRange_NonPositive(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	pool.ForRange(0, func(int, int) { called = true })
	pool.ForRange(-3, func(int, int) { called = true })

	if called {
		t.Error("ForRange should not call fn for n <= 0")
	}
}

func TestWorkerPool_ForRange_AfterClose(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	var got [2]int
	pool.ForRange(7, func(start, end int) { got = [2]int{start, end} })

	if got != [2]int{0, 7} {
		t.Errorf("ForRange after close = %v, want [0 7] on caller goroutine", got)
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)

	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// All slow work lands on worker 0's queue (indices 0, 4, 8, ...);
	// idle workers must steal for this to finish quickly.
	var counter atomic.Int64
	work := make([]func(), 16)
	for i := range work {
		if i%4 == 0 {
			work[i] = func() {
				time.Sleep(5 * time.Millisecond)
				counter.Add(1)
			}
		} else {
			work[i] = func() { counter.Add(1) }
		}
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 16 {
		t.Errorf("counter = %d, want 16", got)
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		pool.ForRange(100, func(int, int) {})
		pool.Close()
	}

	// Give exiting goroutines a moment to be reaped.
	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before+2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d, possible leak", before, after)
	}
}

func BenchmarkWorkerPool_ForRange(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	out := make([]int, 1080)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ForRange(len(out), func(start, end int) {
			for j := start; j < end; j++ {
				out[j] = j * 2
			}
		})
	}
}
