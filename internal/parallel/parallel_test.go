package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := 1000

	For(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_CoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 7}

	n := 500
	hits := make([]int32, n)
	For(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	calls := 0
	For(100, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("Expected single range [0, 100), got [%d, %d)", start, end)
		}
	}, Sequential())

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	calls := 0
	For(cfg.MinChunkSize, func(_, _ int) {
		calls++
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestFor_Empty(t *testing.T) {
	For(0, func(_, _ int) {
		t.Fatal("f must not be called for n == 0")
	}, Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1})
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("COMPARE_NUM_THREADS", "4")
	t.Setenv("COMPARE_GRAIN_SIZE", "10")
	t.Setenv("COMPARE_PARALLEL", "true")

	cfg := DefaultConfig()
	if !cfg.Enabled || cfg.NumWorkers != 4 || cfg.MinChunkSize != 10 {
		t.Errorf("unexpected config %+v", cfg)
	}

	t.Setenv("COMPARE_PARALLEL", "false")
	if DefaultConfig().Enabled {
		t.Error("COMPARE_PARALLEL=false must disable parallelism")
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 256}
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(start, end int) {
				atomic.AddInt64(&sum, int64(end-start))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(start, end int) {
				atomic.AddInt64(&sum, int64(end-start))
			}, Sequential())
		}
	})
}
