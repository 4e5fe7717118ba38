package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

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

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d after Close, want 2 (inline execution)", ran)
	}
	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   int
	}{
		{"empty", 0, 4, 0},
		{"fewer rows than bands", 3, 8, 3},
		{"even split", 100, 4, 4},
		{"uneven split", 10, 3, 3},
		{"zero bands", 10, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitRows(tt.height, tt.n)
			if len(bands) != tt.want {
				t.Fatalf("SplitRows(%d, %d) = %d bands, want %d", tt.height, tt.n, len(bands), tt.want)
			}
			y := 0
			for _, b := range bands {
				if b.Y0 != y || b.Y1 <= b.Y0 {
					t.Fatalf("band %+v not contiguous after %d", b, y)
				}
				y = b.Y1
			}
			if y != tt.height {
				t.Errorf("bands cover %d rows, want %d", y, tt.height)
			}
		})
	}
}

func TestForEachRow(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		pool := NewWorkerPool(workers)
		seen := make([]atomic.Int32, 37)
		ForEachRow(pool, len(seen), func(y int) { seen[y].Add(1) })
		pool.Close()

		for y := range seen {
			if got := seen[y].Load(); got != 1 {
				t.Errorf("workers=%d: row %d visited %d times, want 1", workers, y, got)
			}
		}
	}

	var rows []int
	ForEachRow(nil, 4, func(y int) { rows = append(rows, y) })
	if len(rows) != 4 || rows[0] != 0 || rows[3] != 3 {
		t.Errorf("ForEachRow(nil) rows = %v, want [0 1 2 3]", rows)
	}
}
