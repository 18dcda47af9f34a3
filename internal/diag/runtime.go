package diag

import (
	"context"
	"runtime"
	"time"

	"github.com/tinytelemetry/diagviz/internal/model"
)

// RuntimeSample is one reading of Go runtime statistics.
type RuntimeSample struct {
	Goroutines   int
	HeapAllocMiB float64
	GCCycles     uint32
}

// ReadRuntime samples the current process.
func ReadRuntime() RuntimeSample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return RuntimeSample{
		Goroutines:   runtime.NumGoroutine(),
		HeapAllocMiB: float64(ms.HeapAlloc) / (1 << 20),
		GCCycles:     ms.NumGC,
	}
}

// RegisterRuntime adds the runtime diagnostics to r.
func RegisterRuntime(r *Registry) {
	r.Add(model.Goroutines, "goroutines", 1)
	r.Add(model.HeapAlloc, "heap_alloc", model.DefaultMaxHistory)
	r.Add(model.GCCycles, "gc_cycles", 1)
}

// ApplyRuntime records s into r.
func ApplyRuntime(r *Registry, s RuntimeSample) {
	r.Record(model.Goroutines, float64(s.Goroutines))
	r.Record(model.HeapAlloc, s.HeapAllocMiB)
	r.Record(model.GCCycles, float64(s.GCCycles))
}

// PollRuntime reads runtime statistics every interval and hands them to
// send until ctx is done. send runs on the polling goroutine and must hand
// the sample to whoever owns the registry.
func PollRuntime(ctx context.Context, interval time.Duration, send func(RuntimeSample)) error {
	if interval <= 0 {
		interval = model.DefaultRuntimeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	send(ReadRuntime())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			send(ReadRuntime())
		}
	}
}
