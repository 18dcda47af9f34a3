package history

import "github.com/tinytelemetry/diagviz/internal/model"

// Buffer is a fixed-capacity FIFO of float64 samples. Push appends at the
// tail and evicts from the head once the buffer is full.
type Buffer struct {
	data  []float64
	head  int // next write position
	count int // number of valid samples
}

// New creates a Buffer holding model.HistoryCapacity samples.
func New() *Buffer {
	return NewN(model.HistoryCapacity)
}

// NewN creates a Buffer with a custom capacity.
func NewN(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = model.HistoryCapacity
	}
	return &Buffer{data: make([]float64, capacity)}
}

// Push adds a sample, evicting the oldest one when full.
func (b *Buffer) Push(v float64) {
	if len(b.data) == 0 {
		b.data = make([]float64, model.HistoryCapacity)
	}
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)
	if b.count < len(b.data) {
		b.count++
	}
}

// Len returns the number of valid samples.
func (b *Buffer) Len() int { return b.count }

// Cap returns the capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Last returns the most recent sample.
func (b *Buffer) Last() (float64, bool) {
	if b.count == 0 {
		return 0, false
	}
	return b.data[(b.head-1+len(b.data))%len(b.data)], true
}

// Values returns the samples oldest first. The slice is a copy.
func (b *Buffer) Values() []float64 {
	if b.count == 0 {
		return nil
	}
	size := len(b.data)
	out := make([]float64, b.count)
	start := (b.head - b.count + size) % size
	for i := range out {
		out[i] = b.data[(start+i)%size]
	}
	return out
}

// Reset drops all samples.
func (b *Buffer) Reset() {
	b.head = 0
	b.count = 0
}
