// Package viewer holds the display-independent parts of the live scope
// viewer: the sample history drawn each video frame and the key controls.
package viewer

import (
	"sync"

	"github.com/Faultbox/vectorscope/internal/host"
)

// Point is one beam sample. The layout matches the vertex format uploaded
// to the GPU.
type Point struct {
	X, Y, Intensity float32
}

// History is a fixed-capacity ring of the most recent samples. Push and
// CopyTo may be called from different goroutines.
type History struct {
	mu   sync.Mutex
	data []Point
	pos  int
	full bool
}

// NewHistory creates a History holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{data: make([]Point, max(capacity, 1))}
}

// Cap returns the capacity.
func (h *History) Cap() int {
	return len(h.data)
}

// Len returns the number of samples held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.full {
		return len(h.data)
	}
	return h.pos
}

// Push appends every sample of a block, overwriting the oldest.
func (h *History) Push(f host.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := 0; i < f.Len(); i++ {
		h.data[h.pos] = Point{X: f.X[i], Y: f.Y[i], Intensity: f.Intensity[i]}
		h.pos++
		if h.pos == len(h.data) {
			h.pos = 0
			h.full = true
		}
	}
}

// CopyTo replaces dst's contents with the history, oldest first, and
// returns it. Reusing dst across frames avoids allocation.
func (h *History) CopyTo(dst []Point) []Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	dst = dst[:0]
	if h.full {
		dst = append(dst, h.data[h.pos:]...)
	}
	return append(dst, h.data[:h.pos]...)
}

// Reset empties the history.
func (h *History) Reset() {
	h.mu.Lock()
	h.pos, h.full = 0, false
	h.mu.Unlock()
}
