// pkg/entity/trail.go
package entity

import (
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Trail is a fixed-capacity FIFO of past positions, kept for
// visualization. Appending to a full trail evicts the oldest sample, so
// memory use is bounded no matter how long a session runs.
type Trail struct {
	points []physics.Vector2D
	head   int // index of the oldest sample
	size   int
}

// NewTrail creates a trail that holds at most capacity samples.
// A capacity below 1 is clamped to 1.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		points: make([]physics.Vector2D, capacity),
	}
}

// Append records a position, evicting the oldest sample when full.
func (t *Trail) Append(point physics.Vector2D) {
	if t.size < len(t.points) {
		t.points[(t.head+t.size)%len(t.points)] = point
		t.size++
		return
	}
	t.points[t.head] = point
	t.head = (t.head + 1) % len(t.points)
}

// Len returns the number of recorded samples.
func (t *Trail) Len() int {
	return t.size
}

// Cap returns the maximum number of samples the trail retains.
func (t *Trail) Cap() int {
	return len(t.points)
}

// Points returns the samples oldest first. The slice is a copy; callers
// may keep it across frames.
func (t *Trail) Points() []physics.Vector2D {
	out := make([]physics.Vector2D, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.points[(t.head+i)%len(t.points)]
	}
	return out
}
