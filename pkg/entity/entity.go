// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// ID is a unique identifier for a simulation object
type ID uint64

var nextID ID = 1

// GenerateID returns a process-unique object ID. The game session is
// single threaded, so a plain counter is sufficient.
func GenerateID() ID {
	id := nextID
	nextID++
	return id
}

// Body is any circular object participating in gravity and collision.
// A body with zero mass exerts no gravitational pull but can still be
// collided with; target zones rely on this.
type Body struct {
	ID           ID
	Name         string
	Position     physics.Vector2D
	Velocity     physics.Vector2D
	Acceleration physics.Vector2D // recomputed every frame, never carried over
	Mass         float64
	Radius       float64
	Color        string // hex, e.g. "#ff6347"
	Trail        *Trail
}

// NewBody creates a body at rest history-wise: the trail starts empty
// and fills as the body integrates.
func NewBody(id ID, name string, position, velocity physics.Vector2D, mass, radius float64, color string, trailCap int) *Body {
	return &Body{
		ID:       id,
		Name:     name,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Radius:   radius,
		Color:    color,
		Trail:    NewTrail(trailCap),
	}
}

// Collider returns the body's collision shape at its current position.
func (b *Body) Collider() physics.Circle {
	return physics.Circle{
		Center: b.Position,
		Radius: b.Radius,
	}
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Length()
}

// Attractor returns a gravity-source snapshot of the body's current state.
func (b *Body) Attractor() physics.Attractor {
	return physics.Attractor{
		Position: b.Position,
		Mass:     b.Mass,
	}
}

// Integrate advances the body one Euler step: velocity from the frame's
// acceleration first, then position from the new velocity. The new
// position is recorded on the trail.
func (b *Body) Integrate(deltaTime float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(deltaTime))
	b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
	b.Trail.Append(b.Position)
}
