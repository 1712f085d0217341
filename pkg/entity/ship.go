// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// RotationRate is the ship's fixed angular speed in radians per second:
// one full turn per second. Rotation costs no fuel.
const RotationRate = 2 * math.Pi

// Thruster holds the ship-specific capability state: orientation, fuel
// and the player's thrust intent flags. It is attached to a plain Body
// rather than specializing it.
type Thruster struct {
	Heading float64 // radians, 0 points along +X
	Power   float64
	Fuel    float64
	MaxFuel float64

	// Oriented thrust intent, along/against the heading.
	Forward  bool
	Backward bool

	// Screen-aligned strafe intent, independent of heading.
	StrafeLeft  bool
	StrafeRight bool
	StrafeUp    bool
	StrafeDown  bool
}

// Ship is a Body with a Thruster attached.
type Ship struct {
	*Body
	Thruster Thruster
}

// NewShip creates a ship facing up (-Y on screen coordinates) with a
// full tank.
func NewShip(id ID, name string, position physics.Vector2D, mass, radius float64, color string, thrustPower, fuel float64, trailCap int) *Ship {
	return &Ship{
		Body: NewBody(id, name, position, physics.Vector2D{}, mass, radius, color, trailCap),
		Thruster: Thruster{
			Heading: -math.Pi / 2,
			Power:   thrustPower,
			Fuel:    fuel,
			MaxFuel: fuel,
		},
	}
}

// Rotate turns the ship by RotationRate * direction * deltaTime.
// Positive direction is counter-clockwise. A zero direction is a no-op,
// and rotation works with an empty tank.
func (s *Ship) Rotate(direction, deltaTime float64) {
	s.Thruster.Heading += RotationRate * direction * deltaTime
}

// Update applies both thrust modes to the ship's velocity, then
// integrates. The engine has already set this frame's gravitational
// acceleration, so thrust and gravity both act on the same step.
func (s *Ship) Update(deltaTime float64) {
	s.applyDirectionalThrust(deltaTime)
	s.applyOrientedThrust(deltaTime)
	s.Body.Integrate(deltaTime)
}

// applyOrientedThrust accelerates along (forward) or against (backward)
// the heading. Simultaneous forward and backward intent cancels out.
// Fuel burns at |acceleration| per second and never goes negative.
func (s *Ship) applyOrientedThrust(deltaTime float64) {
	if s.Thruster.Fuel <= 0 {
		return
	}

	direction := 0.0
	if s.Thruster.Forward {
		direction++
	}
	if s.Thruster.Backward {
		direction--
	}
	if direction == 0 {
		return
	}

	accel := (s.Thruster.Power / s.Mass) * direction
	s.Velocity = s.Velocity.Add(physics.FromAngle(s.Thruster.Heading, accel).Scale(deltaTime))
	s.Thruster.Fuel = math.Max(0, s.Thruster.Fuel-math.Abs(accel)*deltaTime)
}

// applyDirectionalThrust accelerates along the screen axes from the
// strafe flags, collapsed to a direction in {-1,0,1}². A single-axis
// press burns fuel at half the oriented rate; a diagonal burns the full
// amount.
func (s *Ship) applyDirectionalThrust(deltaTime float64) {
	if s.Thruster.Fuel <= 0 {
		return
	}

	dx, dy := 0.0, 0.0
	if s.Thruster.StrafeLeft {
		dx--
	}
	if s.Thruster.StrafeRight {
		dx++
	}
	if s.Thruster.StrafeUp {
		dy--
	}
	if s.Thruster.StrafeDown {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}

	accel := s.Thruster.Power / s.Mass
	s.Velocity = s.Velocity.Add(physics.Vector2D{X: accel * dx, Y: accel * dy}.Scale(deltaTime))
	s.Thruster.Fuel = math.Max(0, s.Thruster.Fuel-accel*deltaTime*(math.Abs(dx)+math.Abs(dy))/2)
}
