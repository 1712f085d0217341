// pkg/entity/ship_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

func newTestShip() *Ship {
	// Power 350, mass 50: thrust acceleration of 7 px/s².
	return NewShip(1, "ship", physics.Vector2D{}, 50, 10, "#ff6347", 350, 1200, 10)
}

func TestShipForwardThrust(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Forward = true

	// 10 steps of 0.1 seconds = 1 second of burn.
	for i := 0; i < 10; i++ {
		ship.Update(0.1)
	}

	wantSpeed := 350.0 / 50.0
	if !almostEqual(ship.Speed(), wantSpeed) {
		t.Errorf("Speed() = %v, want %v", ship.Speed(), wantSpeed)
	}
	// Default heading points up (-Y).
	if !almostEqual(ship.Velocity.Y, -wantSpeed) || !almostEqual(ship.Velocity.X, 0) {
		t.Errorf("Velocity = %+v, want along -Y", ship.Velocity)
	}
	wantFuel := 1200.0 - wantSpeed
	if !almostEqual(ship.Thruster.Fuel, wantFuel) {
		t.Errorf("Fuel = %v, want %v", ship.Thruster.Fuel, wantFuel)
	}
}

func TestShipBackwardThrust(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Backward = true

	ship.Update(1.0)

	if ship.Velocity.Y <= 0 {
		t.Errorf("backward thrust should push along +Y, got %+v", ship.Velocity)
	}
	if ship.Thruster.Fuel >= ship.Thruster.MaxFuel {
		t.Error("backward thrust should burn fuel")
	}
}

func TestShipOpposedThrustCancels(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Forward = true
	ship.Thruster.Backward = true

	ship.Update(1.0)

	if ship.Speed() != 0 {
		t.Errorf("opposed thrust should cancel, got speed %v", ship.Speed())
	}
	if ship.Thruster.Fuel != ship.Thruster.MaxFuel {
		t.Errorf("cancelled thrust should burn no fuel, fuel = %v", ship.Thruster.Fuel)
	}
}

func TestShipThrustWithEmptyTank(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Fuel = 0
	ship.Thruster.Forward = true
	ship.Thruster.StrafeLeft = true

	ship.Update(1.0)

	if ship.Speed() != 0 {
		t.Errorf("empty tank should produce no thrust, got speed %v", ship.Speed())
	}
	if ship.Thruster.Fuel != 0 {
		t.Errorf("Fuel = %v, want 0", ship.Thruster.Fuel)
	}
}

func TestShipFuelNeverNegative(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Fuel = 0.001
	ship.Thruster.Forward = true

	ship.Update(1.0)

	if ship.Thruster.Fuel < 0 {
		t.Errorf("Fuel = %v, must not go negative", ship.Thruster.Fuel)
	}
}

func TestShipDirectionalThrust(t *testing.T) {
	tests := []struct {
		name     string
		set      func(*Ship)
		wantDirX float64
		wantDirY float64
		// Fuel burned per unit of acceleration-time: a single axis burns
		// half, a diagonal burns the full rate.
		wantBurnFactor float64
	}{
		{"left", func(s *Ship) { s.Thruster.StrafeLeft = true }, -1, 0, 0.5},
		{"right", func(s *Ship) { s.Thruster.StrafeRight = true }, 1, 0, 0.5},
		{"up", func(s *Ship) { s.Thruster.StrafeUp = true }, 0, -1, 0.5},
		{"down", func(s *Ship) { s.Thruster.StrafeDown = true }, 0, 1, 0.5},
		{"diagonal", func(s *Ship) { s.Thruster.StrafeRight, s.Thruster.StrafeDown = true, true }, 1, 1, 1.0},
		{"opposed axes cancel", func(s *Ship) { s.Thruster.StrafeLeft, s.Thruster.StrafeRight = true, true }, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := newTestShip()
			tt.set(ship)

			ship.Update(1.0)

			accel := 350.0 / 50.0
			if !almostEqual(ship.Velocity.X, accel*tt.wantDirX) {
				t.Errorf("Velocity.X = %v, want %v", ship.Velocity.X, accel*tt.wantDirX)
			}
			if !almostEqual(ship.Velocity.Y, accel*tt.wantDirY) {
				t.Errorf("Velocity.Y = %v, want %v", ship.Velocity.Y, accel*tt.wantDirY)
			}
			wantFuel := 1200.0 - accel*tt.wantBurnFactor
			if !almostEqual(ship.Thruster.Fuel, wantFuel) {
				t.Errorf("Fuel = %v, want %v", ship.Thruster.Fuel, wantFuel)
			}
		})
	}
}

func TestShipRotate(t *testing.T) {
	ship := newTestShip()
	start := ship.Thruster.Heading

	ship.Rotate(1, 0.25)

	want := start + RotationRate*0.25
	if !almostEqual(ship.Thruster.Heading, want) {
		t.Errorf("Heading = %v, want %v", ship.Thruster.Heading, want)
	}

	ship.Rotate(-1, 0.25)
	if !almostEqual(ship.Thruster.Heading, start) {
		t.Errorf("Heading = %v, want back at %v", ship.Thruster.Heading, start)
	}
}

func TestShipRotateZeroDirection(t *testing.T) {
	ship := newTestShip()
	start := ship.Thruster.Heading
	ship.Rotate(0, 1.0)
	if ship.Thruster.Heading != start {
		t.Errorf("zero direction changed heading to %v", ship.Thruster.Heading)
	}
}

func TestShipRotateWithEmptyTank(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Fuel = 0
	start := ship.Thruster.Heading

	ship.Rotate(1, 0.5)

	if ship.Thruster.Heading == start {
		t.Error("rotation should work with an empty tank")
	}
}

func TestShipThrustFollowsHeading(t *testing.T) {
	ship := newTestShip()
	ship.Thruster.Heading = 0 // facing +X
	ship.Thruster.Forward = true

	ship.Update(1.0)

	if !almostEqual(ship.Velocity.X, 7) || math.Abs(ship.Velocity.Y) > 1e-9 {
		t.Errorf("Velocity = %+v, want along +X", ship.Velocity)
	}
}
