// pkg/physics/gravity_test.go
package physics

import (
	"math"
	"testing"
)

func TestAccelerationAtSingleSource(t *testing.T) {
	solver := NewGravitySolver(0.667, 1.0)
	sources := []Attractor{
		{Position: Vector2D{X: 100, Y: 0}, Mass: 1e4},
	}

	accel := solver.AccelerationAt(Vector2D{}, sources)

	// Magnitude is G * M / d², directed toward the source.
	wantMagnitude := 0.667 * 1e4 / (100.0 * 100.0)
	if !almostEqual(accel.Length(), wantMagnitude) {
		t.Errorf("acceleration magnitude = %v, want %v", accel.Length(), wantMagnitude)
	}
	if !almostEqual(accel.X, wantMagnitude) || !almostEqual(accel.Y, 0) {
		t.Errorf("acceleration = %+v, want toward +X", accel)
	}
}

func TestAccelerationAtSumsSources(t *testing.T) {
	solver := NewGravitySolver(1.0, 1.0)
	sources := []Attractor{
		{Position: Vector2D{X: 10, Y: 0}, Mass: 100},
		{Position: Vector2D{X: -10, Y: 0}, Mass: 100},
	}

	// Symmetric pull cancels exactly.
	accel := solver.AccelerationAt(Vector2D{}, sources)
	if !almostEqual(accel.X, 0) || !almostEqual(accel.Y, 0) {
		t.Errorf("symmetric sources should cancel, got %+v", accel)
	}
}

func TestAccelerationAtSkipsCoincident(t *testing.T) {
	solver := NewGravitySolver(0.667, 1.0)
	pos := Vector2D{X: 50, Y: 50}
	sources := []Attractor{
		{Position: pos, Mass: 1e6},
		{Position: Vector2D{X: 50, Y: 150}, Mass: 1e4},
	}

	accel := solver.AccelerationAt(pos, sources)

	if math.IsNaN(accel.X) || math.IsNaN(accel.Y) {
		t.Fatalf("coincident source produced NaN: %+v", accel)
	}
	// Only the distant source contributes.
	wantMagnitude := 0.667 * 1e4 / (100.0 * 100.0)
	if !almostEqual(accel.Length(), wantMagnitude) {
		t.Errorf("acceleration magnitude = %v, want %v", accel.Length(), wantMagnitude)
	}
}

func TestAccelerationAtSkipsWithinEpsilon(t *testing.T) {
	solver := NewGravitySolver(1.0, 5.0)
	sources := []Attractor{
		{Position: Vector2D{X: 4, Y: 0}, Mass: 1e6},
	}

	accel := solver.AccelerationAt(Vector2D{}, sources)
	if accel.X != 0 || accel.Y != 0 {
		t.Errorf("source inside epsilon should contribute nothing, got %+v", accel)
	}
}

func TestAccelerationAtIgnoresMasslessSources(t *testing.T) {
	solver := NewGravitySolver(1.0, 1.0)
	sources := []Attractor{
		{Position: Vector2D{X: 10, Y: 0}, Mass: 0},
	}

	accel := solver.AccelerationAt(Vector2D{}, sources)
	if accel.X != 0 || accel.Y != 0 {
		t.Errorf("massless source should contribute nothing, got %+v", accel)
	}
}

func TestAccelerationIndependentOfReceiverMass(t *testing.T) {
	// A massless body is still pulled: acceleration depends only on the
	// source. Receiver at (0,0), source mass M at (10,0) gives (G*M/100, 0).
	solver := NewGravitySolver(0.667, 1.0)
	sources := []Attractor{
		{Position: Vector2D{X: 10, Y: 0}, Mass: 300},
	}

	accel := solver.AccelerationAt(Vector2D{}, sources)

	want := 0.667 * 300 / 100
	if !almostEqual(accel.X, want) || !almostEqual(accel.Y, 0) {
		t.Errorf("acceleration = %+v, want (%v, 0)", accel, want)
	}
}

func TestAccelerationAtNoSources(t *testing.T) {
	solver := NewGravitySolver(0.667, 1.0)
	accel := solver.AccelerationAt(Vector2D{X: 1, Y: 2}, nil)
	if accel.X != 0 || accel.Y != 0 {
		t.Errorf("no sources should give zero acceleration, got %+v", accel)
	}
}
