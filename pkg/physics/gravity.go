// pkg/physics/gravity.go
package physics

// Attractor is a point mass snapshot used as a gravity source.
// The solver works on snapshots so that every object in a frame is
// accelerated from the same pre-step positions.
type Attractor struct {
	Position Vector2D
	Mass     float64
}

// GravitySolver computes Newtonian point-mass attraction. G is a
// gameplay-tuned constant, not the physical value; Epsilon is the
// minimum center distance below which a pair contributes nothing,
// which keeps coincident bodies from dividing by zero.
type GravitySolver struct {
	G       float64
	Epsilon float64
}

// NewGravitySolver creates a solver with the given gravitational
// constant and softening distance.
func NewGravitySolver(g, epsilon float64) *GravitySolver {
	return &GravitySolver{G: g, Epsilon: epsilon}
}

// AccelerationAt returns the acceleration a body at pos experiences from
// all sources: the vector sum of G * mass / distance² toward each source.
// A source at pos itself (the body's own snapshot) is skipped, as is any
// source closer than Epsilon or with zero mass.
func (s *GravitySolver) AccelerationAt(pos Vector2D, sources []Attractor) Vector2D {
	var accel Vector2D

	for _, src := range sources {
		if src.Mass == 0 {
			continue
		}

		offset := src.Position.Sub(pos)
		distSq := offset.LengthSquared()
		if distSq < s.Epsilon*s.Epsilon {
			// Coincident or overlapping pair: treated as zero, not an error.
			continue
		}

		magnitude := s.G * src.Mass / distSq
		accel = accel.Add(offset.Normalize().Scale(magnitude))
	}

	return accel
}
