// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// GameState is a read-only snapshot of the simulation handed to
// renderers. Renderers never touch live entities.
type GameState struct {
	Tick          uint64
	LevelIndex    int
	LevelName     string
	Status        GameStatus
	StatusMessage string
	Score         int
	Ship          ShipState
	Bodies        []BodyState
	Target        BodyState
}

// BodyState is a snapshot of one body's renderable state
type BodyState struct {
	ID       entity.ID
	Name     string
	Position physics.Vector2D
	Velocity physics.Vector2D
	Mass     float64
	Radius   float64
	Color    string
	Trail    []physics.Vector2D
}

// ShipState is a snapshot of the ship's renderable state
type ShipState struct {
	BodyState
	Heading float64
	Fuel    float64
	MaxFuel float64
	Speed   float64
}

// Snapshot captures the current game state for rendering and HUD use.
func (g *Game) Snapshot() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	state := &GameState{
		Tick:          g.CurrentTick,
		LevelIndex:    g.LevelIndex,
		LevelName:     g.LevelName,
		Status:        g.Status,
		StatusMessage: g.StatusMessage,
		Score:         g.Score,
		Ship:          snapshotShip(g.Ship),
		Bodies:        make([]BodyState, 0, len(g.Bodies)),
		Target:        snapshotBody(g.Target),
	}

	for _, b := range g.Bodies {
		state.Bodies = append(state.Bodies, snapshotBody(b))
	}

	return state
}

func snapshotBody(b *entity.Body) BodyState {
	return BodyState{
		ID:       b.ID,
		Name:     b.Name,
		Position: b.Position,
		Velocity: b.Velocity,
		Mass:     b.Mass,
		Radius:   b.Radius,
		Color:    b.Color,
		Trail:    b.Trail.Points(),
	}
}

func snapshotShip(s *entity.Ship) ShipState {
	return ShipState{
		BodyState: snapshotBody(s.Body),
		Heading:   s.Thruster.Heading,
		Fuel:      s.Thruster.Fuel,
		MaxFuel:   s.Thruster.MaxFuel,
		Speed:     s.Speed(),
	}
}
