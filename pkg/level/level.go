// pkg/level/level.go
package level

import (
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/validation"
)

// Setup is one freshly built level: gravitating bodies, the player ship
// and the target zone. Every Build call returns new objects, so a
// running session may mutate them freely without affecting later
// restarts.
type Setup struct {
	Name   string
	Bodies []*entity.Body
	Ship   *entity.Ship
	Target *entity.Body
}

// Factory builds level setups from configuration.
type Factory struct {
	config *config.GameConfig
}

// NewFactory validates every configured level once and returns a
// factory for them.
func NewFactory(cfg *config.GameConfig) (*Factory, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("no levels configured")
	}

	for i, lvl := range cfg.Levels {
		if _, err := validation.ValidateLevelName(lvl.Name); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		if len(lvl.Bodies) > validation.MaxBodiesPerLevel {
			return nil, fmt.Errorf("level %d: too many bodies: %d (max %d)", i, len(lvl.Bodies), validation.MaxBodiesPerLevel)
		}
		for _, b := range lvl.Bodies {
			if err := validation.ValidateBody(b.Mass, b.Radius); err != nil {
				return nil, fmt.Errorf("level %d body %q: %w", i, b.Name, err)
			}
			if err := validation.ValidateColor(b.Color); err != nil {
				return nil, fmt.Errorf("level %d body %q: %w", i, b.Name, err)
			}
		}
		if err := validation.ValidateBody(0, lvl.Target.Radius); err != nil {
			return nil, fmt.Errorf("level %d target: %w", i, err)
		}
		if err := validation.ValidateColor(lvl.Target.Color); err != nil {
			return nil, fmt.Errorf("level %d target: %w", i, err)
		}
	}

	if err := validation.ValidateBody(cfg.ShipConfig.Mass, cfg.ShipConfig.Radius); err != nil {
		return nil, fmt.Errorf("ship: %w", err)
	}
	if cfg.ShipConfig.Mass == 0 {
		return nil, fmt.Errorf("ship mass must be positive")
	}
	if err := validation.ValidateColor(cfg.ShipConfig.Color); err != nil {
		return nil, fmt.Errorf("ship: %w", err)
	}

	for _, p := range cfg.SpawnPresets {
		if p.Name == "" {
			return nil, fmt.Errorf("spawn preset with empty name")
		}
		if err := validation.ValidateBody(p.Mass, p.Radius); err != nil {
			return nil, fmt.Errorf("spawn preset %q: %w", p.Name, err)
		}
		if err := validation.ValidateColor(p.Color); err != nil {
			return nil, fmt.Errorf("spawn preset %q: %w", p.Name, err)
		}
	}

	return &Factory{config: cfg}, nil
}

// Count returns the number of configured levels.
func (f *Factory) Count() int {
	return len(f.config.Levels)
}

// Build constructs the level at the given index. The returned setup
// shares no mutable state with any previous Build result.
func (f *Factory) Build(index int) (*Setup, error) {
	if err := validation.ValidateLevelIndex(index, len(f.config.Levels)); err != nil {
		return nil, err
	}

	lvl := f.config.Levels[index]
	trailCap := f.config.PhysicsConfig.TrailLength

	bodies := make([]*entity.Body, 0, len(lvl.Bodies))
	for _, bc := range lvl.Bodies {
		bodies = append(bodies, entity.NewBody(
			entity.GenerateID(),
			bc.Name,
			physics.Vector2D{X: bc.X, Y: bc.Y},
			physics.Vector2D{X: bc.VX, Y: bc.VY},
			bc.Mass,
			bc.Radius,
			bc.Color,
			trailCap,
		))
	}

	// Target zones are massless so they attract nothing, but they still
	// collide with the ship.
	target := entity.NewBody(
		entity.GenerateID(),
		"Target",
		physics.Vector2D{X: lvl.Target.X, Y: lvl.Target.Y},
		physics.Vector2D{},
		0,
		lvl.Target.Radius,
		lvl.Target.Color,
		trailCap,
	)

	ship := entity.NewShip(
		entity.GenerateID(),
		"Ship",
		physics.Vector2D{X: lvl.Ship.X, Y: lvl.Ship.Y},
		f.config.ShipConfig.Mass,
		f.config.ShipConfig.Radius,
		f.config.ShipConfig.Color,
		f.config.ShipConfig.ThrustPower,
		f.config.ShipConfig.Fuel,
		trailCap,
	)

	return &Setup{
		Name:   lvl.Name,
		Bodies: bodies,
		Ship:   ship,
		Target: target,
	}, nil
}

// SpawnPreset looks up a click-to-spawn body template by name.
func (f *Factory) SpawnPreset(name string) (config.SpawnPreset, bool) {
	for _, p := range f.config.SpawnPresets {
		if p.Name == name {
			return p, true
		}
	}
	return config.SpawnPreset{}, false
}
