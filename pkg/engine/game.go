// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/level"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/resource"
	"github.com/opd-ai/go-orbit/pkg/validation"
)

// GameStatus describes the current phase of a level attempt
type GameStatus int

const (
	GameStatusPlaying GameStatus = iota
	GameStatusGameOver
	GameStatusComplete
)

// ShipInput is the per-frame player intent consumed by the engine.
// The engine never sees raw input events, only this distilled state.
type ShipInput struct {
	RotateDirection float64 // +1 counter-clockwise, -1 clockwise, 0 none
	Forward         bool
	Backward        bool
	StrafeLeft      bool
	StrafeRight     bool
	StrafeUp        bool
	StrafeDown      bool
}

// SpawnRequest asks the engine to add a body at a world coordinate
// using a named preset.
type SpawnRequest struct {
	X      float64
	Y      float64
	Preset string
}

// Game represents the running simulation: one level's bodies, the
// player ship and the target zone, advanced frame by frame.
type Game struct {
	Config *config.GameConfig

	Bodies []*entity.Body // gravitating set, stable order
	Ship   *entity.Ship
	Target *entity.Body

	LevelIndex    int
	LevelName     string
	Status        GameStatus
	StatusMessage string
	Score         int

	Running     bool
	CurrentTick uint64
	LastUpdate  time.Time

	EventBus     *event.Bus
	SpatialIndex *physics.QuadTree

	EntityLock sync.RWMutex

	solver        *physics.GravitySolver
	factory       *level.Factory
	spawnLimiter  *validation.RateLimiter
	input         ShipInput
	maxBodyRadius float64
	fuelWasEmpty  bool

	// Resource management
	ResourceManager *resource.ResourceManager
}

// NewGame creates a game session from the given configuration and loads
// the first level.
func NewGame(cfg *config.GameConfig) (*Game, error) {
	factory, err := level.NewFactory(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid level configuration: %w", err)
	}

	spawnsPerMinute := cfg.GameRules.SpawnsPerMinute
	if spawnsPerMinute <= 0 {
		spawnsPerMinute = 30
	}

	g := &Game{
		Config:       cfg,
		EventBus:     event.NewEventBus(),
		LastUpdate:   time.Now(),
		solver:       physics.NewGravitySolver(cfg.PhysicsConfig.Gravity, cfg.PhysicsConfig.SofteningEpsilon),
		factory:      factory,
		spawnLimiter: validation.NewRateLimiter(spawnsPerMinute, time.Minute),
	}

	if err := g.loadLevel(0); err != nil {
		return nil, err
	}

	return g, nil
}

// InitializeResourceManager initializes the resource manager with
// environment configuration. Called separately so tests can run a game
// without the monitoring loop.
func (g *Game) InitializeResourceManager() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		// Use safe defaults if environment config fails
		envConfig = &config.EnvironmentConfig{
			MaxMemoryMB:           500,
			MaxGoroutines:         100,
			ShutdownTimeout:       30 * time.Second,
			ResourceCheckInterval: 10 * time.Second,
		}
	}
	g.ResourceManager = resource.NewResourceManager(envConfig)
	return g.ResourceManager.Start()
}

// loadLevel replaces the simulation state with a fresh build of the
// level at index. Caller handles locking where needed.
func (g *Game) loadLevel(index int) error {
	setup, err := g.factory.Build(index)
	if err != nil {
		return err
	}

	g.Bodies = setup.Bodies
	g.Ship = setup.Ship
	g.Target = setup.Target
	g.LevelIndex = index
	g.LevelName = setup.Name
	g.Status = GameStatusPlaying
	g.StatusMessage = ""
	g.input = ShipInput{}
	g.fuelWasEmpty = false

	g.maxBodyRadius = 0
	for _, b := range g.Bodies {
		if b.Radius > g.maxBodyRadius {
			g.maxBodyRadius = b.Radius
		}
	}

	g.initSpatialIndex()

	g.EventBus.Publish(event.NewLevelEvent(event.LevelStarted, g, index, setup.Name, g.Score))
	return nil
}

// initSpatialIndex creates the collision broadphase for the world.
func (g *Game) initSpatialIndex() {
	g.SpatialIndex = physics.NewQuadTree(
		physics.Rect{
			Center: physics.Vector2D{X: g.Config.WorldWidth / 2, Y: g.Config.WorldHeight / 2},
			Width:  g.Config.WorldWidth * 2,
			Height: g.Config.WorldHeight * 2,
		},
		10, // max bodies per quad before subdivision
	)
}

// Start begins the game session
func (g *Game) Start() {
	g.Running = true
	g.LastUpdate = time.Now()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// Stop ends the game session
func (g *Game) Stop() {
	g.Running = false
	g.spawnLimiter.Close()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}

// SetInput replaces the player intent used by subsequent updates.
func (g *Game) SetInput(input ShipInput) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()
	g.input = input
}

// SpawnBody validates a spawn request and, if allowed, adds a new body
// to the gravitating set. Spawns are rate limited.
func (g *Game) SpawnBody(req SpawnRequest) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if g.Status != GameStatusPlaying {
		return fmt.Errorf("cannot spawn while level is not active")
	}

	if err := validation.ValidateSpawnPosition(req.X, req.Y, g.Config.WorldWidth, g.Config.WorldHeight); err != nil {
		return err
	}

	preset, ok := g.factory.SpawnPreset(req.Preset)
	if !ok {
		return fmt.Errorf("unknown spawn preset %q", req.Preset)
	}

	if !g.spawnLimiter.Allow("player") {
		return fmt.Errorf("spawn rate limit exceeded")
	}

	body := entity.NewBody(
		entity.GenerateID(),
		preset.Name,
		physics.Vector2D{X: req.X, Y: req.Y},
		physics.Vector2D{},
		preset.Mass,
		preset.Radius,
		preset.Color,
		g.Config.PhysicsConfig.TrailLength,
	)
	g.Bodies = append(g.Bodies, body)
	if body.Radius > g.maxBodyRadius {
		g.maxBodyRadius = body.Radius
	}

	g.EventBus.Publish(event.NewSpawnEvent(g, uint64(body.ID), preset.Name))
	return nil
}

// Restart rebuilds the current level from scratch.
func (g *Game) Restart() error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()
	return g.loadLevel(g.LevelIndex)
}

// AdvanceLevel moves to the next configured level, wrapping around
// after the last one.
func (g *Game) AdvanceLevel() error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()
	return g.loadLevel((g.LevelIndex + 1) % g.factory.Count())
}

// Update advances the simulation by the actual elapsed wall-clock time
// since the previous update, capped to avoid physics blowups after a
// stall.
func (g *Game) Update() {
	deltaTime := g.calculateDeltaTime()

	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if g.Status != GameStatusPlaying {
		return
	}

	g.step(deltaTime)
	g.CurrentTick++
}

// calculateDeltaTime calculates the time since the last update and caps it.
func (g *Game) calculateDeltaTime() float64 {
	now := time.Now()
	deltaTime := now.Sub(g.LastUpdate).Seconds()
	g.LastUpdate = now

	maxDelta := g.Config.PhysicsConfig.MaxDeltaTime
	if maxDelta <= 0 {
		maxDelta = 0.1
	}
	if deltaTime > maxDelta {
		deltaTime = maxDelta
	}
	return deltaTime
}

// Step advances the simulation by an explicit time delta. Useful for
// headless runs and tests that need a known dt.
func (g *Game) Step(deltaTime float64) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if g.Status != GameStatusPlaying {
		return
	}

	g.step(deltaTime)
	g.CurrentTick++
}

// step runs one frame: rotation and intent transfer, gravity solve for
// every object from the same pre-step snapshot, integration for every
// object, then collision checks. Gravity must finish for all objects
// before any of them moves; integrating early would break the pairwise
// symmetry of the solve.
func (g *Game) step(deltaTime float64) {
	// Transfer player intent to the ship.
	if g.input.RotateDirection != 0 {
		g.Ship.Rotate(g.input.RotateDirection, deltaTime)
	}
	g.Ship.Thruster.Forward = g.input.Forward
	g.Ship.Thruster.Backward = g.input.Backward
	g.Ship.Thruster.StrafeLeft = g.input.StrafeLeft
	g.Ship.Thruster.StrafeRight = g.input.StrafeRight
	g.Ship.Thruster.StrafeUp = g.input.StrafeUp
	g.Ship.Thruster.StrafeDown = g.input.StrafeDown

	// Gravity solve for all objects against a shared snapshot.
	attractors := make([]physics.Attractor, 0, len(g.Bodies)+1)
	for _, b := range g.Bodies {
		attractors = append(attractors, b.Attractor())
	}
	attractors = append(attractors, g.Ship.Attractor())

	for _, b := range g.Bodies {
		b.Acceleration = g.solver.AccelerationAt(b.Position, attractors)
	}
	g.Ship.Acceleration = g.solver.AccelerationAt(g.Ship.Position, attractors)

	// Integrate everything, ship last (thrust plus gravity).
	for _, b := range g.Bodies {
		b.Integrate(deltaTime)
	}
	g.Ship.Update(deltaTime)

	if g.Ship.Thruster.Fuel == 0 && !g.fuelWasEmpty {
		g.fuelWasEmpty = true
		g.EventBus.Publish(&event.BaseEvent{
			EventType: event.FuelExhausted,
			Source:    g.Ship,
		})
	}

	g.checkCollisions()
}

// checkCollisions runs hazard detection (ship vs any gravitating body)
// and goal detection (ship vs target under the speed limit). Bodies the
// index rejected are tested directly so slingshotted objects stay
// lethal wherever the ship follows them.
func (g *Game) checkCollisions() {
	outside := g.populateSpatialIndex()

	shipCollider := g.Ship.Collider()
	reach := (g.Ship.Radius + g.maxBodyRadius) * 2
	area := physics.Rect{
		Center: g.Ship.Position,
		Width:  reach * 2,
		Height: reach * 2,
	}

	candidates := g.SpatialIndex.Query(area)
	byID := make(map[uint64]*entity.Body, len(g.Bodies))
	for _, b := range g.Bodies {
		byID[uint64(b.ID)] = b
	}

	hazards := make([]*entity.Body, 0, len(candidates)+len(outside))
	for _, id := range candidates {
		if body, ok := byID[id]; ok {
			hazards = append(hazards, body)
		}
	}
	hazards = append(hazards, outside...)

	for _, body := range hazards {
		if shipCollider.Collides(body.Collider()) {
			g.Status = GameStatusGameOver
			g.StatusMessage = "Game Over! Press R to Restart"
			g.EventBus.Publish(event.NewCollisionEvent(g, uint64(g.Ship.ID), uint64(body.ID)))
			return
		}
	}

	// A fast flyby through the target does not count; the ship must
	// arrive below the configured speed limit.
	if shipCollider.Collides(g.Target.Collider()) {
		if g.Ship.Speed() < g.Config.GameRules.TargetSpeedLimit {
			g.Status = GameStatusComplete
			g.StatusMessage = "Level Complete! Press N for Next Level"
			g.Score += int(g.Ship.Thruster.Fuel)
			g.EventBus.Publish(event.NewLevelEvent(event.LevelCompleted, g, g.LevelIndex, g.LevelName, g.Score))
		}
	}
}

// populateSpatialIndex rebuilds the broadphase from current body
// positions and returns the bodies the index rejected. Gravity ejects
// bodies past the fixed boundary; those must still be collision tested.
func (g *Game) populateSpatialIndex() []*entity.Body {
	g.initSpatialIndex()
	var outside []*entity.Body
	for _, b := range g.Bodies {
		if !g.SpatialIndex.Insert(b.Position, uint64(b.ID)) {
			outside = append(outside, b)
		}
	}
	return outside
}

// Run drives the update loop at the configured frame rate until the
// context is cancelled. Physics uses actual elapsed time per tick, so
// the rate limit bounds CPU use without fixing the step size.
func (g *Game) Run(ctx context.Context) {
	rate := g.Config.GameRules.FrameRate
	if rate <= 0 {
		rate = 60
	}

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !g.Running {
				return
			}
			g.Update()
		}
	}
}
