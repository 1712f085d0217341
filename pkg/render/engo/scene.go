// pkg/render/engo/scene.go
package engo

import (
	"log"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
)

// GameScene drives a local game session inside the Engo run loop: one
// engine update per rendered frame, then a snapshot for drawing.
type GameScene struct {
	world *ecs.World

	game *engine.Game

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a new game scene around a game session
func NewGameScene(game *engine.Game) *GameScene {
	return &GameScene{
		game:  game,
		world: &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// hudFontPath is resolved against the Engo asset root. HUD text stays
// disabled when the file is absent; everything else renders without it.
const hudFontPath = "fonts/hud.ttf"

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// Sprites are generated procedurally; only the HUD font is a file.
	if err := engo.Files.Load(hudFontPath); err != nil {
		log.Printf("hud font unavailable, text overlay disabled: %v", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	scene.world.AddSystem(&common.RenderSystem{})
	scene.world.AddSystem(&common.MouseSystem{})

	SetupInputBindings()

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	scene.camera = NewCameraSystem()
	scene.world.AddSystem(scene.camera)

	scene.input = NewInputSystem(scene.game, scene.camera)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem()
	scene.world.AddSystem(scene.hud)
	if err := scene.hud.LoadFont(hudFontPath); err != nil {
		log.Printf("hud font unavailable, text overlay disabled: %v", err)
	}

	// The engine reuses nothing between level loads, so the render
	// entities must be rebuilt whenever a level starts.
	scene.game.EventBus.Subscribe(event.LevelStarted, func(e event.Event) {
		scene.renderer.Reset()
	})

	scene.world.AddSystem(&gameSystem{scene: scene})

	scene.game.Start()
}

// gameSystem steps the simulation once per Engo frame and pushes the
// resulting snapshot to the renderer and HUD.
type gameSystem struct {
	scene *GameScene
}

// New satisfies the ecs.Initializer interface
func (gs *gameSystem) New(world *ecs.World) {}

// Remove satisfies the ecs.System interface
func (gs *gameSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the game and draws the new state
func (gs *gameSystem) Update(dt float32) {
	scene := gs.scene

	if engo.Input.Button("quit").JustPressed() {
		scene.game.Stop()
		engo.Exit()
		return
	}

	scene.game.Update()

	state := scene.game.Snapshot()
	scene.renderer.RenderState(state)
	scene.hud.SetState(state)
	scene.camera.SetTarget(state.Ship.Position)
}
