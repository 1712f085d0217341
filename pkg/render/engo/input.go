// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// InputSystem translates keyboard and mouse state into engine intent.
// The engine only ever sees the distilled ShipInput, restart/advance
// requests and spawn coordinates.
type InputSystem struct {
	game   *engine.Game
	camera *CameraSystem
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game, camera *CameraSystem) *InputSystem {
	return &InputSystem{
		game:   game,
		camera: camera,
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update reads the current input state and forwards intent to the game
func (is *InputSystem) Update(dt float32) {
	is.handleLevelControls()
	is.handleShipInput()
	is.handleSpawnInput()
}

// handleShipInput collapses held keys into the per-frame ship intent
func (is *InputSystem) handleShipInput() {
	input := engine.ShipInput{
		Forward:     engo.Input.Button("thrustForward").Down(),
		Backward:    engo.Input.Button("thrustBackward").Down(),
		StrafeLeft:  engo.Input.Button("strafeLeft").Down(),
		StrafeRight: engo.Input.Button("strafeRight").Down(),
		StrafeUp:    engo.Input.Button("strafeUp").Down(),
		StrafeDown:  engo.Input.Button("strafeDown").Down(),
	}

	// Rotation is continuous while a key is held; both held cancels.
	if engo.Input.Button("rotateLeft").Down() {
		input.RotateDirection++
	}
	if engo.Input.Button("rotateRight").Down() {
		input.RotateDirection--
	}

	is.game.SetInput(input)
}

// handleLevelControls processes restart and level advance keys
func (is *InputSystem) handleLevelControls() {
	if engo.Input.Button("restart").JustPressed() {
		_ = is.game.Restart()
	}
	if engo.Input.Button("nextLevel").JustPressed() {
		_ = is.game.AdvanceLevel()
	}
}

// handleSpawnInput spawns a body at the clicked world position. Left
// click spawns the small preset, right click the giant.
func (is *InputSystem) handleSpawnInput() {
	if engo.Input.Mouse.Action != engo.Press {
		return
	}

	var preset string
	switch engo.Input.Mouse.Button {
	case engo.MouseButtonLeft:
		preset = "planet"
	case engo.MouseButtonRight:
		preset = "giant"
	default:
		return
	}

	worldPos := is.camera.ScreenToWorld(physics.Vector2D{
		X: float64(engo.Input.Mouse.X),
		Y: float64(engo.Input.Mouse.Y),
	})

	// Spawn errors (rate limit, out of bounds) are non-fatal.
	_ = is.game.SpawnBody(engine.SpawnRequest{
		X:      worldPos.X,
		Y:      worldPos.Y,
		Preset: preset,
	})
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	// Oriented thrust and rotation
	engo.Input.RegisterButton("thrustForward", engo.KeyArrowUp)
	engo.Input.RegisterButton("thrustBackward", engo.KeyArrowDown)
	engo.Input.RegisterButton("rotateLeft", engo.KeyArrowLeft)
	engo.Input.RegisterButton("rotateRight", engo.KeyArrowRight)

	// Screen-aligned strafe thrust
	engo.Input.RegisterButton("strafeLeft", engo.KeyA)
	engo.Input.RegisterButton("strafeRight", engo.KeyD)
	engo.Input.RegisterButton("strafeUp", engo.KeyW)
	engo.Input.RegisterButton("strafeDown", engo.KeyS)

	// Level control
	engo.Input.RegisterButton("restart", engo.KeyR)
	engo.Input.RegisterButton("nextLevel", engo.KeyN)
	engo.Input.RegisterButton("quit", engo.KeyEscape)
}
