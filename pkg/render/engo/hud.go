// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
)

// HUDSystem draws the heads-up display: speed, fuel, level, score and
// the status message when the level is over. Text entities are rebuilt
// from the latest snapshot every frame.
type HUDSystem struct {
	renderSystem *common.RenderSystem
	hudEntities  []*renderedObject

	state *engine.GameState

	font *common.Font

	hudColor     color.Color
	warningColor color.Color
	messageColor color.Color
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{
		hudColor:     color.RGBA{220, 220, 220, 255},
		warningColor: color.RGBA{255, 80, 80, 255},
		messageColor: color.RGBA{255, 255, 255, 255},
	}
}

// New finds the world's render system (ecs.Initializer)
func (hud *HUDSystem) New(world *ecs.World) {
	for _, system := range world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			hud.renderSystem = rs
		}
	}
}

// SetState gives the HUD the latest game snapshot to draw from
func (hud *HUDSystem) SetState(state *engine.GameState) {
	hud.state = state
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update redraws the HUD from the latest snapshot
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()

	if hud.state == nil {
		return
	}

	hud.renderShipStatus()
	hud.renderLevelStatus()
	hud.renderStatusMessage()
}

// clearHUDEntities removes the previous frame's HUD entities
func (hud *HUDSystem) clearHUDEntities() {
	if hud.renderSystem != nil {
		for _, obj := range hud.hudEntities {
			hud.renderSystem.Remove(obj.basic)
		}
	}
	hud.hudEntities = hud.hudEntities[:0]
}

// renderShipStatus renders speed and fuel at the top-left corner
func (hud *HUDSystem) renderShipStatus() {
	ship := hud.state.Ship

	fuelColor := hud.hudColor
	if ship.Fuel <= 0 {
		fuelColor = hud.warningColor
	}

	hud.renderText(fmt.Sprintf("Speed: %5.1f px/s", ship.Speed), 10, 10, hud.hudColor)
	hud.renderText(fmt.Sprintf("Fuel:  %5.0f", ship.Fuel), 10, 30, fuelColor)
}

// renderLevelStatus renders level number, name and score
func (hud *HUDSystem) renderLevelStatus() {
	text := fmt.Sprintf("Level %d: %s  Score: %d",
		hud.state.LevelIndex+1,
		hud.state.LevelName,
		hud.state.Score,
	)
	hud.renderText(text, 10, 50, hud.hudColor)
}

// renderStatusMessage renders the end-of-level message centered at the top
func (hud *HUDSystem) renderStatusMessage() {
	if hud.state.StatusMessage == "" {
		return
	}

	x := float32(engo.GameWidth())/2 - float32(len(hud.state.StatusMessage)*4)
	hud.renderText(hud.state.StatusMessage, x, 40, hud.messageColor)
}

// renderText creates a text entity at a screen position. A no-op until
// a font has been loaded.
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	if hud.font == nil || hud.renderSystem == nil {
		return
	}

	obj := &renderedObject{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Text{
				Font: hud.font,
				Text: text,
			},
			Color: textColor,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
			Width:    float32(len(text) * 8),
			Height:   16,
		},
	}
	obj.render.SetShader(common.HUDShader)

	hud.renderSystem.Add(&obj.basic, &obj.render, &obj.space)
	hud.hudEntities = append(hud.hudEntities, obj)
}

// LoadFont loads the HUD font from a preloaded asset. Must run after
// the file was loaded in the scene's preload phase.
func (hud *HUDSystem) LoadFont(url string) error {
	font := &common.Font{
		URL:  url,
		FG:   hud.hudColor,
		Size: 14,
	}
	if err := font.CreatePreloaded(); err != nil {
		return err
	}
	hud.font = font
	return nil
}
