// pkg/render/renderer.go
package render

import (
	"github.com/opd-ai/go-orbit/pkg/engine"
)

// Renderer draws game state snapshots. The simulation core never calls
// into a renderer; a frontend pulls snapshots and feeds them here.
type Renderer interface {
	Clear()
	RenderBody(body engine.BodyState)
	RenderTarget(target engine.BodyState)
	RenderShip(ship engine.ShipState)
	RenderHUD(state *engine.GameState)
	Present()
}

// Draw renders one full frame from a snapshot in back-to-front order:
// target zone, bodies with trails, ship, HUD.
func Draw(r Renderer, state *engine.GameState) {
	r.Clear()
	r.RenderTarget(state.Target)
	for _, body := range state.Bodies {
		r.RenderBody(body)
	}
	r.RenderShip(state.Ship)
	r.RenderHUD(state)
	r.Present()
}
