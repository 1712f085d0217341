// pkg/render/terminal.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// TerminalRenderer provides a simple ASCII rendering for terminals.
// One world cell covers scale pixels.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
	hudLines  []string
}

// NewTerminalRenderer creates a new terminal renderer with the specified dimensions
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.hudLines = r.hudLines[:0]
}

// RenderBody implements Renderer
func (r *TerminalRenderer) RenderBody(body engine.BodyState) {
	for _, p := range body.Trail {
		r.plot(p, '.')
	}
	// Big bodies get a heavier glyph.
	glyph := 'o'
	if body.Radius >= 20 {
		glyph = 'O'
	}
	r.plot(body.Position, glyph)
}

// RenderTarget implements Renderer
func (r *TerminalRenderer) RenderTarget(target engine.BodyState) {
	r.plot(target.Position, 'X')
}

// RenderShip implements Renderer
func (r *TerminalRenderer) RenderShip(ship engine.ShipState) {
	for _, p := range ship.Trail {
		r.plot(p, '.')
	}
	r.plot(ship.Position, headingGlyph(ship.Heading))
}

// headingGlyph picks an arrow for the nearest screen axis. Screen Y
// grows downward, so -π/2 points up.
func headingGlyph(heading float64) rune {
	quarter := math.Round(heading / (math.Pi / 2))
	switch ((int(quarter) % 4) + 4) % 4 {
	case 0:
		return '>'
	case 1:
		return 'v'
	case 2:
		return '<'
	default:
		return '^'
	}
}

// RenderHUD implements Renderer
func (r *TerminalRenderer) RenderHUD(state *engine.GameState) {
	r.hudLines = append(r.hudLines,
		fmt.Sprintf("Level %d: %s  Score: %d", state.LevelIndex+1, state.LevelName, state.Score),
		fmt.Sprintf("Speed: %5.1f px/s  Fuel: %5.0f", state.Ship.Speed, state.Ship.Fuel),
	)
	if state.StatusMessage != "" {
		r.hudLines = append(r.hudLines, state.StatusMessage)
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Print("|")
		for x := range r.buffer[y] {
			fmt.Print(string(r.buffer[y][x]))
		}
		fmt.Println("|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")

	for _, line := range r.hudLines {
		fmt.Println(line)
	}
}

// Glyph returns the rune at a screen cell, for tests and debugging.
func (r *TerminalRenderer) Glyph(x, y int) rune {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0
	}
	return r.buffer[y][x]
}
