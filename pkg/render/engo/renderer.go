// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/entity"
)

// Trail samples are drawn every trailStride-th point so the entity
// count stays bounded even with long trails.
const trailStride = 5

// renderedObject bundles the ECS entity with its components so they can
// be updated in place each frame.
type renderedObject struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// EngoRenderer draws game state snapshots through the Engo render system
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	bodies    map[entity.ID]*renderedObject
	trailDots map[entity.ID][]*renderedObject
	ship      *renderedObject
	target    *renderedObject

	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:     world,
		bodies:    make(map[entity.ID]*renderedObject),
		trailDots: make(map[entity.ID][]*renderedObject),
		assets:    NewAssetManager(),
	}
}

// Initialize hooks the renderer into the world's render system.
func (r *EngoRenderer) Initialize() error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
		}
	}
	if r.renderSystem == nil {
		r.renderSystem = &common.RenderSystem{}
		r.world.AddSystem(r.renderSystem)
	}

	return r.assets.LoadAssets()
}

// RenderState draws one snapshot: target behind everything, then bodies
// and their trails, then the ship.
func (r *EngoRenderer) RenderState(state *engine.GameState) {
	r.renderTarget(state.Target)
	seen := make(map[entity.ID]bool, len(state.Bodies))
	for _, body := range state.Bodies {
		seen[body.ID] = true
		r.renderBody(body)
	}
	r.renderShip(state.Ship)
	r.removeStale(seen)
}

func (r *EngoRenderer) renderBody(body engine.BodyState) {
	obj, exists := r.bodies[body.ID]
	if !exists {
		size := float32(body.Radius * 2)
		obj = r.addObject(r.assets.GetCircleSprite(int(body.Radius)), size, size, ParseHexColor(body.Color))
		r.bodies[body.ID] = obj
	}

	obj.space.Position = engo.Point{
		X: float32(body.Position.X - body.Radius),
		Y: float32(body.Position.Y - body.Radius),
	}

	r.renderTrail(body.ID, body)
}

func (r *EngoRenderer) renderTrail(id entity.ID, body engine.BodyState) {
	dots := r.trailDots[id]
	want := len(body.Trail) / trailStride

	for len(dots) < want {
		dot := r.addObject(r.assets.GetDotSprite(), 4, 4, ParseHexColor(body.Color))
		dots = append(dots, dot)
	}
	r.trailDots[id] = dots

	for i, dot := range dots {
		sample := i * trailStride
		if sample >= len(body.Trail) {
			break
		}
		dot.space.Position = engo.Point{
			X: float32(body.Trail[sample].X - 2),
			Y: float32(body.Trail[sample].Y - 2),
		}
	}
}

func (r *EngoRenderer) renderShip(ship engine.ShipState) {
	if r.ship == nil {
		size := float32(ship.Radius * 3)
		r.ship = r.addObject(r.assets.GetShipSprite(), size, size, ParseHexColor(ship.Color))
	}

	half := float32(ship.Radius * 1.5)
	r.ship.space.Position = engo.Point{
		X: float32(ship.Position.X) - half,
		Y: float32(ship.Position.Y) - half,
	}
	r.ship.space.Rotation = float32(ship.Heading * 180 / math.Pi)

	r.renderTrail(ship.ID, ship.BodyState)
}

func (r *EngoRenderer) renderTarget(target engine.BodyState) {
	if r.target == nil {
		size := float32(target.Radius * 2)
		r.target = r.addObject(r.assets.GetTargetSprite(int(target.Radius)), size, size, ParseHexColor(target.Color))
	}

	r.target.space.Position = engo.Point{
		X: float32(target.Position.X - target.Radius),
		Y: float32(target.Position.Y - target.Radius),
	}
}

// addObject creates an ECS entity with render and space components and
// registers it with the render system.
func (r *EngoRenderer) addObject(drawable common.Drawable, width, height float32, tint color.Color) *renderedObject {
	obj := &renderedObject{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
		},
		space: common.SpaceComponent{
			Width:  width,
			Height: height,
		},
	}
	r.renderSystem.Add(&obj.basic, &obj.render, &obj.space)
	return obj
}

// removeStale drops render entities for bodies no longer in the
// snapshot. Levels reload with fresh IDs, so everything unseen goes.
func (r *EngoRenderer) removeStale(seen map[entity.ID]bool) {
	for id, obj := range r.bodies {
		if !seen[id] {
			r.renderSystem.Remove(obj.basic)
			for _, dot := range r.trailDots[id] {
				r.renderSystem.Remove(dot.basic)
			}
			delete(r.bodies, id)
			delete(r.trailDots, id)
		}
	}
}

// Reset clears every render entity. Called when a level loads so the
// next snapshot starts from a clean world.
func (r *EngoRenderer) Reset() {
	for id, obj := range r.bodies {
		r.renderSystem.Remove(obj.basic)
		delete(r.bodies, id)
	}
	for id, dots := range r.trailDots {
		for _, dot := range dots {
			r.renderSystem.Remove(dot.basic)
		}
		delete(r.trailDots, id)
	}
	if r.ship != nil {
		r.renderSystem.Remove(r.ship.basic)
		r.ship = nil
	}
	if r.target != nil {
		r.renderSystem.Remove(r.target.basic)
		r.target = nil
	}
}
