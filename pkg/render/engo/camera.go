// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// CameraSystem follows the player's ship, smoothing the motion so
// sudden thrust does not yank the viewport.
type CameraSystem struct {
	target    physics.Vector2D
	targetSet bool

	zoom    float32
	minZoom float32
	maxZoom float32

	followSpeed float32
	smoothing   bool

	currentPos physics.Vector2D
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     3.0,
		followSpeed: 2.0,
		smoothing:   true,
	}
}

// Add satisfies the ecs.System interface
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for camera system
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {
	// Not used for camera system
}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}

	cs.syncViewport()
}

// syncViewport pushes the follow position and zoom to the Engo camera,
// keeping the real viewport in step with ScreenToWorld's math. The
// mailbox only exists inside a running Engo instance.
func (cs *CameraSystem) syncViewport() {
	if engo.Mailbox == nil {
		return
	}

	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:  common.XAxis,
		Value: float32(cs.currentPos.X),
	})
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:  common.YAxis,
		Value: float32(cs.currentPos.Y),
	})
	// The camera's Z value is world units per screen pixel, the inverse
	// of the magnification this system tracks.
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:  common.ZAxis,
		Value: 1 / cs.zoom,
	})
}

// handleZoomInput processes mouse wheel zoom
func (cs *CameraSystem) handleZoomInput() {
	scrollY := engo.Input.Mouse.ScrollY
	if scrollY != 0 {
		zoomFactor := float32(1.0 + scrollY*0.1)
		cs.SetZoom(cs.zoom * zoomFactor)
	}
}

// updateCameraPosition smoothly moves the camera toward the target
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if cs.smoothing {
		dx := cs.target.X - cs.currentPos.X
		dy := cs.target.Y - cs.currentPos.Y

		cs.currentPos.X += dx * float64(cs.followSpeed) * float64(dt)
		cs.currentPos.Y += dy * float64(cs.followSpeed) * float64(dt)
	} else {
		cs.currentPos = cs.target
	}
}

// SetTarget sets the position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true

	// First target positions the camera immediately.
	if !cs.smoothing || (cs.currentPos.X == 0 && cs.currentPos.Y == 0) {
		cs.currentPos = target
	}
}

// SetZoom sets the camera zoom level, clamped to the configured limits
func (cs *CameraSystem) SetZoom(zoom float32) {
	if zoom < cs.minZoom {
		zoom = cs.minZoom
	}
	if zoom > cs.maxZoom {
		zoom = cs.maxZoom
	}
	cs.zoom = zoom
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// ScreenToWorld converts screen coordinates to world coordinates. Valid
// because syncViewport keeps the Engo camera centered on currentPos at
// this system's zoom.
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	relativeX := screenPos.X - float64(engo.GameWidth()/2)
	relativeY := screenPos.Y - float64(engo.GameHeight()/2)

	relativeX /= float64(cs.zoom)
	relativeY /= float64(cs.zoom)

	return physics.Vector2D{
		X: relativeX + cs.currentPos.X,
		Y: relativeY + cs.currentPos.Y,
	}
}
