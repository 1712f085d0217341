// pkg/render/engo/assets.go
package engo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"
)

// AssetManager builds and caches the procedurally generated sprites the
// game draws with. No image files ship with the game; every drawable is
// rendered into an RGBA buffer at load time.
type AssetManager struct {
	circleSprites map[int]common.Drawable // keyed by pixel radius
	shipSprite    common.Drawable
	targetSprites map[int]common.Drawable
	dotSprite     common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		circleSprites: make(map[int]common.Drawable),
		targetSprites: make(map[int]common.Drawable),
	}
}

// LoadAssets builds the fixed sprites. Circle and ring sprites are
// built lazily per radius.
func (am *AssetManager) LoadAssets() error {
	am.shipSprite = am.createShipSprite()
	am.dotSprite = am.createCircleSprite(2, false)
	return nil
}

// GetCircleSprite returns a filled circle drawable with the given pixel radius
func (am *AssetManager) GetCircleSprite(radius int) common.Drawable {
	if radius < 1 {
		radius = 1
	}
	if sprite, exists := am.circleSprites[radius]; exists {
		return sprite
	}
	sprite := am.createCircleSprite(radius, false)
	am.circleSprites[radius] = sprite
	return sprite
}

// GetTargetSprite returns a ring drawable for the target zone
func (am *AssetManager) GetTargetSprite(radius int) common.Drawable {
	if radius < 1 {
		radius = 1
	}
	if sprite, exists := am.targetSprites[radius]; exists {
		return sprite
	}
	sprite := am.createCircleSprite(radius, true)
	am.targetSprites[radius] = sprite
	return sprite
}

// GetShipSprite returns the triangular ship drawable
func (am *AssetManager) GetShipSprite() common.Drawable {
	return am.shipSprite
}

// GetDotSprite returns the small dot used for trail samples
func (am *AssetManager) GetDotSprite() common.Drawable {
	return am.dotSprite
}

// createCircleSprite rasterizes a filled circle, or a ring when outline
// is set, in white. Color is applied per entity by the render component.
func (am *AssetManager) createCircleSprite(radius int, outline bool) common.Drawable {
	size := radius * 2
	img := am.createBaseImage(size, size)

	center := float64(radius)
	rOuter := float64(radius)
	rInner := 0.0
	if outline {
		rInner = rOuter * 0.8
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			distSq := dx*dx + dy*dy
			if distSq <= rOuter*rOuter && distSq >= rInner*rInner {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	return am.convertToEngoTexture(img)
}

// createShipSprite rasterizes the ship as a triangle pointing along +X,
// matching a heading of zero.
func (am *AssetManager) createShipSprite() common.Drawable {
	const size = 16
	img := am.createBaseImage(size, size)

	// Nose at the right edge, hull widening toward the left.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			halfWidth := (size - 1 - x) / 2
			if x < size-1 && y >= size/2-halfWidth && y <= size/2+halfWidth {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// ParseHexColor parses a "#rrggbb" string, falling back to a pale blue
// on malformed input.
func ParseHexColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
