// Package validation provides input validation for level configurations
// and player spawn requests.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Limits for level and spawn input
const (
	MaxLevelNameLen   = 64
	MaxBodiesPerLevel = 64
	MaxBodyMass       = 1e9
	MaxBodyRadius     = 500
)

// Colors are hex strings like "#ff6347".
var validHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateLevelName validates and trims a level name
func ValidateLevelName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("level name cannot be empty")
	}

	if len(name) > MaxLevelNameLen {
		return "", fmt.Errorf("level name too long: %d characters (max %d)", len(name), MaxLevelNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("level name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("level name cannot be only whitespace")
	}

	return trimmed, nil
}

// ValidateBody validates a body's physical parameters. Mass zero is
// legal: the body exerts no pull but still collides.
func ValidateBody(mass, radius float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return fmt.Errorf("body mass must be finite, got %v", mass)
	}
	if mass < 0 {
		return fmt.Errorf("body mass cannot be negative: %v", mass)
	}
	if mass > MaxBodyMass {
		return fmt.Errorf("body mass too large: %v (max %v)", mass, float64(MaxBodyMass))
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("body radius must be finite, got %v", radius)
	}
	if radius <= 0 {
		return fmt.Errorf("body radius must be positive: %v", radius)
	}
	if radius > MaxBodyRadius {
		return fmt.Errorf("body radius too large: %v (max %v)", radius, float64(MaxBodyRadius))
	}

	return nil
}

// ValidateColor validates a hex color string
func ValidateColor(color string) error {
	if !validHexColor.MatchString(color) {
		return fmt.Errorf("invalid color %q (expected #rrggbb)", color)
	}
	return nil
}

// ValidateSpawnPosition validates a spawn coordinate against the world bounds
func ValidateSpawnPosition(x, y, worldWidth, worldHeight float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("spawn position must be finite, got (%v, %v)", x, y)
	}
	if x < 0 || x > worldWidth || y < 0 || y > worldHeight {
		return fmt.Errorf("spawn position (%v, %v) outside world bounds %vx%v", x, y, worldWidth, worldHeight)
	}
	return nil
}

// ValidateLevelIndex validates a level index against the number of
// configured levels
func ValidateLevelIndex(index, levelCount int) error {
	if index < 0 || index >= levelCount {
		return fmt.Errorf("invalid level index: %d (have %d levels)", index, levelCount)
	}
	return nil
}
