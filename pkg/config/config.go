// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig contains configuration for an orbit game session
type GameConfig struct {
	WorldWidth    float64       `json:"worldWidth"`
	WorldHeight   float64       `json:"worldHeight"`
	PhysicsConfig PhysicsConfig `json:"physics"`
	ShipConfig    ShipConfig    `json:"ship"`
	GameRules     GameRules     `json:"gameRules"`
	Levels        []LevelConfig `json:"levels"`
	SpawnPresets  []SpawnPreset `json:"spawnPresets"`
}

// PhysicsConfig contains the simulation tuning parameters. Gravity is a
// gameplay constant, not the physical one.
type PhysicsConfig struct {
	Gravity          float64 `json:"gravity"`
	SofteningEpsilon float64 `json:"softeningEpsilon"`
	TrailLength      int     `json:"trailLength"`
	MaxDeltaTime     float64 `json:"maxDeltaTime"`
}

// ShipConfig contains the player ship parameters
type ShipConfig struct {
	Mass        float64 `json:"mass"`
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	ThrustPower float64 `json:"thrustPower"`
	Fuel        float64 `json:"fuel"`
}

// GameRules contains gameplay rules configuration
type GameRules struct {
	TargetSpeedLimit float64 `json:"targetSpeedLimit"` // max entry speed for level completion, px/s
	FrameRate        int     `json:"frameRate"`
	SpawnsPerMinute  int     `json:"spawnsPerMinute"`
}

// LevelConfig describes the initial object set of one level
type LevelConfig struct {
	Name   string          `json:"name"`
	Bodies []BodyConfig    `json:"bodies"`
	Ship   PlacementConfig `json:"ship"`
	Target TargetConfig    `json:"target"`
}

// BodyConfig describes a gravitating body in a level
type BodyConfig struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// PlacementConfig is an initial position for the ship
type PlacementConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TargetConfig describes the level's target zone: a massless body the
// ship must reach below the speed limit.
type TargetConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// SpawnPreset is a mass/radius/color template for click-spawned bodies
type SpawnPreset struct {
	Name   string  `json:"name"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration: the two built-in
// levels with one consistent constant set.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		WorldWidth:  1200,
		WorldHeight: 800,
		PhysicsConfig: PhysicsConfig{
			Gravity:          0.667,
			SofteningEpsilon: 1.0,
			TrailLength:      250,
			MaxDeltaTime:     0.1,
		},
		ShipConfig: ShipConfig{
			Mass:        50,
			Radius:      10,
			Color:       "#ff6347",
			ThrustPower: 350,
			Fuel:        1200,
		},
		GameRules: GameRules{
			TargetSpeedLimit: 50,
			FrameRate:        60,
			SpawnsPerMinute:  30,
		},
		Levels: []LevelConfig{
			{
				Name: "Orbital Insertion",
				Bodies: []BodyConfig{
					{Name: "Star", X: 600, Y: 400, Mass: 5e5, Radius: 28, Color: "#ffc850"},
					{Name: "Planet", X: 350, Y: 400, VX: 0, VY: -120, Mass: 2e4, Radius: 14, Color: "#87cefa"},
					{Name: "Planet II", X: 900, Y: 400, VX: 0, VY: 95, Mass: 3e4, Radius: 16, Color: "#98fb98"},
				},
				Ship:   PlacementConfig{X: 600, Y: 100},
				Target: TargetConfig{X: 600, Y: 750, Radius: 40, Color: "#ffffff"},
			},
			{
				Name: "Binary Crossing",
				Bodies: []BodyConfig{
					{Name: "Star 1", X: 450, Y: 400, Mass: 4e5, Radius: 24, Color: "#ffc850"},
					{Name: "Star 2", X: 750, Y: 400, Mass: 4e5, Radius: 24, Color: "#ffd264"},
					{Name: "Planet", X: 600, Y: 550, VX: 90, VY: 0, Mass: 2e4, Radius: 14, Color: "#87cefa"},
				},
				Ship:   PlacementConfig{X: 100, Y: 700},
				Target: TargetConfig{X: 1100, Y: 100, Radius: 40, Color: "#ffffff"},
			},
		},
		SpawnPresets: []SpawnPreset{
			{Name: "planet", Mass: 1e4, Radius: 12, Color: "#add8e6"},
			{Name: "giant", Mass: 8e4, Radius: 22, Color: "#ff8c00"},
		},
	}
}
