// pkg/level/level_test.go
package level

import (
	"testing"

	"github.com/opd-ai/go-orbit/pkg/config"
)

func TestNewFactoryValidConfig(t *testing.T) {
	factory, err := NewFactory(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewFactory() failed: %v", err)
	}
	if factory.Count() != 2 {
		t.Errorf("Count() = %d, want 2", factory.Count())
	}
}

func TestNewFactoryRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.GameConfig)
	}{
		{"no levels", func(c *config.GameConfig) { c.Levels = nil }},
		{"empty level name", func(c *config.GameConfig) { c.Levels[0].Name = "" }},
		{"negative body mass", func(c *config.GameConfig) { c.Levels[0].Bodies[0].Mass = -1 }},
		{"zero body radius", func(c *config.GameConfig) { c.Levels[0].Bodies[0].Radius = 0 }},
		{"zero target radius", func(c *config.GameConfig) { c.Levels[0].Target.Radius = 0 }},
		{"massless ship", func(c *config.GameConfig) { c.ShipConfig.Mass = 0 }},
		{"bad body color", func(c *config.GameConfig) { c.Levels[0].Bodies[0].Color = "cyan" }},
		{"bad target color", func(c *config.GameConfig) { c.Levels[0].Target.Color = "#fff" }},
		{"bad ship color", func(c *config.GameConfig) { c.ShipConfig.Color = "" }},
		{"bad preset color", func(c *config.GameConfig) { c.SpawnPresets[0].Color = "#gggggg" }},
		{"zero preset radius", func(c *config.GameConfig) { c.SpawnPresets[0].Radius = 0 }},
		{"unnamed preset", func(c *config.GameConfig) { c.SpawnPresets[0].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			if _, err := NewFactory(cfg); err == nil {
				t.Error("NewFactory() should have failed")
			}
		})
	}
}

func TestBuildCreatesLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	factory, err := NewFactory(cfg)
	if err != nil {
		t.Fatalf("NewFactory() failed: %v", err)
	}

	setup, err := factory.Build(0)
	if err != nil {
		t.Fatalf("Build(0) failed: %v", err)
	}

	if setup.Name != cfg.Levels[0].Name {
		t.Errorf("Name = %q, want %q", setup.Name, cfg.Levels[0].Name)
	}
	if len(setup.Bodies) != len(cfg.Levels[0].Bodies) {
		t.Errorf("built %d bodies, want %d", len(setup.Bodies), len(cfg.Levels[0].Bodies))
	}
	if setup.Ship == nil || setup.Target == nil {
		t.Fatal("Build() must produce a ship and a target")
	}
	if setup.Target.Mass != 0 {
		t.Errorf("target mass = %v, must be massless", setup.Target.Mass)
	}
	if setup.Ship.Thruster.Fuel != cfg.ShipConfig.Fuel {
		t.Errorf("ship fuel = %v, want %v", setup.Ship.Thruster.Fuel, cfg.ShipConfig.Fuel)
	}
}

func TestBuildReturnsFreshEntities(t *testing.T) {
	factory, err := NewFactory(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewFactory() failed: %v", err)
	}

	first, err := factory.Build(0)
	if err != nil {
		t.Fatalf("Build(0) failed: %v", err)
	}

	// Mutate the first run the way a session would.
	first.Ship.Thruster.Fuel = 0
	first.Bodies[0].Position.X = -9999

	second, err := factory.Build(0)
	if err != nil {
		t.Fatalf("second Build(0) failed: %v", err)
	}

	if second.Ship.Thruster.Fuel == 0 {
		t.Error("rebuild shares ship state with the previous run")
	}
	if second.Bodies[0].Position.X == -9999 {
		t.Error("rebuild shares body state with the previous run")
	}
	if second.Ship == first.Ship {
		t.Error("rebuild returned the same ship pointer")
	}
}

func TestBuildInvalidIndex(t *testing.T) {
	factory, err := NewFactory(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewFactory() failed: %v", err)
	}

	if _, err := factory.Build(-1); err == nil {
		t.Error("Build(-1) should fail")
	}
	if _, err := factory.Build(factory.Count()); err == nil {
		t.Error("Build past the last level should fail")
	}
}

func TestSpawnPresetLookup(t *testing.T) {
	factory, err := NewFactory(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewFactory() failed: %v", err)
	}

	preset, ok := factory.SpawnPreset("planet")
	if !ok {
		t.Fatal("preset 'planet' should exist")
	}
	if preset.Mass <= 0 || preset.Radius <= 0 {
		t.Errorf("preset has degenerate parameters: %+v", preset)
	}

	if _, ok := factory.SpawnPreset("unknown"); ok {
		t.Error("unknown preset should not be found")
	}
}
