// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig contains process-level settings read from ORBIT_*
// environment variables, mainly for the resource manager.
type EnvironmentConfig struct {
	MaxMemoryMB           int64
	MaxGoroutines         int
	ShutdownTimeout       time.Duration
	ResourceCheckInterval time.Duration
}

// LoadConfigFromEnv builds an EnvironmentConfig from environment
// variables, falling back to safe defaults for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		MaxMemoryMB:           500,
		MaxGoroutines:         100,
		ShutdownTimeout:       30 * time.Second,
		ResourceCheckInterval: 10 * time.Second,
	}

	if v := os.Getenv("ORBIT_MAX_MEMORY_MB"); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ORBIT_MAX_MEMORY_MB %q: %w", v, err)
		}
		config.MaxMemoryMB = mb
	}

	if v := os.Getenv("ORBIT_MAX_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORBIT_MAX_GOROUTINES %q: %w", v, err)
		}
		config.MaxGoroutines = n
	}

	if v := os.Getenv("ORBIT_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORBIT_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		config.ShutdownTimeout = d
	}

	if v := os.Getenv("ORBIT_RESOURCE_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORBIT_RESOURCE_CHECK_INTERVAL %q: %w", v, err)
		}
		config.ResourceCheckInterval = d
	}

	return config, nil
}

// ApplyEnvironmentOverrides overlays ORBIT_* tuning variables onto a
// loaded game configuration. Unset variables leave the file values
// untouched.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if v := os.Getenv("ORBIT_GRAVITY"); v != "" {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_GRAVITY %q: %w", v, err)
		}
		config.PhysicsConfig.Gravity = g
	}

	if v := os.Getenv("ORBIT_TRAIL_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_TRAIL_LENGTH %q: %w", v, err)
		}
		config.PhysicsConfig.TrailLength = n
	}

	if v := os.Getenv("ORBIT_FRAME_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_FRAME_RATE %q: %w", v, err)
		}
		config.GameRules.FrameRate = n
	}

	if v := os.Getenv("ORBIT_TARGET_SPEED_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_TARGET_SPEED_LIMIT %q: %w", v, err)
		}
		config.GameRules.TargetSpeedLimit = limit
	}

	return nil
}
