// cmd/orbit/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/render"
	engorender "github.com/opd-ai/go-orbit/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	levelIndex := flag.Int("level", 0, "Level index to start at")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 1200, "Window width (Engo only)")
	height := flag.Int("height", 800, "Window height (Engo only)")
	duration := flag.Duration("duration", 30*time.Second, "Run time (headless/terminal only)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	// Create game
	game, err := engine.NewGame(gameConfig)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	if *levelIndex != 0 {
		for i := 0; i < *levelIndex; i++ {
			if err := game.AdvanceLevel(); err != nil {
				logger.Error(ctx, "Failed to select level", err, "level", *levelIndex)
				os.Exit(1)
			}
		}
	}

	if err := game.InitializeResourceManager(); err != nil {
		logger.Error(ctx, "Failed to initialize resource manager", err)
		os.Exit(1)
	}

	subscribeGameEvents(ctx, logger, game)

	switch *renderer {
	case "engo":
		runEngo(game, *width, *height, *fullscreen)
	case "terminal":
		runWithoutGUI(ctx, logger, game, *duration, true)
	case "headless":
		fallthrough
	default:
		runWithoutGUI(ctx, logger, game, *duration, false)
	}
}

// subscribeGameEvents logs the session's lifecycle events
func subscribeGameEvents(ctx context.Context, logger *logging.Logger, game *engine.Game) {
	game.EventBus.Subscribe(event.LevelStarted, func(e event.Event) {
		if le, ok := e.(*event.LevelEvent); ok {
			logger.Info(ctx, "Level started", "level", le.LevelIndex+1, "name", le.LevelName)
		}
	})
	game.EventBus.Subscribe(event.LevelCompleted, func(e event.Event) {
		if le, ok := e.(*event.LevelEvent); ok {
			logger.Info(ctx, "Level completed", "level", le.LevelIndex+1, "score", le.Score)
		}
	})
	game.EventBus.Subscribe(event.ShipDestroyed, func(e event.Event) {
		logger.Info(ctx, "Ship destroyed")
	})
	game.EventBus.Subscribe(event.FuelExhausted, func(e event.Event) {
		logger.Info(ctx, "Fuel exhausted")
	})
}

// runEngo starts the GUI game
func runEngo(game *engine.Game, width, height int, fullscreen bool) {
	scene := engorender.NewGameScene(game)

	opts := engo.RunOptions{
		Title:      "Orbit",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// runWithoutGUI drives the simulation at the configured frame rate with
// no input, optionally drawing ASCII frames. Useful for level tuning
// and smoke tests.
func runWithoutGUI(ctx context.Context, logger *logging.Logger, game *engine.Game, duration time.Duration, drawFrames bool) {
	runCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	game.Start()

	err := game.ResourceManager.StartGoroutine(runCtx, "game-loop", func(loopCtx context.Context) {
		game.Run(loopCtx)
	})
	if err != nil {
		logger.Error(ctx, "Failed to start game loop", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var term *render.TerminalRenderer
	var frames <-chan time.Time
	if drawFrames {
		term = render.NewTerminalRenderer(120, 40, 10)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		frames = ticker.C
	}

	for {
		select {
		case <-frames:
			state := game.Snapshot()
			term.SetCenter(state.Ship.Position)
			render.Draw(term, state)
		case <-sigChan:
			logger.Info(ctx, "Interrupted, shutting down")
			shutdown(ctx, logger, game)
			return
		case <-runCtx.Done():
			state := game.Snapshot()
			logger.Info(ctx, "Run finished",
				"ticks", state.Tick,
				"status", int(state.Status),
				"score", state.Score,
				"fuel", state.Ship.Fuel,
			)
			shutdown(ctx, logger, game)
			return
		}
	}
}

// shutdown stops the game and waits for tracked goroutines
func shutdown(ctx context.Context, logger *logging.Logger, game *engine.Game) {
	game.Stop()
	if err := game.ResourceManager.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "Shutdown incomplete", "error", err.Error())
	}
}
