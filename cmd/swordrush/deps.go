package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/games/swordrush"
	"github.com/vovakirdan/swordrush/internal/highscore"
	"github.com/vovakirdan/swordrush/internal/logging"
	"github.com/vovakirdan/swordrush/internal/platform/tui"
	"github.com/vovakirdan/swordrush/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeGData  = "gdata"
	storeMemory = "memory"
)

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.SwordRushConfig, string, error) {
	cfg, err := config.LoadSwordRush(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	label := string(config.DifficultyNormal)
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplySwordRushPreset(&cfg, preset)
		label = string(preset)
	}
	return cfg, label, nil
}

// newLogger builds the command logger. Terminal frontends log to a file so
// the alternate screen stays clean.
func newLogger(toFile bool, prefix string) (*log.Logger, func(), error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	if !toFile {
		return logging.New(os.Stderr, level, prefix), func() {}, nil
	}

	f, err := logging.OpenFile(logging.DefaultFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		return logging.New(io.Discard, level, prefix), func() {}, nil
	}
	return logging.New(f, level, prefix), func() { _ = f.Close() }, nil
}

// scoreDeps is the opened highscore backend.
type scoreDeps struct {
	scores  highscore.Store
	history tui.RunHistory // nil unless sqlite
	close   func()
}

// openScores opens the backend picked by --store and wraps it so writes never
// block the game loop. Failures fall back to an in-memory store.
func openScores(logger *log.Logger) (scoreDeps, error) {
	switch flagStore {
	case storeSQLite:
		st, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
			return memoryScores(), nil
		}
		async := highscore.NewAsync(st.Highscores(swordrush.GameID, logger), logger)
		return scoreDeps{
			scores:  async,
			history: st,
			close: func() {
				async.Close()
				if err := st.Close(); err != nil {
					logger.Error("close scores database", "err", err)
				}
			},
		}, nil

	case storeGData:
		g, err := highscore.OpenGData("swordrush", logger)
		if err != nil {
			logger.Warn("could not open save data, scores will not be saved", "err", err)
			return memoryScores(), nil
		}
		async := highscore.NewAsync(g, logger)
		return scoreDeps{scores: async, close: async.Close}, nil

	case storeMemory:
		return memoryScores(), nil

	default:
		return scoreDeps{}, fmt.Errorf("unknown store %q (want sqlite, gdata or memory)", flagStore)
	}
}

func memoryScores() scoreDeps {
	return scoreDeps{scores: highscore.NewMemory(0), close: func() {}}
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
