package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/stage"
)

// Flags shared by the commands that run a session.
var (
	flagConfig     string
	flagDifficulty string
	flagStage      string
	flagStageFile  string
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagStage, "stage", "", "Built-in stage name (see 'breakout stages')")
	cmd.Flags().StringVar(&flagStageFile, "stage-file", "", "Path to a stage file")
}

// withSession tags every entry of a run with a fresh session id.
func withSession(logger *log.Logger) *log.Logger {
	return logger.With("session", uuid.New().String())
}

// loadConfig resolves the config from its search path and applies the
// difficulty preset and stage flags.
func loadConfig(logger *log.Logger) (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, source, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	if source == config.SourceBuiltin {
		logger.Warn("no config file found, using built-in defaults")
	}
	logger.Info("config loaded", "source", source)

	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
		logger.Info("difficulty preset applied", "preset", preset)
	}

	if flagStage != "" {
		cfg.Stage.Name = flagStage
		cfg.Stage.File = ""
	}
	if flagStageFile != "" {
		cfg.Stage.File = flagStageFile
	}
	return cfg, nil
}

// loadStage reads the stage selected by cfg.
func loadStage(cfg config.BreakoutConfig, logger *log.Logger) (*stage.Grid, error) {
	grid, err := stage.Resolve(cfg.Stage.Name, cfg.Stage.File, cfg.Stage.Rows, cfg.Stage.Cols)
	if err != nil {
		var pe *stage.ParseError
		if errors.As(err, &pe) {
			logger.Error("stage rejected", "line", pe.Line, "column", pe.Column, "error", err)
		}
		return nil, err
	}

	name := cfg.Stage.Name
	if cfg.Stage.File != "" {
		name = cfg.Stage.File
	}
	logger.Info("stage loaded", "stage", name, "bricks", grid.Count())
	return grid, nil
}
