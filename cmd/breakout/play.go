package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a stage",
	Long: `Start playing a stage in the terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Space            - Launch the ball
  P/Esc            - Pause
  R                - Restart (after game over or a cleared stage)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, slower serve
  normal - Config values unchanged
  hard   - 2 lives, narrower paddle, faster serve

Examples:
  breakout play
  breakout play --menu
  breakout play --stage diamond --difficulty easy
  breakout play --stage-file ./my.stg --log-file breakout.log
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick a built-in stage from a menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()
	logger = withSession(logger)

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     flagFPS,
		MaxFrameTime: cfg.Gameplay.FrameTimeLimit(),
	}

	if flagMenu {
		name, menuErr := tui.RunStageMenu(builtinEntries(cfg.Stage.Rows, cfg.Stage.Cols), runtime)
		if menuErr != nil {
			return menuErr
		}
		if name == "" {
			return nil
		}
		cfg.Stage.Name = name
		cfg.Stage.File = ""
	}

	grid, err := loadStage(cfg, logger)
	if err != nil {
		return err
	}

	breakout.Configure(cfg, grid)
	game, err := registry.Create("breakout")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("session started", "game", game.ID(), "fps", runtime.TickRate, "screen", [2]int{width, height})
	if runErr := tui.Run(game, runtime, logger); runErr != nil {
		return runErr
	}
	logger.Info("session ended", "score", game.State().Score)
	return nil
}
