// breakout is a terminal brick-breaker built around a deterministic simulation core.
//
// Usage:
//
//	breakout play            - Play a stage in the terminal
//	breakout stages          - List built-in stages
//	breakout check <file>... - Validate stage files
//	breakout sim             - Run the simulation headless and print its final state
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - a brick-breaker for your terminal",
	Long: `Breakout is a terminal brick-breaker. Stages are 20x20 grids of brick
codes; the ball bounces off walls, the paddle and bricks, destroying each
brick it hits.

Available commands:
  play     - Play a stage
  stages   - List built-in stages
  check    - Validate stage files
  sim      - Run the simulation without a terminal UI

Examples:
  breakout play
  breakout play --stage pyramid --difficulty hard
  breakout play --stage-file ./my.stg
  breakout check ./my.stg
  breakout sim --frames 600 --axis 0.5 --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise. The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closer = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closer
}
