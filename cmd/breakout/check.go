package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/stage"
)

var (
	flagRows int
	flagCols int
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate stage files",
	Long: `Parses each stage file and reports its brick count. Stops at the first
file that fails and exits with status 1.

A stage file has exactly --rows lines of exactly --cols whitespace-separated
integers. 0 is an empty cell and 1-8 are bricks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagRows, "rows", 20, "Expected number of rows")
	checkCmd.Flags().IntVar(&flagCols, "cols", 20, "Expected number of columns")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	for _, path := range args {
		grid, err := stage.Load(path, flagRows, flagCols)
		if err != nil {
			logger.Debug("stage rejected", "file", path, "error", err)
			return err
		}
		fmt.Printf("ok  %s  (%d bricks)\n", path, grid.Count())
	}
	return nil
}
