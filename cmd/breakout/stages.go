package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/stage"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List built-in stages",
	Long:  `Shows the stages embedded in the binary and how many bricks each has.`,
	Args:  cobra.NoArgs,
	RunE:  runStages,
}

// builtinEntries loads every built-in stage. Stages that do not parse at the
// given size are skipped.
func builtinEntries(rows, cols int) []tui.StageEntry {
	names := stage.BuiltinNames()
	entries := make([]tui.StageEntry, 0, len(names))
	for _, name := range names {
		grid, err := stage.Builtin(name, rows, cols)
		if err != nil {
			continue
		}
		entries = append(entries, tui.StageEntry{Name: name, Bricks: grid.Count()})
	}
	return entries
}

func runStages(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultBreakoutConfig()
	entries := builtinEntries(cfg.Stage.Rows, cfg.Stage.Cols)

	if len(entries) == 0 {
		fmt.Println("No stages available.")
		return nil
	}

	fmt.Println("Built-in stages:")
	fmt.Println()

	maxNameLen := 5 // "Stage" header
	for _, e := range entries {
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Stage", "Bricks")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "-----", "------")
	for _, e := range entries {
		fmt.Printf("  %-*s  %d\n", maxNameLen, e.Name, e.Bricks)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --stage <name>' to play a stage.")
	return nil
}
