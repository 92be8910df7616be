package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge - Collision editor for the Adventurer game engine",
	Long: `Forge is the level authoring tool for the Adventurer game engine.
It provides a visual editor for collision polygons with snapshot-based
undo history, hit testing and a pannable, zoomable canvas.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
