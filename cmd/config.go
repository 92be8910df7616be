package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/forge/project"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved project configuration",
	Long:  `Loads forge.yaml from the project root and prints the editor settings after applying defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("getting project root: %w", err)
		}

		config, err := project.LoadConfig(projectRoot)
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		resolved := config.Resolve()

		fmt.Printf("Project: %s\n", config.Name)
		fmt.Printf("Root:    %s\n", projectRoot)
		fmt.Println("Editor settings:")
		fmt.Printf("  grid_snap:     %v\n", resolved.GridSnap)
		fmt.Printf("  min_zoom:      %g\n", resolved.MinZoom)
		fmt.Printf("  max_zoom:      %g\n", resolved.MaxZoom)
		fmt.Printf("  zoom_step:     %g\n", resolved.ZoomStep)
		fmt.Printf("  hit_threshold: %g\n", resolved.HitThreshold)
		fmt.Printf("  history_limit: %d\n", resolved.HistoryLimit)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// getProjectRoot returns the project root directory by looking for forge.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}
