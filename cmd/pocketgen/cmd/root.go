package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "pocketgen",
	Short: "generate adaptive-clearing pocket toolpaths",
	Long: `pocketgen computes a medial-axis-transform adaptive clearing
toolpath for a 2D pocket:
	- scaffold a build settings file (YAML),
	- run the generator against a polygon region description,
	- print a summary of the resulting toolpath.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
