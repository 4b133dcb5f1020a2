package cmd

import (
	"fmt"

	"github.com/arl/pocketgen/pocketcfg"
	"github.com/spf13/cobra"
)

var cutterDiamVal float64

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with
the spec's documented defaults for the given cutter diameter.

If FILE is not provided, 'pocketgen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "pocketgen.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		c := pocketcfg.DefaultConfig(cutterDiamVal)
		if err := c.Save(path); err != nil {
			fmt.Println("error,", err)
			return
		}
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.Flags().Float64Var(&cutterDiamVal, "cutter-diameter", 6.35, "cutter diameter for the scaffolded settings")
}
