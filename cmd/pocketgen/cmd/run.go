package cmd

import (
	"fmt"
	"os"

	"github.com/arl/pocketgen/pocket"
	"github.com/arl/pocketgen/pocketcfg"
	"github.com/spf13/cobra"
)

var (
	runCfgVal    string
	runRegionVal string
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "clear a pocket region and print a summary of the toolpath",
	Long: `Load a polygon region description and a build settings file,
run the adaptive clearing generator, and print a summary of the resulting
toolpath (item counts and any failure detail) on standard output.`,
	Run: doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runCfgVal, "config", "pocketgen.yml", "build settings file")
	runCmd.Flags().StringVar(&runRegionVal, "region", "", "region polygon file (required)")
	runCmd.MarkFlagRequired("region")
}

func doRun(cmd *cobra.Command, args []string) {
	cfg, err := pocketcfg.Load(runCfgVal)
	if err != nil {
		fmt.Println("error loading config,", err)
		os.Exit(1)
	}

	region, err := pocketcfg.LoadRegion(runRegionVal)
	if err != nil {
		fmt.Println("error loading region,", err)
		os.Exit(1)
	}

	opts := cfg.ToOptions()

	var gen pocket.Generator
	path, status := gen.Run(region, opts)

	fmt.Printf("status: %v\n", status)
	if status.Failed() {
		os.Exit(1)
	}

	counts := make(map[string]int)
	var order []string
	for _, item := range path.Items {
		kind := item.Kind.String()
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++
	}
	fmt.Printf("path: %d items, %.3f total length\n", len(path.Items), path.Length())
	for _, kind := range order {
		fmt.Printf("  %-14s %d\n", kind, counts[kind])
	}
}
