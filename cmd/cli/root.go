package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"launchdash/adapters/excel"
	"launchdash/domain/launch"
	"launchdash/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	format string
}

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "Query the launch records behind the dashboard",
	Long:  "launchdash answers the dashboard's questions from the terminal:\noutcome shares per site, payload/outcome points and per-site statistics.\nThe input table is read from DATA_FILE.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.format, "format", "o", formatTable, "Output format: table, json or yaml")

	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(outcomesCmd)
	rootCmd.AddCommand(scatterCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDataset reads the table named by the environment configuration
func loadDataset() (*launch.Dataset, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	ds, err := excel.LoadDataset(cfg.Data.File)
	if err != nil {
		return nil, fmt.Errorf("load launches: %w", err)
	}
	return ds, nil
}
