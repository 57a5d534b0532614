package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launchdash/domain/launch"
)

var outcomesFlags struct {
	site string
}

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "Show the donut grouping for a site selection",
	RunE:  runOutcomes,
}

func init() {
	outcomesCmd.Flags().StringVar(&outcomesFlags.site, "site", launch.SiteAll.String(), "Launch site or ALL")
}

func runOutcomes(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	g := launch.AggregateOutcomes(ds, launch.SiteSelection(outcomesFlags.site))
	return render(cmd, g, func(w io.Writer) {
		fmt.Fprintln(w, g.Title())
		fmt.Fprintln(w, "KEY\tCOUNT\tPERCENT")
		for _, s := range g.Slices {
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", s.Key, s.Count, s.Percent)
		}
		fmt.Fprintf(w, "total\t%d\t\n", g.Total)
	})
}
