package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launchdash/domain/launch"
)

var summaryFlags struct {
	site string
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-site launch and payload statistics",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.site, "site", launch.SiteAll.String(), "Launch site or ALL")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	sum := launch.Summarize(ds, launch.SiteSelection(summaryFlags.site))
	return render(cmd, sum, func(w io.Writer) {
		fmt.Fprintln(w, "SITE\tLAUNCHES\tSUCCESSES\tRATE\tMEAN KG\tMEDIAN KG\tMIN KG\tMAX KG")
		rows := append(append([]launch.SiteSummary{}, sum.Sites...), sum.Overall)
		for _, s := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\t%.0f\t%.0f\t%.0f\t%.0f\n",
				s.Site, s.Launches, s.Successes, s.SuccessRate*100,
				s.PayloadMean, s.PayloadMedian, s.PayloadMin, s.PayloadMax)
		}
	})
}
