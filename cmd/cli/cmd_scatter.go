package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"launchdash/domain/launch"
)

var scatterFlags struct {
	site string
	low  float64
	high float64
}

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "List launches inside a payload range",
	RunE:  runScatter,
}

func init() {
	f := scatterCmd.Flags()
	f.StringVar(&scatterFlags.site, "site", launch.SiteAll.String(), "Launch site or ALL")
	f.Float64Var(&scatterFlags.low, "low", 0, "Lowest payload mass in kg (inclusive)")
	f.Float64Var(&scatterFlags.high, "high", math.Inf(1), "Highest payload mass in kg (inclusive)")
}

func runScatter(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	res := launch.Scatter(ds, launch.SiteSelection(scatterFlags.site), launch.PayloadRange{
		Low:  scatterFlags.low,
		High: scatterFlags.high,
	})
	if math.IsInf(res.Range.High, 1) {
		// JSON has no infinity
		res.Range.High = math.MaxFloat64
	}
	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, res.Title())
		fmt.Fprintln(w, "SITE\tPAYLOAD (KG)\tOUTCOME")
		for _, p := range res.Points {
			fmt.Fprintf(w, "%s\t%g\t%s\n", p.Site, p.PayloadMassKg, p.Outcome.Label())
		}
		fmt.Fprintf(w, "%d launches\t\t\n", len(res.Points))
	})
}
