package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launchdash/domain/launch"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the dropdown options and the payload slider bounds",
	RunE:  runSites,
}

type sitesOutput struct {
	Options []launch.SiteOption `json:"options"`
	Slider  launch.SliderSpec   `json:"slider"`
}

func runSites(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	out := sitesOutput{
		Options: launch.SiteOptions(ds),
		Slider:  launch.NewSliderSpec(ds, launch.DefaultSliderStep, launch.DefaultSliderMarkEvery),
	}
	return render(cmd, out, func(w io.Writer) {
		fmt.Fprintln(w, "LABEL\tVALUE")
		for _, o := range out.Options {
			fmt.Fprintf(w, "%s\t%s\n", o.Label, o.Value)
		}
		fmt.Fprintf(w, "\npayload range\t%g - %g kg\n", out.Slider.Min, out.Slider.Max)
	})
}
