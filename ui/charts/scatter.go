package charts

import (
	"io"
	"math"

	"launchdash/domain/launch"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scatter renders payload mass against class, one series per site in the
// order sites first appear in the points
func (r *Renderer) Scatter(w io.Writer, res launch.ScatterResult, format string) error {
	p := plot.New()
	p.Title.Text = res.Title()
	p.X.Label.Text = "Payload Mass (kg)"
	p.Y.Label.Text = "class"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var order []string
	bySite := make(map[string]plotter.XYs)
	for _, rec := range res.Points {
		if _, ok := bySite[rec.Site]; !ok {
			order = append(order, rec.Site)
		}
		bySite[rec.Site] = append(bySite[rec.Site], plotter.XY{X: rec.PayloadMassKg, Y: float64(rec.Outcome)})
	}

	for _, site := range order {
		s, err := plotter.NewScatter(bySite[site])
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = r.siteColor(site)
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(site, s)
	}

	p.Y.Min, p.Y.Max = -0.25, 1.25
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 1, Label: "1"},
	})

	rng := res.Range
	if !rng.IsInverted() && !math.IsInf(rng.Low, 0) && !math.IsInf(rng.High, 0) {
		p.X.Min, p.X.Max = rng.Low, rng.High
		if rng.Low == rng.High {
			p.X.Min, p.X.Max = rng.Low-1, rng.High+1
		}
	}

	return r.write(w, p, format)
}
