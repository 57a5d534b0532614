package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"launchdash/domain/launch"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Donut renders an outcome grouping. ALL colours slices by site; a single
// site uses the outcome palette. An empty grouping renders an empty chart.
func (r *Renderer) Donut(w io.Writer, g launch.OutcomeGrouping, format string) error {
	p := plot.New()
	p.Title.Text = g.Title()
	p.HideAxes()
	p.Legend.Top = true

	d := &donut{hole: DonutHole, showLabels: g.ShowLabels}
	for _, s := range g.Slices {
		var c color.Color
		if g.GroupBy == launch.GroupBySite {
			c = r.siteColor(s.Key)
		} else {
			c = outcomeColor(s.Key)
		}
		d.wedges = append(d.wedges, wedge{slice: s, color: c})
		p.Legend.Add(s.Key, swatch{color: c})
	}
	p.Add(d)

	return r.write(w, p, format)
}

type wedge struct {
	slice launch.Slice
	color color.Color
}

// donut is a plot.Plotter drawing proportional ring segments
type donut struct {
	wedges     []wedge
	hole       float64
	showLabels bool
}

func (d *donut) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Legend.TextStyle
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}

	total := 0
	for _, w := range d.wedges {
		total += w.slice.Count
	}
	if total == 0 {
		c.FillText(sty, center, "No launches match the selection")
		return
	}

	outer := 0.45 * vg.Length(math.Min(float64(c.Max.X-c.Min.X), float64(c.Max.Y-c.Min.Y)))
	inner := outer * vg.Length(d.hole)

	sty.Color = color.White
	start := math.Pi / 2
	for _, w := range d.wedges {
		sweep := -2 * math.Pi * float64(w.slice.Count) / float64(total)

		var path vg.Path
		path.Move(polar(center, outer, start))
		arc(&path, center, outer, start, sweep)
		path.Line(polar(center, inner, start+sweep))
		arc(&path, center, inner, start+sweep, -sweep)
		path.Close()

		c.SetColor(w.color)
		c.Fill(path)

		label := fmt.Sprintf("%.1f%%", w.slice.Percent)
		if d.showLabels {
			label = w.slice.Key + "\n" + label
		}
		c.FillText(sty, polar(center, (outer+inner)/2, start+sweep/2), label)

		start += sweep
	}
}

// arc adds the arc in quarter-turn pieces so a full ring still renders
func arc(path *vg.Path, center vg.Point, rad vg.Length, start, sweep float64) {
	const maxStep = math.Pi / 2
	for math.Abs(sweep) > 1e-12 {
		step := math.Copysign(math.Min(math.Abs(sweep), maxStep), sweep)
		path.Arc(center, rad, start, step)
		start += step
		sweep -= step
	}
}

func polar(center vg.Point, rad vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + rad*vg.Length(math.Cos(angle)),
		Y: center.Y + rad*vg.Length(math.Sin(angle)),
	}
}

// swatch is a solid legend thumbnail
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(s.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}
