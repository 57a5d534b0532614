package services

import (
	"fmt"
	"html"
	"io"
	"strings"

	"launchdash/adapters/excel"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/ui/charts"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderService produces charts, reports and exports from query results
type RenderService struct {
	query    *QueryService
	renderer *charts.Renderer
}

func NewRenderService(query *QueryService, widthPt, heightPt float64) *RenderService {
	return &RenderService{
		query:    query,
		renderer: charts.NewRenderer(query.Dataset().Sites(), widthPt, heightPt),
	}
}

// OutcomesChart draws the donut for sel
func (s *RenderService) OutcomesChart(w io.Writer, sel launch.SiteSelection, format string) error {
	if err := s.renderer.Donut(w, s.query.Outcomes(sel), format); err != nil {
		return errors.RenderError("outcome chart", err)
	}
	return nil
}

// ScatterChart draws the payload scatter for sel and rng
func (s *RenderService) ScatterChart(w io.Writer, sel launch.SiteSelection, rng launch.PayloadRange, format string) error {
	if err := s.renderer.Scatter(w, s.query.Scatter(sel, rng), format); err != nil {
		return errors.RenderError("scatter chart", err)
	}
	return nil
}

// Export writes the scatter points for sel and rng as a workbook
func (s *RenderService) Export(w io.Writer, sel launch.SiteSelection, rng launch.PayloadRange) error {
	if err := excel.WriteLaunches(w, s.query.Scatter(sel, rng).Points); err != nil {
		return errors.RenderError("export workbook", err)
	}
	return nil
}

// ReportMarkdown summarises the current view as markdown
func (s *RenderService) ReportMarkdown(sel launch.SiteSelection, rng launch.PayloadRange) string {
	ds := s.query.Dataset()
	outcomes := s.query.Outcomes(sel)
	scatter := s.query.Scatter(sel, rng)
	summary := s.query.Summary(sel)

	var b strings.Builder
	fmt.Fprintf(&b, "# Launch report: %s\n\n", mdText(sel.String()))
	fmt.Fprintf(&b, "Dataset `%s` (%d launches, id %s)\n\n", ds.Source(), ds.Len(), ds.ID())
	fmt.Fprintf(&b, "Payload range: %g kg to %g kg\n\n", rng.Low, rng.High)

	fmt.Fprintf(&b, "## %s\n\n", mdText(outcomes.Title()))
	if outcomes.IsEmpty() {
		b.WriteString("_No launches match the selection._\n\n")
	} else {
		b.WriteString("| Group | Launches | Share |\n|---|---:|---:|\n")
		for _, sl := range outcomes.Slices {
			fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", mdText(sl.Key), sl.Count, sl.Percent)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", mdText(scatter.Title()))
	fmt.Fprintf(&b, "%d launches in range.\n\n", len(scatter.Points))

	if len(summary.Sites) > 0 {
		b.WriteString("## Site statistics\n\n")
		b.WriteString("| Site | Launches | Success rate | Mean payload (kg) | Median payload (kg) |\n")
		b.WriteString("|---|---:|---:|---:|---:|\n")
		for _, site := range summary.Sites {
			fmt.Fprintf(&b, "| %s | %d | %.1f%% | %.0f | %.0f |\n",
				mdText(site.Site), site.Launches, 100*site.SuccessRate, site.PayloadMean, site.PayloadMedian)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportHTML renders ReportMarkdown to an HTML fragment
func (s *RenderService) ReportHTML(sel launch.SiteSelection, rng launch.PayloadRange) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	return markdown.ToHTML([]byte(s.ReportMarkdown(sel, rng)), p, renderer)
}

var mdCellReplacer = strings.NewReplacer("\r", " ", "\n", " ", "|", `\|`)

// mdText escapes a request or data value for use in markdown text and table
// cells. The report HTML is served unescaped, so nothing raw may pass through.
func mdText(s string) string {
	return mdCellReplacer.Replace(html.EscapeString(s))
}
