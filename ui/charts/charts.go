// Package charts draws the dashboard's donut and scatter charts with gonum/plot.
package charts

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"launchdash/domain/launch"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Formats the renderer can produce
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DonutHole is the inner radius as a fraction of the outer radius
const DonutHole = 0.3

var (
	successColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	failureColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Renderer turns aggregator output into chart images. Site colours are fixed
// at construction so both charts agree.
type Renderer struct {
	width   vg.Length
	height  vg.Length
	palette map[string]color.Color
}

// NewRenderer builds a renderer for the given site list and size in points
func NewRenderer(sites []string, widthPt, heightPt float64) *Renderer {
	palette := make(map[string]color.Color, len(sites))
	for i, site := range sites {
		palette[site] = plotutil.Color(i)
	}
	return &Renderer{
		width:   vg.Points(widthPt),
		height:  vg.Points(heightPt),
		palette: palette,
	}
}

// ParseFormat validates an image format name
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

// ContentType returns the MIME type for a format
func ContentType(format string) string {
	if format == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// siteColor falls back to grey for sites not known at construction
func (r *Renderer) siteColor(site string) color.Color {
	if c, ok := r.palette[site]; ok {
		return c
	}
	return color.Gray{Y: 0x99}
}

func outcomeColor(label string) color.Color {
	if label == launch.OutcomeSuccess.Label() {
		return successColor
	}
	return failureColor
}

func (r *Renderer) write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(r.width, r.height, format)
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", format, err)
	}
	return nil
}
