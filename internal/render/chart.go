// Package render draws per-kind cumulative series as a comparative line chart.
package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart"

	"github.com/livp123/evplot/internal/series"
	"github.com/livp123/evplot/pkg/errors"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultXLabel = "Time"
	DefaultYLabel = "Count"
)

// Options control chart appearance and output encoding.
type Options struct {
	Format string
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// FormatFromPath infers the chart format from a file extension.
// Unknown or missing extensions default to PNG.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.XLabel == "" {
		o.XLabel = DefaultXLabel
	}
	if o.YLabel == "" {
		o.YLabel = DefaultYLabel
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Chart renders one line per series to w, with axis labels and a legend
// entry per kind. Series without points are skipped; rendering with no
// plottable series at all is an error.
func Chart(list []series.Series, opts Options, w io.Writer) error {
	opts = opts.withDefaults()

	var provider chart.RendererProvider
	switch opts.Format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return errors.NewFormatError(opts.Format)
	}

	var chartSeries []chart.Series
	for _, s := range list {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = float64(p.Timestamp)
			ys[i] = float64(p.Count)
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Kind,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(chartSeries) == 0 {
		return errors.ErrNoSeries
	}

	graph := chart.Chart{
		Title:      opts.Title,
		TitleStyle: titleStyle(opts.Title),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:  20,
				Left: 20,
			},
		},
		XAxis: chart.XAxis{
			Name:      opts.XLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Name:      opts.YLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Series: chartSeries,
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	return graph.Render(provider, w)
}

func titleStyle(title string) chart.Style {
	if title == "" {
		// Zero value hides the title
		return chart.Style{}
	}
	return chart.StyleShow()
}
