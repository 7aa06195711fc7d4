package chartrender

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/dalemusser/seopulse/internal/app/system/display"
	"github.com/dalemusser/seopulse/internal/app/system/metrics"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

// Default canvas sizes, matching the card heights of the dashboard.
const (
	DefaultWidth       = 960
	DefaultAreaHeight  = 320
	DefaultSmallHeight = 240
)

// SVGRenderer draws charts with go-chart and returns inline SVG.
type SVGRenderer struct {
	Width       int
	AreaHeight  int
	SmallHeight int
	Log         *zap.Logger
}

// NewSVGRenderer returns a renderer with the default sizes.
func NewSVGRenderer(logger *zap.Logger) *SVGRenderer {
	return &SVGRenderer{
		Width:       DefaultWidth,
		AreaHeight:  DefaultAreaHeight,
		SmallHeight: DefaultSmallHeight,
		Log:         logger,
	}
}

// Render implements Renderer.
func (r *SVGRenderer) Render(ctx context.Context, kind Kind, t Table) (Chart, error) {
	if err := ctx.Err(); err != nil {
		return Chart{}, err
	}
	if err := Validate(kind, t); err != nil {
		return Chart{}, err
	}

	start := time.Now()
	c := Describe(kind, t)

	var buf bytes.Buffer
	var err error
	switch kind {
	case KindArea:
		err = r.drawArea(&buf, t)
	case KindDonut:
		err = r.drawDonut(&buf, c.Segments)
	case KindHorizontalBar:
		err = r.drawBars(&buf, c.Segments)
	}
	if err != nil {
		return Chart{}, fmt.Errorf("render %s chart: %w", kind, err)
	}

	metrics.ChartRenderSeconds.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if r.Log != nil {
		r.Log.Debug("chart rendered",
			zap.String("kind", string(kind)),
			zap.Int("categories", len(t.Categories)),
			zap.Int("bytes", buf.Len()),
		)
	}

	c.SVG = template.HTML(buf.String())
	return c, nil
}

func (r *SVGRenderer) drawArea(buf *bytes.Buffer, t Table) error {
	xs := make([]float64, len(t.Categories))
	ticks := make([]chart.Tick, len(t.Categories))
	for i, name := range t.Categories {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: escape(name)}
	}

	series := make([]chart.Series, 0, len(t.Series))
	for _, s := range t.Series {
		col := hexColor(s.Color)
		series = append(series, chart.ContinuousSeries{
			Name:    escape(s.Name),
			XValues: xs,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				FillColor:   col.WithAlpha(48),
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	ch := chart.Chart{
		Width:      r.Width,
		Height:     r.AreaHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.SVG, buf)
}

func (r *SVGRenderer) drawDonut(buf *bytes.Buffer, segs []Segment) error {
	values := make([]chart.Value, len(segs))
	for i, s := range segs {
		values[i] = chart.Value{
			Label: escape(s.PercentLabel()),
			Value: s.Value,
			Style: chart.Style{FillColor: hexColor(s.Color), StrokeColor: drawing.ColorWhite},
		}
	}

	donut := chart.DonutChart{
		Width:  r.SmallHeight,
		Height: r.SmallHeight,
		Values: values,
	}
	return donut.Render(chart.SVG, buf)
}

func (r *SVGRenderer) drawBars(buf *bytes.Buffer, segs []Segment) error {
	bars := make([]chart.StackedBar, len(segs))
	for i, s := range segs {
		bars[i] = chart.StackedBar{
			Name: escape(s.Label),
			Values: []chart.Value{{
				Label: escape(display.FormatNumber(s.Value) + "%"),
				Value: s.Value,
				Style: chart.Style{FillColor: hexColor(s.Color), StrokeColor: hexColor(s.Color)},
			}},
		}
	}

	bc := chart.StackedBarChart{
		Width:        r.Width / 2,
		Height:       r.SmallHeight,
		IsHorizontal: true,
		BarSpacing:   12,
		Background:   chart.Style{Padding: chart.Box{Top: 5, Right: 30, Left: 20, Bottom: 5}},
		Bars:         bars,
	}
	return bc.Render(chart.SVG, buf)
}

// go-chart writes label text into the SVG verbatim.
func escape(s string) string {
	return html.EscapeString(s)
}

func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(s)
}
