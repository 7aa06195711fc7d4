// Package chartrender is the charting capability of the dashboard. A
// Renderer takes a chart kind plus a tabular data set and returns a
// rendered chart; views depend only on the Renderer interface.
package chartrender

import (
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Kind selects the chart type.
type Kind string

const (
	KindArea          Kind = "area"
	KindDonut         Kind = "donut"
	KindHorizontalBar Kind = "hbar"
)

var (
	ErrUnknownKind  = errors.New("chartrender: unknown chart kind")
	ErrEmptyTable   = errors.New("chartrender: table has no categories or series")
	ErrSeriesLength = errors.New("chartrender: series length does not match categories")
)

// Series is one named row of values, one value per category.
type Series struct {
	Name   string
	Color  string // Hex color
	Values []float64
}

// Table is the tabular input of a chart. Categories are the x axis of area
// charts and the slices or bars of donut and bar charts, in display order.
type Table struct {
	Categories []string
	Series     []Series
	Colors     []string // Optional per-category colors for donut and bar charts
}

// Segment is one slice of a donut or one bar of a bar chart.
type Segment struct {
	Label   string
	Value   float64
	Percent float64 // Share of the total, 0-100
	Color   string
}

// Chart is a rendered chart.
type Chart struct {
	Kind     Kind
	Axis     []string  // Categories in input order
	Series   []string  // Legend entries
	Segments []Segment // Donut and bar charts only
	SVG      template.HTML
}

// Renderer is the ChartRenderer capability.
type Renderer interface {
	Render(ctx context.Context, kind Kind, t Table) (Chart, error)
}

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindArea, KindDonut, KindHorizontalBar:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Validate checks that t can be drawn as kind. Donut and bar charts use the
// first series only.
func Validate(kind Kind, t Table) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if len(t.Categories) == 0 || len(t.Series) == 0 {
		return ErrEmptyTable
	}
	for _, s := range t.Series {
		if len(s.Values) != len(t.Categories) {
			return fmt.Errorf("%w: series %q has %d values for %d categories",
				ErrSeriesLength, s.Name, len(s.Values), len(t.Categories))
		}
	}
	return nil
}

// Describe computes everything about a chart except its markup: the axis,
// the legend and, for donut and bar charts, the segments.
func Describe(kind Kind, t Table) Chart {
	c := Chart{
		Kind: kind,
		Axis: append([]string(nil), t.Categories...),
	}
	for _, s := range t.Series {
		c.Series = append(c.Series, s.Name)
	}
	if kind == KindArea || len(t.Series) == 0 {
		return c
	}

	values := t.Series[0].Values
	var total float64
	for _, v := range values {
		total += v
	}
	c.Segments = make([]Segment, len(t.Categories))
	for i, name := range t.Categories {
		seg := Segment{Label: name, Value: values[i], Color: t.categoryColor(i)}
		if total > 0 {
			seg.Percent = values[i] * 100 / total
		}
		c.Segments[i] = seg
	}
	return c
}

func (t Table) categoryColor(i int) string {
	if i < len(t.Colors) && t.Colors[i] != "" {
		return t.Colors[i]
	}
	if len(t.Series) > 0 {
		return t.Series[0].Color
	}
	return ""
}

// Clone returns a copy that shares no slices with c.
func (c Chart) Clone() Chart {
	out := c
	out.Axis = append([]string(nil), c.Axis...)
	out.Series = append([]string(nil), c.Series...)
	out.Segments = append([]Segment(nil), c.Segments...)
	return out
}

// PercentLabel is the donut slice label, e.g. "Mobile 54%".
func (s Segment) PercentLabel() string {
	return fmt.Sprintf("%s %.0f%%", s.Label, s.Percent)
}
