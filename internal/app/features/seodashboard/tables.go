package seodashboard

import (
	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
	"github.com/dalemusser/seopulse/internal/domain/models"
)

// Chart names served under /charts/{name}.svg.
const (
	ChartTraffic = "traffic"
	ChartDevices = "devices"
	ChartSources = "sources"
)

type chartSpec struct {
	kind  chartrender.Kind
	table func(models.Dashboard) chartrender.Table
}

var chartSpecs = map[string]chartSpec{
	ChartTraffic: {kind: chartrender.KindArea, table: TrafficTable},
	ChartDevices: {kind: chartrender.KindDonut, table: DeviceTable},
	ChartSources: {kind: chartrender.KindHorizontalBar, table: SourceTable},
}

// chartFor returns the kind and table of the named chart.
func chartFor(name string, d models.Dashboard) (chartrender.Kind, chartrender.Table, bool) {
	spec, ok := chartSpecs[name]
	if !ok {
		return "", chartrender.Table{}, false
	}
	return spec.kind, spec.table(d), true
}

// TrafficTable is the combined area chart: traffic, goals and clicks per
// month, in chronological order.
func TrafficTable(d models.Dashboard) chartrender.Table {
	n := len(d.Monthly)
	t := chartrender.Table{Categories: make([]string, n)}
	traffic := make([]float64, n)
	goals := make([]float64, n)
	clicks := make([]float64, n)
	for i, m := range d.Monthly {
		t.Categories[i] = m.Name
		traffic[i] = float64(m.Traffic)
		goals[i] = float64(m.Goals)
		clicks[i] = float64(m.Clicks)
	}
	t.Series = []chartrender.Series{
		{Name: "Traffic", Color: d.Color("primary", "#5C6AC4"), Values: traffic},
		{Name: "Goals", Color: d.Color("teal", "#00A0AC"), Values: goals},
		{Name: "Clicks", Color: d.Color("purple", "#A26FF9"), Values: clicks},
	}
	return t
}

// DeviceTable is the device breakdown donut.
func DeviceTable(d models.Dashboard) chartrender.Table {
	palette := []string{
		d.Color("primary", "#5C6AC4"),
		d.Color("teal", "#00A0AC"),
		d.Color("purple", "#A26FF9"),
	}
	n := len(d.Devices)
	t := chartrender.Table{
		Categories: make([]string, n),
		Colors:     make([]string, n),
	}
	values := make([]float64, n)
	for i, dev := range d.Devices {
		t.Categories[i] = dev.Name
		t.Colors[i] = palette[i%len(palette)]
		values[i] = dev.Value
	}
	t.Series = []chartrender.Series{{Name: "Traffic", Color: palette[0], Values: values}}
	return t
}

// SourceTable is the traffic sources bar chart. Each bar keeps its own color.
func SourceTable(d models.Dashboard) chartrender.Table {
	n := len(d.Sources)
	t := chartrender.Table{
		Categories: make([]string, n),
		Colors:     make([]string, n),
	}
	values := make([]float64, n)
	for i, s := range d.Sources {
		t.Categories[i] = s.Name
		t.Colors[i] = s.Color
		values[i] = s.Value
	}
	t.Series = []chartrender.Series{{Name: "Traffic", Color: d.Color("primary", "#5C6AC4"), Values: values}}
	return t
}
