package chartrender_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
)

func deviceTable() chartrender.Table {
	return chartrender.Table{
		Categories: []string{"Mobile", "Desktop", "Tablet"},
		Series:     []chartrender.Series{{Name: "Traffic", Color: "#5C6AC4", Values: []float64{54, 36, 10}}},
		Colors:     []string{"#5C6AC4", "#00A0AC", "#A26FF9"},
	}
}

func monthlyTable() chartrender.Table {
	return chartrender.Table{
		Categories: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"},
		Series: []chartrender.Series{
			{Name: "Traffic", Color: "#5C6AC4", Values: []float64{4000, 4200, 4500, 4700, 4900, 5200, 5500}},
			{Name: "Goals", Color: "#00A0AC", Values: []float64{120, 132, 145, 159, 176, 210, 235}},
			{Name: "Clicks", Color: "#A26FF9", Values: []float64{5230, 5450, 5780, 6120, 6340, 6780, 7120}},
		},
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"area", "donut", "hbar"} {
		if _, err := chartrender.ParseKind(s); err != nil {
			t.Errorf("ParseKind(%q) returned error: %v", s, err)
		}
	}
	if _, err := chartrender.ParseKind("radar"); !errors.Is(err, chartrender.ErrUnknownKind) {
		t.Errorf("ParseKind(radar): got %v, want ErrUnknownKind", err)
	}
}

func TestValidate(t *testing.T) {
	if err := chartrender.Validate(chartrender.KindArea, monthlyTable()); err != nil {
		t.Fatalf("Validate monthly table: %v", err)
	}

	if err := chartrender.Validate(chartrender.KindDonut, chartrender.Table{}); !errors.Is(err, chartrender.ErrEmptyTable) {
		t.Errorf("empty table: got %v, want ErrEmptyTable", err)
	}

	bad := deviceTable()
	bad.Series[0].Values = []float64{54, 36}
	if err := chartrender.Validate(chartrender.KindDonut, bad); !errors.Is(err, chartrender.ErrSeriesLength) {
		t.Errorf("short series: got %v, want ErrSeriesLength", err)
	}

	if err := chartrender.Validate("pie3d", deviceTable()); !errors.Is(err, chartrender.ErrUnknownKind) {
		t.Errorf("unknown kind: got %v, want ErrUnknownKind", err)
	}
}

func TestDescribe_DeviceSegmentsKeepValuesAndOrder(t *testing.T) {
	c := chartrender.Describe(chartrender.KindDonut, deviceTable())

	want := []struct {
		label   string
		percent float64
		color   string
	}{
		{"Mobile", 54, "#5C6AC4"},
		{"Desktop", 36, "#00A0AC"},
		{"Tablet", 10, "#A26FF9"},
	}

	if len(c.Segments) != len(want) {
		t.Fatalf("segments: got %d, want %d", len(c.Segments), len(want))
	}
	for i, w := range want {
		s := c.Segments[i]
		if s.Label != w.label {
			t.Errorf("segment %d label: got %q, want %q", i, s.Label, w.label)
		}
		if s.Percent != w.percent {
			t.Errorf("segment %d percent: got %v, want %v", i, s.Percent, w.percent)
		}
		if s.Color != w.color {
			t.Errorf("segment %d color: got %q, want %q", i, s.Color, w.color)
		}
	}

	if got := c.Segments[0].PercentLabel(); got != "Mobile 54%" {
		t.Errorf("PercentLabel: got %q, want %q", got, "Mobile 54%")
	}
}

func TestDescribe_AreaKeepsChronologicalAxis(t *testing.T) {
	c := chartrender.Describe(chartrender.KindArea, monthlyTable())

	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}
	if len(c.Axis) != len(want) {
		t.Fatalf("axis: got %v, want %v", c.Axis, want)
	}
	for i := range want {
		if c.Axis[i] != want[i] {
			t.Errorf("axis[%d]: got %q, want %q", i, c.Axis[i], want[i])
		}
	}
	if len(c.Segments) != 0 {
		t.Errorf("area charts have no segments, got %d", len(c.Segments))
	}
	if len(c.Series) != 3 || c.Series[0] != "Traffic" || c.Series[2] != "Clicks" {
		t.Errorf("series legend: got %v", c.Series)
	}
}

func TestDescribe_BarFallsBackToSeriesColor(t *testing.T) {
	tbl := chartrender.Table{
		Categories: []string{"Organic", "Social"},
		Series:     []chartrender.Series{{Name: "Traffic", Color: "#111111", Values: []float64{65, 20}}},
		Colors:     []string{"#5C6AC4"},
	}
	c := chartrender.Describe(chartrender.KindHorizontalBar, tbl)
	if c.Segments[0].Color != "#5C6AC4" {
		t.Errorf("segment 0 color: got %q", c.Segments[0].Color)
	}
	if c.Segments[1].Color != "#111111" {
		t.Errorf("segment 1 color: got %q, want series color", c.Segments[1].Color)
	}
}

func TestDescribe_ZeroTotal(t *testing.T) {
	tbl := chartrender.Table{
		Categories: []string{"A", "B"},
		Series:     []chartrender.Series{{Name: "S", Values: []float64{0, 0}}},
	}
	c := chartrender.Describe(chartrender.KindDonut, tbl)
	for _, s := range c.Segments {
		if s.Percent != 0 {
			t.Errorf("segment %q percent: got %v, want 0", s.Label, s.Percent)
		}
	}
}

func TestKey_DependsOnContent(t *testing.T) {
	a, err := chartrender.Key(chartrender.KindDonut, deviceTable())
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	b, _ := chartrender.Key(chartrender.KindDonut, deviceTable())
	if a != b {
		t.Error("same table should produce the same key")
	}

	changed := deviceTable()
	changed.Series[0].Values[0] = 55
	c, _ := chartrender.Key(chartrender.KindDonut, changed)
	if a == c {
		t.Error("changed table should produce a different key")
	}

	d, _ := chartrender.Key(chartrender.KindHorizontalBar, deviceTable())
	if a == d {
		t.Error("different kinds should produce different keys")
	}
}
