// Package display holds the pure presentation rules of the SEO dashboard:
// badge severities, trend indicators and number formatting. Nothing here
// renders HTML; the uikit package turns these values into markup.
package display

import (
	"math"
	"strconv"

	"github.com/dalemusser/seopulse/internal/domain/models"
)

// Status is a badge/banner tone.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusInfo     Status = "info"
	StatusNeutral  Status = ""
)

// Severity thresholds for score badges.
const (
	SuccessThreshold = 80
	WarningThreshold = 60
)

// Severity maps a 0-100 score to a badge status.
func Severity(score int) Status {
	switch {
	case score >= SuccessThreshold:
		return StatusSuccess
	case score >= WarningThreshold:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// KeywordStatus maps a keyword ranking trend to the status of its ranking
// badge. Unknown trends get the info tone like stable ones.
func KeywordStatus(t models.Trend) Status {
	switch t {
	case models.TrendUp:
		return StatusSuccess
	case models.TrendDown:
		return StatusWarning
	default:
		return StatusInfo
	}
}

// Trend glyphs.
const (
	GlyphUp   = "↑"
	GlyphDown = "↓"
)

// Trend is a rendered trend indicator. Zero deltas are non-positive and
// therefore shown as "down".
type Trend struct {
	Up        bool
	Magnitude float64
	Suffix    string
}

// TrendOf builds the indicator for delta with the caller's unit suffix
// (e.g. "%", " positions", " new").
func TrendOf(delta float64, suffix string) Trend {
	return Trend{
		Up:        delta > 0,
		Magnitude: math.Abs(delta),
		Suffix:    suffix,
	}
}

// Direction is "up" or "down".
func (t Trend) Direction() string {
	if t.Up {
		return "up"
	}
	return "down"
}

// Glyph is the arrow shown before the magnitude.
func (t Trend) Glyph() string {
	if t.Up {
		return GlyphUp
	}
	return GlyphDown
}

// Variation is the text style: "positive" or "negative".
func (t Trend) Variation() string {
	if t.Up {
		return "positive"
	}
	return "negative"
}

// Amount is the magnitude with its suffix, e.g. "2.5%".
func (t Trend) Amount() string {
	return FormatNumber(t.Magnitude) + t.Suffix
}

// Label is the visible text, e.g. "↑ 3 new".
func (t Trend) Label() string {
	return t.Glyph() + " " + t.Amount()
}

// String is the accessible text form, e.g. "up, 3%".
func (t Trend) String() string {
	return t.Direction() + ", " + t.Amount()
}

// FormatTrend is shorthand for TrendOf(delta, suffix).String().
func FormatTrend(delta float64, suffix string) string {
	return TrendOf(delta, suffix).String()
}

// FormatNumber prints v with the fewest digits that round-trip, so 3 stays
// "3" and 2.5 stays "2.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSignedPercent prints a month-over-month delta, e.g. "+5.2%".
func FormatSignedPercent(v float64) string {
	if v > 0 {
		return "+" + FormatNumber(v) + "%"
	}
	return FormatNumber(v) + "%"
}

// ClampPercent bounds a progress value to 0-100.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
