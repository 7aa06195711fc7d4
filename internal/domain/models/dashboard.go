// internal/domain/models/dashboard.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trend is the ranking direction of a keyword.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Difficulty is the competitive difficulty of ranking for a keyword.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// MonthlyMetric is one chronological row of the traffic chart.
type MonthlyMetric struct {
	Name       string  `bson:"name" json:"name"` // Month label (Jan, Feb, ...)
	Traffic    int     `bson:"traffic" json:"traffic"`
	Conversion float64 `bson:"conversion" json:"conversion"` // Percent
	Goals      int     `bson:"goals" json:"goals"`
	Clicks     int     `bson:"clicks" json:"clicks"`
}

// DeviceShare is the share of traffic for one device category.
type DeviceShare struct {
	Name  string  `bson:"name" json:"name"`
	Value float64 `bson:"value" json:"value"` // Percent 0-100
}

// TrafficSource is the share of traffic for one acquisition channel.
type TrafficSource struct {
	Name  string  `bson:"name" json:"name"`
	Value float64 `bson:"value" json:"value"` // Percent 0-100
	Color string  `bson:"color" json:"color"` // Hex color, e.g. #5C6AC4
}

// Keyword is one row of the top performing keywords list.
type Keyword struct {
	Name       string     `bson:"name" json:"name"`
	Ranking    string     `bson:"ranking" json:"ranking"` // Display string, e.g. "#1"
	Trend      Trend      `bson:"trend" json:"trend"`
	Avatar     string     `bson:"avatar" json:"avatar"` // Initials
	Difficulty Difficulty `bson:"difficulty" json:"difficulty"`
	Color      string     `bson:"color" json:"color"`
}

// TabDescriptor defines one navigation tab of the dashboard.
type TabDescriptor struct {
	ID                 string `bson:"id" json:"id"`
	Label              string `bson:"label" json:"label"`
	AccessibilityLabel string `bson:"accessibility_label" json:"accessibility_label"`
	PanelID            string `bson:"panel_id" json:"panel_id"`
}

// Action is a clickable page or card action.
type Action struct {
	Label   string `bson:"label" json:"label"`
	Primary bool   `bson:"primary,omitempty" json:"primary,omitempty"`
	Href    string `bson:"href,omitempty" json:"href,omitempty"`
}

// Banner is the informational banner shown under the tab strip.
type Banner struct {
	Title  string `bson:"title" json:"title"`
	Status string `bson:"status" json:"status"` // info, success, warning, critical
	Body   string `bson:"body" json:"body"`     // HTML, sanitized before rendering
	Action Action `bson:"action" json:"action"`
}

// HealthScore backs the "Overall SEO Health" card.
type HealthScore struct {
	Score       int     `bson:"score" json:"score"` // 0-100
	FactorCount int     `bson:"factor_count" json:"factor_count"`
	LastUpdated string  `bson:"last_updated" json:"last_updated"`
	Delta       float64 `bson:"delta" json:"delta"` // Month over month, percent
	Caption     string  `bson:"caption" json:"caption"`
}

// QuickAction is one tile of the quick actions grid.
type QuickAction struct {
	Icon     string `bson:"icon" json:"icon"`
	Label    string `bson:"label" json:"label"`
	Gradient string `bson:"gradient,omitempty" json:"gradient,omitempty"` // Blank means the primary button style
}

// KPI backs one colored metric card.
type KPI struct {
	Background string  `bson:"background" json:"background"` // CSS background token
	Icon       string  `bson:"icon" json:"icon"`
	Title      string  `bson:"title" json:"title"`
	Value      string  `bson:"value" json:"value"` // Already formatted
	Trend      float64 `bson:"trend" json:"trend"`
	Suffix     string  `bson:"suffix" json:"suffix"` // Unit suffix, e.g. "%", " new"
}

// Dashboard is the complete, read-only data set rendered by the SEO
// dashboard. It is also the document shape of the dashboard_snapshots
// collection.
type Dashboard struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Header
	Title            string   `bson:"title" json:"title"`
	StatusBadge      string   `bson:"status_badge" json:"status_badge"`
	PrimaryAction    Action   `bson:"primary_action" json:"primary_action"`
	SecondaryActions []Action `bson:"secondary_actions" json:"secondary_actions"`

	Tabs   []TabDescriptor `bson:"tabs" json:"tabs"`
	Banner Banner          `bson:"banner" json:"banner"`
	Health HealthScore     `bson:"health" json:"health"`

	QuickActions []QuickAction `bson:"quick_actions" json:"quick_actions"`
	KPIs         []KPI         `bson:"kpis" json:"kpis"`

	// Chart tables
	Monthly       []MonthlyMetric `bson:"monthly" json:"monthly"`
	PeriodOptions []string        `bson:"period_options" json:"period_options"` // First entry is pressed
	Devices       []DeviceShare   `bson:"devices" json:"devices"`
	Sources       []TrafficSource `bson:"sources" json:"sources"`

	Keywords []Keyword `bson:"keywords" json:"keywords"`

	// Palette maps color names to hex values (primary, teal, purple, ...).
	Palette map[string]string `bson:"palette" json:"palette"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Color returns the palette color for name, or fallback when the palette
// has no such entry.
func (d Dashboard) Color(name, fallback string) string {
	if c, ok := d.Palette[name]; ok && c != "" {
		return c
	}
	return fallback
}

// Clone returns a deep copy so callers can never mutate a shared value.
func (d Dashboard) Clone() Dashboard {
	out := d
	out.SecondaryActions = append([]Action(nil), d.SecondaryActions...)
	out.Tabs = append([]TabDescriptor(nil), d.Tabs...)
	out.QuickActions = append([]QuickAction(nil), d.QuickActions...)
	out.KPIs = append([]KPI(nil), d.KPIs...)
	out.Monthly = append([]MonthlyMetric(nil), d.Monthly...)
	out.PeriodOptions = append([]string(nil), d.PeriodOptions...)
	out.Devices = append([]DeviceShare(nil), d.Devices...)
	out.Sources = append([]TrafficSource(nil), d.Sources...)
	out.Keywords = append([]Keyword(nil), d.Keywords...)
	if d.Palette != nil {
		out.Palette = make(map[string]string, len(d.Palette))
		for k, v := range d.Palette {
			out.Palette[k] = v
		}
	}
	return out
}
