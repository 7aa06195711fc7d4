// Package uikit is the component capability of the dashboard: cards,
// badges, buttons, banners, progress bars, tab strips and list items, each
// rendered to safe HTML for embedding in page templates. Views depend on the
// Kit interface; HTMLKit is the gomponents-backed implementation.
package uikit

import (
	"html/template"

	"github.com/dalemusser/seopulse/internal/app/system/display"
	"github.com/dalemusser/seopulse/internal/domain/models"
)

// Button describes a clickable button.
type Button struct {
	Label   string
	Icon    string // Optional glyph shown above the label
	Primary bool
	Plain   bool
	Slim    bool
	Pressed bool
	Href    string // Renders a link styled as a button when set
	Style   string // Inline background, e.g. a gradient
}

// Card describes a titled panel around pre-rendered content.
type Card struct {
	Title    string
	Controls template.HTML // Shown beside the title in place of Actions, e.g. a button group
	Actions  []models.Action
	Body     template.HTML
	Class    string
}

// PageHeader describes the title row at the top of a page.
type PageHeader struct {
	Title   string
	Badge   string // Optional success pill next to the title
	Actions []Button
}

// ScoreCard describes a headline 0-100 score: heading, meta pill, severity
// badge, progress bar and a month-over-month footer.
type ScoreCard struct {
	Title       string
	Subtitle    string
	Pill        string
	Score       int
	Change      display.Trend // Styles ChangeLabel positive or negative
	ChangeLabel string
	Caption     string
	Action      Button
	Class       string
}

// TabStrip describes the navigation tabs and their selection.
type TabStrip struct {
	ID       string // DOM id; fragment swaps target it
	Tabs     []models.TabDescriptor
	Selected int
	Href     func(index int) string // Full-page link for a tab
	Fragment func(index int) string // HTMX fragment URL for a tab
}

// Kit is the UIKit capability.
type Kit interface {
	Badge(status display.Status, label string) template.HTML
	Button(b Button) template.HTML
	ButtonGroup(labels []string, pressed int) template.HTML
	Banner(b models.Banner, body template.HTML) template.HTML
	Card(c Card) template.HTML
	ProgressBar(percent int) template.HTML
	TrendIndicator(t display.Trend) template.HTML
	KPICard(k models.KPI) template.HTML
	Tabs(s TabStrip) template.HTML
	KeywordItem(k models.Keyword) template.HTML

	PageHeader(p PageHeader) template.HTML
	ScoreCard(s ScoreCard) template.HTML
	Grid(columns int, items []template.HTML) template.HTML
	Columns(items ...template.HTML) template.HTML
	List(items []template.HTML) template.HTML
}
