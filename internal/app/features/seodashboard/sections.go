package seodashboard

import (
	"context"
	"fmt"
	"html/template"

	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
	"github.com/dalemusser/seopulse/internal/app/system/display"
	"github.com/dalemusser/seopulse/internal/app/system/htmlsanitize"
	"github.com/dalemusser/seopulse/internal/app/system/timeouts"
	"github.com/dalemusser/seopulse/internal/app/system/uikit"
	"github.com/dalemusser/seopulse/internal/domain/models"
)

// Section IDs of the dashboard page.
const (
	SectionHeader       = "header"
	SectionTabs         = "tabs"
	SectionBanner       = "banner"
	SectionHealth       = "health"
	SectionQuickActions = "quick-actions"
	SectionKPIs         = "kpis"
	SectionTraffic      = "traffic"
	SectionBreakdown    = "breakdown"
	SectionKeywords     = "keywords"
)

// SectionOrder is the top to bottom order of the page.
var SectionOrder = []string{
	SectionHeader,
	SectionTabs,
	SectionBanner,
	SectionHealth,
	SectionQuickActions,
	SectionKPIs,
	SectionTraffic,
	SectionBreakdown,
	SectionKeywords,
}

// TabStripID is the DOM id of the tab strip; /tabs fragments replace it.
const TabStripID = "sp-tabs"

// Section is one rendered block of the page.
type Section struct {
	ID   string
	HTML template.HTML
}

// Sections renders every block of the page in SectionOrder. The content does
// not depend on the selected tab; only the tab strip does.
func (h *Handler) Sections(ctx context.Context, v *View) ([]Section, error) {
	d := v.Data

	traffic, err := h.chart(ctx, ChartTraffic, d)
	if err != nil {
		return nil, err
	}
	devices, err := h.chart(ctx, ChartDevices, d)
	if err != nil {
		return nil, err
	}
	sources, err := h.chart(ctx, ChartSources, d)
	if err != nil {
		return nil, err
	}

	return []Section{
		{ID: SectionHeader, HTML: h.header(d)},
		{ID: SectionTabs, HTML: h.tabStrip(v)},
		{ID: SectionBanner, HTML: h.Kit.Banner(d.Banner, htmlsanitize.SanitizeToHTML(d.Banner.Body))},
		{ID: SectionHealth, HTML: h.healthCard(d.Health)},
		{ID: SectionQuickActions, HTML: h.quickActions(d.QuickActions)},
		{ID: SectionKPIs, HTML: h.kpiCards(d.KPIs)},
		{ID: SectionTraffic, HTML: h.trafficCard(d, traffic)},
		{ID: SectionBreakdown, HTML: h.breakdown(devices, sources)},
		{ID: SectionKeywords, HTML: h.keywordList(d.Keywords)},
	}, nil
}

func (h *Handler) chart(ctx context.Context, name string, d models.Dashboard) (chartrender.Chart, error) {
	kind, table, _ := chartFor(name, d)

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Render())
	defer cancel()

	c, err := h.Charts.Render(ctx, kind, table)
	if err != nil {
		return chartrender.Chart{}, fmt.Errorf("%s chart: %w", name, err)
	}
	return c, nil
}

func (h *Handler) tabStrip(v *View) template.HTML {
	return h.Kit.Tabs(uikit.TabStrip{
		ID:       TabStripID,
		Tabs:     v.Data.Tabs,
		Selected: v.Selected,
		Href:     tabHref,
		Fragment: tabFragment,
	})
}

func (h *Handler) header(d models.Dashboard) template.HTML {
	actions := make([]uikit.Button, 0, len(d.SecondaryActions)+1)
	for _, a := range d.SecondaryActions {
		actions = append(actions, uikit.Button{Label: a.Label, Href: a.Href})
	}
	actions = append(actions, uikit.Button{
		Label:   d.PrimaryAction.Label,
		Primary: d.PrimaryAction.Primary,
		Href:    d.PrimaryAction.Href,
	})
	return h.Kit.PageHeader(uikit.PageHeader{
		Title:   d.Title,
		Badge:   d.StatusBadge,
		Actions: actions,
	})
}

func (h *Handler) healthCard(hs models.HealthScore) template.HTML {
	return h.Kit.ScoreCard(uikit.ScoreCard{
		Title:       "Overall SEO Health",
		Subtitle:    fmt.Sprintf("Based on %d ranking factors", hs.FactorCount),
		Pill:        "Last updated: " + hs.LastUpdated,
		Score:       hs.Score,
		Change:      display.TrendOf(hs.Delta, "%"),
		ChangeLabel: display.FormatSignedPercent(hs.Delta) + " vs last month",
		Caption:     hs.Caption,
		Action:      uikit.Button{Label: "View details", Plain: true},
		Class:       "sp-card--health",
	})
}

func (h *Handler) quickActions(qas []models.QuickAction) template.HTML {
	tiles := make([]template.HTML, len(qas))
	for i, qa := range qas {
		tiles[i] = h.Kit.Button(uikit.Button{
			Label:   qa.Label,
			Icon:    qa.Icon,
			Primary: qa.Gradient == "",
			Style:   qa.Gradient,
		})
	}
	return h.Kit.Card(uikit.Card{
		Title: "Quick Actions",
		Body:  h.Kit.Grid(4, tiles),
	})
}

func (h *Handler) kpiCards(kpis []models.KPI) template.HTML {
	cards := make([]template.HTML, len(kpis))
	for i, k := range kpis {
		cards[i] = h.Kit.KPICard(k)
	}
	return h.Kit.Grid(4, cards)
}

func (h *Handler) trafficCard(d models.Dashboard, c chartrender.Chart) template.HTML {
	return h.Kit.Card(uikit.Card{
		Title:    "Organic Traffic & Conversions",
		Controls: h.Kit.ButtonGroup(d.PeriodOptions, 0),
		Body:     c.SVG,
		Class:    "sp-card--chart",
	})
}

func (h *Handler) breakdown(devices, sources chartrender.Chart) template.HTML {
	return h.Kit.Columns(
		h.Kit.Card(uikit.Card{Title: "Device Breakdown", Body: devices.SVG, Class: "sp-card--chart"}),
		h.Kit.Card(uikit.Card{Title: "Traffic Sources", Body: sources.SVG, Class: "sp-card--chart"}),
	)
}

func (h *Handler) keywordList(kws []models.Keyword) template.HTML {
	items := make([]template.HTML, len(kws))
	for i, k := range kws {
		items[i] = h.Kit.KeywordItem(k)
	}
	return h.Kit.Card(uikit.Card{
		Title:   "Top Performing Keywords",
		Actions: []models.Action{{Label: "View all"}},
		Body:    h.Kit.List(items),
	})
}
