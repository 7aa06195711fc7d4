package uikit

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dalemusser/seopulse/internal/app/system/display"
	"github.com/dalemusser/seopulse/internal/domain/models"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HTMLKit renders components with gomponents. The zero value is ready to use.
type HTMLKit struct{}

// New returns an HTMLKit.
func New() *HTMLKit {
	return &HTMLKit{}
}

var _ Kit = (*HTMLKit)(nil)

func render(n g.Node) template.HTML {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return ""
	}
	return template.HTML(b.String())
}

func attr(name, value string) g.Node {
	return g.Attr(name, value)
}

// Badge renders a status pill. A neutral status renders the plain style.
func (k *HTMLKit) Badge(status display.Status, label string) template.HTML {
	return render(badge(status, label))
}

func badge(status display.Status, label string) g.Node {
	class := "sp-badge"
	if status != display.StatusNeutral {
		class += " sp-badge--" + string(status)
	}
	return h.Span(h.Class(class), g.Text(label))
}

// Button renders a button, or a link styled as one when Href is set.
func (k *HTMLKit) Button(b Button) template.HTML {
	return render(button(b))
}

func button(b Button) g.Node {
	classes := []string{"sp-button"}
	if b.Primary {
		classes = append(classes, "sp-button--primary")
	}
	if b.Plain {
		classes = append(classes, "sp-button--plain")
	}
	if b.Slim {
		classes = append(classes, "sp-button--slim")
	}
	if b.Icon != "" {
		classes = append(classes, "sp-button--tile")
	}

	children := []g.Node{h.Class(strings.Join(classes, " "))}
	if b.Style != "" {
		children = append(children, attr("style", "background: "+b.Style+"; color: white"))
	}
	if b.Pressed {
		children = append(children, attr("aria-pressed", "true"))
	}
	if b.Icon != "" {
		children = append(children,
			h.Span(h.Class("sp-button__icon"), g.Text(b.Icon)),
			h.Span(h.Class("sp-button__label"), g.Text(b.Label)),
		)
	} else {
		children = append(children, g.Text(b.Label))
	}

	if b.Href != "" {
		return h.A(append([]g.Node{h.Href(b.Href)}, children...)...)
	}
	return h.Button(append([]g.Node{h.Type("button")}, children...)...)
}

// ButtonGroup renders a segmented group of slim buttons with one pressed.
func (k *HTMLKit) ButtonGroup(labels []string, pressed int) template.HTML {
	items := make([]g.Node, 0, len(labels)+2)
	items = append(items, h.Class("sp-button-group"), attr("role", "group"))
	for i, l := range labels {
		items = append(items, button(Button{Label: l, Slim: true, Pressed: i == pressed}))
	}
	return render(h.Div(items...))
}

// Banner renders the informational banner. body must already be sanitized.
func (k *HTMLKit) Banner(b models.Banner, body template.HTML) template.HTML {
	status := b.Status
	if status == "" {
		status = string(display.StatusInfo)
	}
	return render(h.Div(
		h.Class("sp-banner sp-banner--"+status),
		attr("role", "status"),
		h.H2(h.Class("sp-banner__title"), g.Text(b.Title)),
		h.Div(h.Class("sp-banner__body"), g.Raw(string(body))),
		g.If(b.Action.Label != "", h.Div(h.Class("sp-banner__actions"), button(Button{Label: b.Action.Label, Href: b.Action.Href}))),
	))
}

// Card renders a titled panel.
func (k *HTMLKit) Card(c Card) template.HTML {
	class := "sp-card"
	if c.Class != "" {
		class += " " + c.Class
	}

	var header g.Node
	switch {
	case c.Controls != "":
		header = h.Div(h.Class("sp-card__header"),
			h.Div(h.Class("sp-card__title-row"),
				h.H2(h.Class("sp-heading"), g.Text(c.Title)),
				g.Raw(string(c.Controls)),
			),
		)
	case c.Title != "" || len(c.Actions) > 0:
		actions := make([]g.Node, 0, len(c.Actions)+1)
		actions = append(actions, h.Class("sp-card__actions"))
		for _, a := range c.Actions {
			actions = append(actions, button(Button{Label: a.Label, Plain: true, Href: a.Href}))
		}
		header = h.Div(h.Class("sp-card__header"),
			h.H2(h.Class("sp-heading"), g.Text(c.Title)),
			h.Div(actions...),
		)
	}

	return render(h.Section(
		h.Class(class),
		header,
		h.Div(h.Class("sp-card__section"), g.Raw(string(c.Body))),
	))
}

// ProgressBar renders a 0-100 bar; out of range values are clamped.
func (k *HTMLKit) ProgressBar(percent int) template.HTML {
	p := display.ClampPercent(percent)
	return render(h.Div(
		h.Class("sp-progress"),
		attr("role", "progressbar"),
		attr("aria-valuemin", "0"),
		attr("aria-valuemax", "100"),
		attr("aria-valuenow", fmt.Sprint(p)),
		h.Div(h.Class("sp-progress__fill"), attr("style", fmt.Sprintf("width: %d%%", p))),
	))
}

// TrendIndicator renders "↑ 3%" styled positive or negative.
func (k *HTMLKit) TrendIndicator(t display.Trend) template.HTML {
	return render(trend(t, "sp-trend"))
}

func trend(t display.Trend, class string) g.Node {
	return h.Span(
		h.Class(class+" sp-trend--"+t.Variation()),
		attr("aria-label", t.String()),
		g.Text(t.Label()),
	)
}

// KPICard renders a colored metric card. Values are shown as given.
func (k *HTMLKit) KPICard(m models.KPI) template.HTML {
	return render(h.Div(
		h.Class("sp-kpi"),
		attr("style", "background: "+m.Background),
		h.Div(h.Class("sp-kpi__top"),
			h.Div(h.Class("sp-kpi__title"), g.Text(m.Title)),
			h.Div(h.Class("sp-kpi__icon"), g.Text(m.Icon)),
		),
		h.Div(h.Class("sp-kpi__value"), g.Text(m.Value)),
		trend(display.TrendOf(m.Trend, m.Suffix), "sp-kpi__trend"),
	))
}

// Tabs renders the tab strip. Each tab is a link to the full page and, with
// HTMX, swaps just the strip in place.
func (k *HTMLKit) Tabs(s TabStrip) template.HTML {
	items := make([]g.Node, 0, len(s.Tabs)+3)
	items = append(items, h.Class("sp-tabs"), attr("role", "tablist"))
	if s.ID != "" {
		items = append(items, h.ID(s.ID))
	}

	for i, t := range s.Tabs {
		selected := i == s.Selected
		class := "sp-tab"
		if selected {
			class += " sp-tab--selected"
		}
		link := []g.Node{
			h.Class(class),
			h.ID(t.ID),
			attr("role", "tab"),
			attr("aria-selected", fmt.Sprint(selected)),
			attr("aria-controls", t.PanelID),
			attr("aria-label", t.AccessibilityLabel),
			g.Text(t.Label),
		}
		if s.Href != nil {
			link = append(link, h.Href(s.Href(i)))
		}
		if s.Fragment != nil && s.ID != "" {
			link = append(link,
				attr("hx-get", s.Fragment(i)),
				attr("hx-target", "#"+s.ID),
				attr("hx-swap", "outerHTML"),
			)
		}
		items = append(items, h.Li(h.Class("sp-tabs__item"), h.A(link...)))
	}

	return render(h.Nav(h.Ul(items...)))
}

// KeywordItem renders one row of the keyword list: avatar, name, ranking
// badge (toned by trend), difficulty badge and an optimize button.
func (k *HTMLKit) KeywordItem(kw models.Keyword) template.HTML {
	return render(h.Li(
		h.Class("sp-list__item"),
		h.ID("keyword-"+slug(kw.Name)),
		attr("aria-label", "View details for "+kw.Name),
		h.Span(h.Class("sp-avatar"), attr("style", "background-color: "+kw.Color), g.Text(kw.Avatar)),
		h.Div(h.Class("sp-list__content"),
			h.Strong(g.Text(kw.Name)),
			h.Div(h.Class("sp-list__badges"),
				badge(display.KeywordStatus(kw.Trend), kw.Ranking),
				badge(display.StatusNeutral, string(kw.Difficulty)),
			),
		),
		button(Button{Label: "Optimize", Primary: true, Slim: true}),
	))
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// PageHeader renders the page title, its optional badge and the page
// actions, right aligned.
func (k *HTMLKit) PageHeader(p PageHeader) template.HTML {
	actions := make([]g.Node, 0, len(p.Actions)+1)
	actions = append(actions, h.Class("sp-header__actions"))
	for _, b := range p.Actions {
		actions = append(actions, button(b))
	}
	return render(h.Header(
		h.Class("sp-header"),
		h.Div(h.Class("sp-header__title"),
			h.H1(h.Class("sp-title"), g.Text(p.Title)),
			g.If(p.Badge != "", badge(display.StatusSuccess, p.Badge)),
		),
		h.Div(actions...),
	))
}

// ScoreCard renders a score card. The badge tone follows display.Severity
// and the bar is clamped to 0-100.
func (k *HTMLKit) ScoreCard(s ScoreCard) template.HTML {
	p := display.ClampPercent(s.Score)
	body := render(g.Group([]g.Node{
		h.Div(h.Class("sp-health__top"),
			h.Div(
				h.H2(h.Class("sp-heading"), g.Text(s.Title)),
				h.Div(h.Class("sp-subdued"), g.Text(s.Subtitle)),
			),
			h.Div(h.Class("sp-health__meta"),
				g.If(s.Pill != "", h.Span(h.Class("sp-pill"), g.Text(s.Pill))),
				badge(display.Severity(s.Score), fmt.Sprintf("%d%%", s.Score)),
			),
		),
		g.Raw(string(k.ProgressBar(p))),
		h.Div(h.Class("sp-health__footer"),
			h.Div(
				h.Span(h.Class("sp-text--"+s.Change.Variation()), g.Text(s.ChangeLabel)),
				g.If(s.Caption != "", h.Div(h.Class("sp-subdued"), g.Text(s.Caption))),
			),
			g.If(s.Action.Label != "", button(s.Action)),
		),
	}))
	return k.Card(Card{Body: body, Class: s.Class})
}

// Grid lays items out in equal columns.
func (k *HTMLKit) Grid(columns int, items []template.HTML) template.HTML {
	return render(h.Div(append([]g.Node{h.Class(fmt.Sprintf("sp-grid sp-grid--%d", columns))}, raw(items)...)...))
}

// Columns places items side by side.
func (k *HTMLKit) Columns(items ...template.HTML) template.HTML {
	return render(h.Div(append([]g.Node{h.Class("sp-columns")}, raw(items)...)...))
}

// List wraps list items, such as KeywordItem output, in a list.
func (k *HTMLKit) List(items []template.HTML) template.HTML {
	return render(h.Ul(append([]g.Node{h.Class("sp-list")}, raw(items)...)...))
}

func raw(items []template.HTML) []g.Node {
	nodes := make([]g.Node, len(items))
	for i, it := range items {
		nodes[i] = g.Raw(string(it))
	}
	return nodes
}
