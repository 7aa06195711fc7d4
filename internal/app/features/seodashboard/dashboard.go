// internal/app/features/seodashboard/dashboard.go
package seodashboard

import (
	"net/http"

	"github.com/dalemusser/seopulse/internal/app/system/metrics"
	"github.com/dalemusser/seopulse/internal/app/system/viewdata"
	"github.com/dalemusser/seopulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type dashboardData struct {
	viewdata.BaseVM
	SelectedTab models.TabDescriptor
	Sections    []Section
}

// ServeDashboard handles GET /. An optional ?tab=<index> selects a tab for
// this response only.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadView(w, r)
	if !ok {
		return
	}

	sections, err := h.Sections(r.Context(), v)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render dashboard sections failed", err, "Unable to draw the dashboard charts.", "/")
		return
	}

	tab := v.SelectedTab()
	metrics.DashboardRendersTotal.WithLabelValues("page", tab.ID).Inc()

	data := dashboardData{
		BaseVM:      viewdata.NewBaseVM(r, v.Data.Title, "/"),
		SelectedTab: tab,
		Sections:    sections,
	}
	templates.Render(w, r, "seo_dashboard", data)
}

// ServeTabs handles GET /tabs and returns only the tab strip, for in-place
// swaps when a tab is clicked.
func (h *Handler) ServeTabs(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadView(w, r)
	if !ok {
		return
	}

	metrics.DashboardRendersTotal.WithLabelValues("tabs", v.SelectedTab().ID).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(h.tabStrip(v)))
}

// loadView loads the data set and applies the tab query parameter. On
// failure the error page has been written and ok is false.
func (h *Handler) loadView(w http.ResponseWriter, r *http.Request) (*View, bool) {
	d, err := h.Source.Load(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard data failed", err, "Unable to load dashboard data.", "/")
		return nil, false
	}
	if h.BannerHTML != "" {
		d.Banner.Body = h.BannerHTML
	}

	v := NewView(d)
	raw := r.URL.Query().Get("tab")
	if v.ApplyTabParam(raw) {
		metrics.TabClampsTotal.Inc()
		h.Log.Debug("tab index clamped",
			zap.String("requested", raw),
			zap.Int("selected", v.Selected),
		)
	}
	return v, true
}
