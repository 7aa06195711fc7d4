// internal/app/features/seodashboard/charts.go
package seodashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ServeChart handles GET /charts/{name}.svg with a standalone SVG image of
// the traffic, devices or sources chart.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := chartSpecs[name]; !ok {
		http.NotFound(w, r)
		return
	}

	d, err := h.Source.Load(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard data failed", err, "Unable to load dashboard data.", "/")
		return
	}

	c, err := h.chart(r.Context(), name, d)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render chart failed", err, "Unable to draw the chart.", "/")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(c.SVG))
}
