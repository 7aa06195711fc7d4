// internal/app/features/seodashboard/routes.go
package seodashboard

import "github.com/go-chi/chi/v5"

// Routes returns the dashboard router. Mount it at "/".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Get("/tabs", h.ServeTabs)

	r.Group(func(r chi.Router) {
		if h.Limiter != nil {
			r.Use(h.Limiter.Middleware)
		}
		r.Get("/charts/{name}.svg", h.ServeChart)
		r.Get("/export.csv", h.ServeExport)
	})
	return r
}
