// internal/app/features/seodashboard/export.go
package seodashboard

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dalemusser/seopulse/internal/app/system/csvutil"
	"github.com/dalemusser/seopulse/internal/app/system/display"
	"github.com/dalemusser/seopulse/internal/app/system/metrics"
	"github.com/dalemusser/seopulse/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportHeader is the column row of the CSV export.
var ExportHeader = []string{"table", "row", "field", "value"}

// ServeExport handles GET /export.csv: every table of the dashboard as one
// long-format CSV. The first line is a comment carrying the report id.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	d, err := h.Source.Load(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard data failed", err, "Unable to load dashboard data.", "/")
		return
	}

	reportID := uuid.NewString()
	now := time.Now().UTC()
	filename := fmt.Sprintf("seo_report_%s_%s.csv", now.Format("20060102"), reportID)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	w.Header().Set("X-Report-ID", reportID)

	fail := func(err error) {
		h.Log.Warn("export write failed", zap.String("report_id", reportID), zap.Error(err))
	}

	cw := csvutil.NewWriter(w)
	if err := cw.Comment(fmt.Sprintf("%s report %s generated %s", d.Title, reportID, now.Format(time.RFC3339))); err != nil {
		fail(err)
		return
	}
	if err := cw.Header(ExportHeader); err != nil {
		fail(err)
		return
	}
	for _, rec := range exportRecords(d) {
		if err := cw.Write(rec); err != nil {
			if !errors.Is(err, csvutil.ErrTooManyRows) {
				fail(err)
				return
			}
			h.Log.Warn("export truncated", zap.String("report_id", reportID), zap.Int("rows", cw.Rows()))
			break
		}
	}
	if err := cw.Flush(); err != nil {
		fail(err)
		return
	}

	metrics.ExportsTotal.Inc()
	h.Log.Info("report exported",
		zap.String("report_id", reportID),
		zap.Int("rows", cw.Rows()),
		zap.Int("keywords", len(d.Keywords)),
		zap.Int("months", len(d.Monthly)),
	)
}

func exportRecords(d models.Dashboard) [][]string {
	var out [][]string
	add := func(table, row, field, value string) {
		out = append(out, []string{table, row, field, value})
	}
	num := display.FormatNumber

	add("health", "overall", "score", strconv.Itoa(d.Health.Score))
	add("health", "overall", "factor_count", strconv.Itoa(d.Health.FactorCount))
	add("health", "overall", "delta", num(d.Health.Delta))
	add("health", "overall", "severity", string(display.Severity(d.Health.Score)))

	for _, k := range d.KPIs {
		add("kpis", k.Title, "value", k.Value)
		add("kpis", k.Title, "trend", display.FormatTrend(k.Trend, k.Suffix))
	}
	for _, m := range d.Monthly {
		add("monthly", m.Name, "traffic", strconv.Itoa(m.Traffic))
		add("monthly", m.Name, "conversion", num(m.Conversion))
		add("monthly", m.Name, "goals", strconv.Itoa(m.Goals))
		add("monthly", m.Name, "clicks", strconv.Itoa(m.Clicks))
	}
	for _, dev := range d.Devices {
		add("devices", dev.Name, "percent", num(dev.Value))
	}
	for _, s := range d.Sources {
		add("sources", s.Name, "percent", num(s.Value))
		add("sources", s.Name, "color", s.Color)
	}
	for _, k := range d.Keywords {
		add("keywords", k.Name, "ranking", k.Ranking)
		add("keywords", k.Name, "trend", string(k.Trend))
		add("keywords", k.Name, "difficulty", string(k.Difficulty))
	}
	return out
}
