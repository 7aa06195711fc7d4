package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/seopulse/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
// Client is nil when the dashboard is served from static data.
type Handler struct {
	Client     *mongo.Client
	DataSource string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, dataSource string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:     client,
		DataSource: dataSource,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"data_source"`
	Database   string `json:"database,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "data_source":"mongo", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "data_source":"mongo", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:     "ok",
		DataSource: h.DataSource,
	}

	if h.Client == nil {
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp.Database = "connected"
	_ = json.NewEncoder(w).Encode(resp)
}
