package errors_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/seopulse/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// renderSafely runs fn, swallowing panics from template rendering when no
// template engine is booted. The status code is written before rendering.
func renderSafely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestLogServerError_LogsRequest(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest("GET", "/charts/traffic.svg", nil)
	rec := httptest.NewRecorder()

	renderSafely(func() {
		errLog.LogServerError(rec, req, "render chart failed", fmt.Errorf("boom"), "Unable to draw chart.", "/")
	})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	entries := logs.FilterMessage("render chart failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/charts/traffic.svg" {
		t.Errorf("path field = %v", fields["path"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error field = %v", fields["error"])
	}
}

func TestRenderNotFound_Status(t *testing.T) {
	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()

	renderSafely(func() { uierrors.RenderNotFound(rec, req) })

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
