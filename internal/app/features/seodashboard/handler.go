// internal/app/features/seodashboard/handler.go
package seodashboard

import (
	uierrors "github.com/dalemusser/seopulse/internal/app/features/errors"
	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/seopulse/internal/app/system/ratelimit"
	"github.com/dalemusser/seopulse/internal/app/system/uikit"
	"go.uber.org/zap"
)

// Handler serves the SEO dashboard page, its tab strip fragment, chart
// images and the CSV export.
type Handler struct {
	Source datasource.Source
	Charts chartrender.Renderer
	Kit    uikit.Kit
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	// Limiter throttles chart and export requests per client. Nil means
	// no limit.
	Limiter *ratelimit.Limiter

	// BannerHTML replaces the banner body of the loaded data when set.
	BannerHTML string
}

// NewHandler constructs a Handler.
func NewHandler(src datasource.Source, charts chartrender.Renderer, kit uikit.Kit, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Source: src,
		Charts: charts,
		Kit:    kit,
		Log:    logger,
		ErrLog: errLog,
	}
}
