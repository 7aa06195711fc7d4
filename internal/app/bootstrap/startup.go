// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/seopulse/internal/app/resources"
	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/seopulse/internal/app/system/timeouts"
	"github.com/dalemusser/seopulse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built: shared
// templates, site name, timeouts, and a check that the embedded default
// data set decodes.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.SetSiteName(appCfg.SiteName)

	timeouts.Configure(timeouts.Config{
		Read:   appCfg.ReadTimeout,
		Render: appCfg.RenderTimeout,
	})
	timeouts.Log(logger)

	if _, err := datasource.Default(); err != nil {
		logger.Error("default dashboard data set is invalid", zap.Error(err))
		return err
	}
	return nil
}
