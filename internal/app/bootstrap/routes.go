// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"sync"

	errorsfeature "github.com/dalemusser/seopulse/internal/app/features/errors"
	healthfeature "github.com/dalemusser/seopulse/internal/app/features/health"
	seodashboardfeature "github.com/dalemusser/seopulse/internal/app/features/seodashboard"
	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/seopulse/internal/app/system/ratelimit"
	"github.com/dalemusser/seopulse/internal/app/system/uikit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	chartCacheMu sync.Mutex
	chartCache   *chartrender.Cached
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, builds
// the data source and chart renderer, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	src, err := buildSource(appCfg, deps, logger)
	if err != nil {
		logger.Error("data source init failed", zap.Error(err))
		return nil, err
	}

	charts, err := buildCharts(appCfg, logger)
	if err != nil {
		logger.Error("chart renderer init failed", zap.Error(err))
		return nil, err
	}

	return buildRouter(appCfg, deps, src, charts, logger), nil
}

func buildRouter(appCfg AppConfig, deps DBDeps, src datasource.Source, charts chartrender.Renderer, logger *zap.Logger) chi.Router {
	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.DataSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if appCfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	dashHandler := seodashboardfeature.NewHandler(src, charts, uikit.New(), errLog, logger)
	dashHandler.BannerHTML = appCfg.BannerHTML
	if appCfg.ExportRatePerMinute > 0 {
		dashHandler.Limiter = ratelimit.New(appCfg.ExportRatePerMinute, appCfg.ExportRateBurst, logger)
	}
	r.Mount("/", seodashboardfeature.Routes(dashHandler))

	r.NotFound(errorsfeature.RenderNotFound)

	return r
}

// buildSource returns the configured dashboard data source. The Mongo source
// falls back to the embedded default data while no snapshot exists.
func buildSource(appCfg AppConfig, deps DBDeps, logger *zap.Logger) (datasource.Source, error) {
	static, err := datasource.NewDefaultStatic()
	if err != nil {
		return nil, err
	}
	if appCfg.DataSource == datasource.KindMongo && deps.MongoDatabase != nil {
		logger.Info("dashboard data source: mongo snapshots")
		return datasource.NewMongo(deps.MongoDatabase, static, logger), nil
	}
	logger.Info("dashboard data source: static")
	return static, nil
}

// buildCharts returns the SVG chart renderer behind the rendered chart cache.
func buildCharts(appCfg AppConfig, logger *zap.Logger) (chartrender.Renderer, error) {
	cached, err := chartrender.NewCached(chartrender.NewSVGRenderer(logger), chartrender.CacheConfig{
		MaxSizeMB: appCfg.ChartCacheMaxMB,
		TTL:       appCfg.ChartCacheTTL,
	}, logger)
	if err != nil {
		return nil, err
	}

	chartCacheMu.Lock()
	if chartCache != nil {
		chartCache.Close()
	}
	chartCache = cached
	chartCacheMu.Unlock()

	return cached, nil
}

func closeChartCache() {
	chartCacheMu.Lock()
	defer chartCacheMu.Unlock()
	if chartCache != nil {
		chartCache.Close()
		chartCache = nil
	}
}
