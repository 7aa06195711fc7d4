// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/seopulse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SEOPulse.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, etc.
//   - Environment variables: SEOPULSE_DATA_SOURCE, SEOPULSE_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: datasource.KindStatic, Desc: "Dashboard data source: 'static' or 'mongo'"},

	// MongoDB (data_source=mongo)
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "seopulse", Desc: "MongoDB database name"},
	{Name: "mongo_seed", Default: false, Desc: "Store the default data set when no snapshot exists"},

	// Presentation
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in titles and the footer"},
	{Name: "banner_html", Default: "", Desc: "HTML replacing the banner body (sanitized)"},

	// Chart cache
	{Name: "chart_cache_max_mb", Default: 8, Desc: "Rendered chart cache size in MB"},
	{Name: "chart_cache_ttl", Default: "10m", Desc: "Rendered chart cache TTL (e.g., 10m, 1h; 0 disables expiry)"},

	// Timeouts
	{Name: "read_timeout", Default: "5s", Desc: "Timeout for loading the dashboard data set"},
	{Name: "render_timeout", Default: "10s", Desc: "Timeout for rendering one chart"},

	// Throttling of chart and export requests, per client IP (0 disables)
	{Name: "export_rate_per_minute", Default: 30, Desc: "Chart and export requests allowed per client per minute"},
	{Name: "export_rate_burst", Default: 10, Desc: "Burst size for chart and export requests"},

	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics on /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SEOPULSE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SEOPULSE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource: strings.ToLower(strings.TrimSpace(appValues.String("data_source"))),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
		MongoSeed:     appValues.Bool("mongo_seed"),

		SiteName:   appValues.String("site_name"),
		BannerHTML: appValues.String("banner_html"),

		ChartCacheMaxMB: appValues.Int("chart_cache_max_mb"),
		ChartCacheTTL:   appValues.Duration("chart_cache_ttl", 10*time.Minute),

		ReadTimeout:   appValues.Duration("read_timeout", 5*time.Second),
		RenderTimeout: appValues.Duration("render_timeout", 10*time.Second),

		ExportRatePerMinute: appValues.Int("export_rate_per_minute"),
		ExportRateBurst:     appValues.Int("export_rate_burst"),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is only checked when the dashboard reads from MongoDB, so
// the static mode starts without any database configuration.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.DataSource {
	case datasource.KindStatic:
	case datasource.KindMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if strings.TrimSpace(appCfg.MongoDatabase) == "" {
			return fmt.Errorf("data_source=mongo requires mongo_database to be set")
		}
	default:
		return fmt.Errorf("unknown data_source %q (want %q or %q)", appCfg.DataSource, datasource.KindStatic, datasource.KindMongo)
	}

	if appCfg.ChartCacheMaxMB < 0 {
		return fmt.Errorf("chart_cache_max_mb must not be negative, got %d", appCfg.ChartCacheMaxMB)
	}
	if appCfg.ChartCacheTTL < 0 {
		return fmt.Errorf("chart_cache_ttl must not be negative, got %s", appCfg.ChartCacheTTL)
	}

	if appCfg.ExportRatePerMinute < 0 {
		return fmt.Errorf("export_rate_per_minute must not be negative, got %d", appCfg.ExportRatePerMinute)
	}
	if appCfg.ExportRatePerMinute > 0 && appCfg.ExportRateBurst < 1 {
		return fmt.Errorf("export_rate_burst must be at least 1 when rate limiting is on, got %d", appCfg.ExportRateBurst)
	}

	return nil
}
