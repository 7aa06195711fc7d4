// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). Framework settings such as
// ports, TLS, logging level and CORS live in WAFFLE's CoreConfig.
type AppConfig struct {
	// Where the dashboard data comes from: "static" (embedded default data
	// set) or "mongo" (newest document of dashboard_snapshots).
	DataSource string

	// MongoDB connection configuration (only used when DataSource is "mongo")
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB
	MongoSeed     bool   // Store the default data set as the first snapshot when the collection is empty

	// Presentation
	SiteName   string // Shown in page titles and the footer
	BannerHTML string // Replaces the banner body when set; sanitized before rendering

	// Chart cache
	ChartCacheMaxMB int           // Upper bound of the rendered chart cache
	ChartCacheTTL   time.Duration // Zero keeps entries until evicted

	// Request timeouts (zero keeps the defaults)
	ReadTimeout   time.Duration
	RenderTimeout time.Duration

	// Per-client throttling of chart and export requests (zero rate disables)
	ExportRatePerMinute int
	ExportRateBurst     int

	// Expose Prometheus metrics on /metrics
	MetricsEnabled bool
}
