package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	snapshotstore "github.com/dalemusser/seopulse/internal/app/store/snapshots"
	"github.com/dalemusser/seopulse/internal/app/system/chartrender"
	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/seopulse/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		DataSource:      datasource.KindStatic,
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "seopulse",
		ChartCacheMaxMB: 8,
		ChartCacheTTL:   10 * time.Minute,
		MetricsEnabled:  true,

		ExportRatePerMinute: 30,
		ExportRateBurst:     10,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"static defaults", func(*AppConfig) {}, false},
		{"static ignores bad mongo uri", func(c *AppConfig) { c.MongoURI = "not-a-uri" }, false},
		{"mongo valid", func(c *AppConfig) { c.DataSource = datasource.KindMongo }, false},
		{"mongo bad uri", func(c *AppConfig) { c.DataSource = datasource.KindMongo; c.MongoURI = "http://example.com" }, true},
		{"mongo missing database", func(c *AppConfig) { c.DataSource = datasource.KindMongo; c.MongoDatabase = " " }, true},
		{"unknown source", func(c *AppConfig) { c.DataSource = "csv" }, true},
		{"negative cache size", func(c *AppConfig) { c.ChartCacheMaxMB = -1 }, true},
		{"negative cache ttl", func(c *AppConfig) { c.ChartCacheTTL = -time.Second }, true},
		{"rate limit off", func(c *AppConfig) { c.ExportRatePerMinute = 0; c.ExportRateBurst = 0 }, false},
		{"negative rate", func(c *AppConfig) { c.ExportRatePerMinute = -1 }, true},
		{"rate without burst", func(c *AppConfig) { c.ExportRatePerMinute = 30; c.ExportRateBurst = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConnectDB_StaticSkipsMongo(t *testing.T) {
	deps, err := ConnectDB(context.Background(), nil, validConfig(), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.MongoClient != nil || deps.MongoDatabase != nil {
		t.Error("static data source should not connect to MongoDB")
	}
}

func TestBuildSource_Static(t *testing.T) {
	src, err := buildSource(validConfig(), DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("buildSource failed: %v", err)
	}
	if _, ok := src.(*datasource.Static); !ok {
		t.Errorf("got %T, want *datasource.Static", src)
	}
}

func TestBuildSource_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := validConfig()
	cfg.DataSource = datasource.KindMongo
	src, err := buildSource(cfg, DBDeps{MongoClient: db.Client(), MongoDatabase: db}, testLogger())
	if err != nil {
		t.Fatalf("buildSource failed: %v", err)
	}
	if _, ok := src.(*datasource.Mongo); !ok {
		t.Errorf("got %T, want *datasource.Mongo", src)
	}
}

func TestEnsureSchema_Seed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validConfig()
	cfg.DataSource = datasource.KindMongo
	cfg.MongoSeed = true
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}

	// Running twice must not store a second snapshot.
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, nil, cfg, deps, testLogger()); err != nil {
			t.Fatalf("EnsureSchema run %d failed: %v", i+1, err)
		}
	}

	store := snapshotstore.New(db)
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshot count = %d, want 1", n)
	}
	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.Health.Score != 87 {
		t.Errorf("seeded health score = %d, want 87", latest.Health.Score)
	}
}

func TestEnsureSchema_StaticNoop(t *testing.T) {
	if err := EnsureSchema(context.Background(), nil, validConfig(), DBDeps{}, testLogger()); err != nil {
		t.Errorf("EnsureSchema without a database should be a no-op, got %v", err)
	}
}

func TestBuildRouter(t *testing.T) {
	cfg := validConfig()
	src, err := buildSource(cfg, DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("buildSource failed: %v", err)
	}
	charts, err := buildCharts(cfg, testLogger())
	if err != nil {
		t.Fatalf("buildCharts failed: %v", err)
	}
	t.Cleanup(closeChartCache)

	router := buildRouter(cfg, DBDeps{}, src, charts, testLogger())

	tests := []struct {
		target   string
		status   int
		contains string
	}{
		{"/health", http.StatusOK, `"data_source":"static"`},
		{"/tabs?tab=1", http.StatusOK, `aria-selected="true"`},
		{"/charts/devices.svg", http.StatusOK, "<svg"},
		{"/charts/unknown.svg", http.StatusNotFound, ""},
		{"/export.csv", http.StatusOK, "monthly,Jan,traffic,4000"},
		{"/metrics", http.StatusOK, "seopulse_"},
	}
	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tc.target, nil))

			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.contains != "" && !strings.Contains(rec.Body.String(), tc.contains) {
				t.Errorf("body does not contain %q", tc.contains)
			}
		})
	}
}

func TestBuildRouter_MetricsDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = false
	src, _ := buildSource(cfg, DBDeps{}, testLogger())

	router := buildRouter(cfg, DBDeps{}, src, noCharts{}, testLogger())

	rec := httptest.NewRecorder()
	func() {
		// The 404 page needs a booted template engine.
		defer func() { _ = recover() }()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	}()
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBuildRouter_ExportRateLimited(t *testing.T) {
	cfg := validConfig()
	cfg.ExportRatePerMinute = 1
	cfg.ExportRateBurst = 2
	src, _ := buildSource(cfg, DBDeps{}, testLogger())

	router := buildRouter(cfg, DBDeps{}, src, noCharts{}, testLogger())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/export.csv", nil))
		codes = append(codes, rec.Code)
	}
	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d status = %d, want %d", i+1, codes[i], want[i])
		}
	}

	// The page itself is not throttled.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/tabs", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/tabs status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestBuildRouter_PagesWithTemplates(t *testing.T) {
	testutil.BootTemplates(t)

	cfg := validConfig()
	src, _ := buildSource(cfg, DBDeps{}, testLogger())
	charts, err := buildCharts(cfg, testLogger())
	if err != nil {
		t.Fatalf("buildCharts failed: %v", err)
	}
	t.Cleanup(closeChartCache)

	router := buildRouter(cfg, DBDeps{}, src, charts, testLogger())

	page := httptest.NewRecorder()
	router.ServeHTTP(page, httptest.NewRequest("GET", "/", nil))
	if page.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", page.Code, http.StatusOK)
	}
	for _, want := range []string{`data-selected-tab="dashboard"`, `id="section-keywords"`, "<svg"} {
		if !strings.Contains(page.Body.String(), want) {
			t.Errorf("GET / body does not contain %q", want)
		}
	}

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest("GET", "/nope", nil))
	if missing.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want %d", missing.Code, http.StatusNotFound)
	}
	if !strings.Contains(missing.Body.String(), "The page you asked for does not exist.") {
		t.Errorf("GET /nope did not render the not found page: %s", missing.Body.String())
	}
}

type noCharts struct{}

func (noCharts) Render(context.Context, chartrender.Kind, chartrender.Table) (chartrender.Chart, error) {
	return chartrender.Chart{}, chartrender.ErrEmptyTable
}
