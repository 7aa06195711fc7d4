package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/seopulse/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// SampleDashboard returns a small but complete dashboard data set.
func SampleDashboard(title string) models.Dashboard {
	return models.Dashboard{
		Title:       title,
		StatusBadge: "PRO",
		PrimaryAction: models.Action{
			Label:   "Run Full Audit",
			Primary: true,
		},
		SecondaryActions: []models.Action{{Label: "Export Report", Href: "/export.csv"}},
		Tabs: []models.TabDescriptor{
			{ID: "dashboard", Label: "Dashboard", AccessibilityLabel: "Dashboard", PanelID: "dashboard-content"},
			{ID: "keywords", Label: "Keywords", AccessibilityLabel: "Keywords", PanelID: "keywords-content"},
		},
		Banner: models.Banner{Title: "Heads up", Status: "info", Body: "<p>Body</p>"},
		Health: models.HealthScore{Score: 72, FactorCount: 10, LastUpdated: "Today", Delta: 1.5},
		KPIs: []models.KPI{
			{Background: "#5C6AC4", Icon: "🔍", Title: "Top Keywords", Value: "15", Trend: 3, Suffix: " new"},
		},
		Monthly: []models.MonthlyMetric{
			{Name: "Jan", Traffic: 100, Conversion: 1.1, Goals: 10, Clicks: 200},
			{Name: "Feb", Traffic: 120, Conversion: 1.3, Goals: 12, Clicks: 230},
		},
		PeriodOptions: []string{"7 Days", "30 Days"},
		Devices:       []models.DeviceShare{{Name: "Mobile", Value: 60}, {Name: "Desktop", Value: 40}},
		Sources:       []models.TrafficSource{{Name: "Organic", Value: 70, Color: "#5C6AC4"}, {Name: "Social", Value: 30, Color: "#A26FF9"}},
		Keywords: []models.Keyword{
			{Name: "Go Dashboards", Ranking: "#2", Trend: models.TrendUp, Avatar: "GD", Difficulty: models.DifficultyEasy, Color: "#50B83C"},
		},
		Palette: map[string]string{"primary": "#5C6AC4", "teal": "#00A0AC", "purple": "#A26FF9"},
	}
}

// CreateSnapshot inserts a dashboard snapshot created at the given time.
func (f *Fixtures) CreateSnapshot(ctx context.Context, d models.Dashboard, createdAt time.Time) models.Dashboard {
	f.t.Helper()

	d.ID = primitive.NewObjectID()
	d.CreatedAt = createdAt.UTC()

	if _, err := f.db.Collection("dashboard_snapshots").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test snapshot: %v", err)
	}
	return d
}
