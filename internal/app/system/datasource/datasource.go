// Package datasource supplies the dashboard data set the SEO dashboard
// renders. The data is injected configuration: handlers never build it
// themselves, and every Load returns a private copy.
package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dalemusser/seopulse/internal/app/resources"
	snapshotstore "github.com/dalemusser/seopulse/internal/app/store/snapshots"
	"github.com/dalemusser/seopulse/internal/app/system/timeouts"
	"github.com/dalemusser/seopulse/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Kinds accepted by the data_source config key.
const (
	KindStatic = "static"
	KindMongo  = "mongo"
)

// Source loads the dashboard data set.
type Source interface {
	Load(ctx context.Context) (models.Dashboard, error)
}

var (
	defaultDashboard     models.Dashboard
	defaultDashboardOnce sync.Once
	defaultDashboardErr  error
)

// Default returns the embedded default data set. It is decoded once and
// cached for the lifetime of the process; callers receive a copy.
func Default() (models.Dashboard, error) {
	defaultDashboardOnce.Do(func() {
		data, err := resources.FS.ReadFile(resources.DefaultDashboardFile)
		if err != nil {
			defaultDashboardErr = err
			return
		}
		var d models.Dashboard
		if err := json.Unmarshal(data, &d); err != nil {
			defaultDashboardErr = fmt.Errorf("decode %s: %w", resources.DefaultDashboardFile, err)
			return
		}
		defaultDashboard = d
	})
	if defaultDashboardErr != nil {
		return models.Dashboard{}, defaultDashboardErr
	}
	return defaultDashboard.Clone(), nil
}

// Static serves a data set fixed at construction.
type Static struct {
	data models.Dashboard
}

// NewStatic wraps d. The value is copied so later changes by the caller do
// not leak into rendered pages.
func NewStatic(d models.Dashboard) *Static {
	return &Static{data: d.Clone()}
}

// NewDefaultStatic returns a Static source over the embedded default data.
func NewDefaultStatic() (*Static, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return &Static{data: d}, nil
}

// Load returns a copy of the wrapped data set.
func (s *Static) Load(ctx context.Context) (models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Dashboard{}, err
	}
	return s.data.Clone(), nil
}

// Mongo serves the newest document of the dashboard_snapshots collection,
// falling back to another Source while the collection is empty.
type Mongo struct {
	store    *snapshotstore.Store
	fallback Source
	log      *zap.Logger
}

// NewMongo creates a Mongo source over db. fallback is used when no
// snapshot has been stored yet.
func NewMongo(db *mongo.Database, fallback Source, logger *zap.Logger) *Mongo {
	return &Mongo{
		store:    snapshotstore.New(db),
		fallback: fallback,
		log:      logger,
	}
}

// Load returns the newest snapshot.
func (m *Mongo) Load(ctx context.Context) (models.Dashboard, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Read())
	defer cancel()

	d, err := m.store.Latest(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		m.log.Debug("no dashboard snapshot stored, using fallback data")
		return m.fallback.Load(ctx)
	}
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("load latest snapshot: %w", err)
	}
	return d, nil
}
