// internal/app/store/snapshots/snapshotstore.go
package snapshotstore

import (
	"context"
	"time"

	"github.com/dalemusser/seopulse/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the dashboard snapshots collection.
const Collection = "dashboard_snapshots"

// Store provides access to the dashboard_snapshots collection. Each document
// is a complete dashboard data set; the newest one is what gets rendered.
type Store struct {
	c *mongo.Collection
}

// New creates a new snapshots store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Latest returns the most recently created snapshot.
// Returns mongo.ErrNoDocuments if the collection is empty.
func (s *Store) Latest(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&d); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}

// Insert stores d as a new snapshot and returns it with ID and CreatedAt set.
func (s *Store) Insert(ctx context.Context, d models.Dashboard) (models.Dashboard, error) {
	d.ID = primitive.NewObjectID()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}

// Count returns the number of stored snapshots.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the created_at index used by Latest.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_snapshots_created_at"),
	})
	return err
}
