// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	snapshotstore "github.com/dalemusser/seopulse/internal/app/store/snapshots"
	"github.com/dalemusser/seopulse/internal/app/system/datasource"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the snapshot indexes and, when mongo_seed is set,
// stores the default data set as the first snapshot.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	store := snapshotstore.New(deps.MongoDatabase)
	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure snapshot indexes: %w", err)
	}

	if !appCfg.MongoSeed {
		return nil
	}
	return seedSnapshot(ctx, store, logger)
}

// seedSnapshot stores the default data set when no snapshot exists yet.
func seedSnapshot(ctx context.Context, store *snapshotstore.Store, logger *zap.Logger) error {
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count snapshots: %w", err)
	}
	if n > 0 {
		return nil
	}

	d, err := datasource.Default()
	if err != nil {
		return err
	}
	saved, err := store.Insert(ctx, d)
	if err != nil {
		return fmt.Errorf("seed snapshot: %w", err)
	}
	logger.Info("seeded default dashboard snapshot", zap.String("id", saved.ID.Hex()))
	return nil
}
