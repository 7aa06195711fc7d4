package chartrender

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/dalemusser/seopulse/internal/app/system/metrics"
	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// CacheConfig sizes the rendered chart cache.
type CacheConfig struct {
	MaxSizeMB int
	TTL       time.Duration
}

// Cached decorates a Renderer with an in-process cache of rendered charts.
// Charts are keyed by kind and table content, so a changed data set never
// hits a stale entry.
type Cached struct {
	next  Renderer
	cache *ristretto.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCached wraps next with a ristretto cache.
func NewCached(next Renderer, cfg CacheConfig, logger *zap.Logger) (*Cached, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 8
	}
	maxCost := int64(cfg.MaxSizeMB) * 1024 * 1024

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("chart cache initialized",
		zap.Int("max_size_mb", cfg.MaxSizeMB),
		zap.Duration("ttl", cfg.TTL),
	)

	return &Cached{next: next, cache: c, ttl: cfg.TTL, log: logger}, nil
}

// Render implements Renderer. Every caller gets its own copy of the chart,
// so callers may modify the result.
func (c *Cached) Render(ctx context.Context, kind Kind, t Table) (Chart, error) {
	key, err := Key(kind, t)
	if err != nil {
		return c.next.Render(ctx, kind, t)
	}

	if v, ok := c.cache.Get(key); ok {
		if ch, ok := v.(Chart); ok {
			metrics.ChartCacheTotal.WithLabelValues("hit").Inc()
			return ch.Clone(), nil
		}
	}
	metrics.ChartCacheTotal.WithLabelValues("miss").Inc()

	ch, err := c.next.Render(ctx, kind, t)
	if err != nil {
		return Chart{}, err
	}

	cost := int64(len(ch.SVG)) + 1
	if c.ttl > 0 {
		c.cache.SetWithTTL(key, ch.Clone(), cost, c.ttl)
	} else {
		c.cache.Set(key, ch.Clone(), cost)
	}
	return ch, nil
}

// Wait blocks until pending cache writes are applied.
func (c *Cached) Wait() {
	c.cache.Wait()
}

// Close releases the cache.
func (c *Cached) Close() {
	c.cache.Close()
}

// Key is the cache key of a chart: the kind plus a digest of the table.
func Key(kind Kind, t Table) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return string(kind) + ":" + hex.EncodeToString(sum[:]), nil
}
