// Package timeouts provides centralized timeout values for I/O done while
// serving a request.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults are used.
//
//   - Ping: health checks and connectivity verification
//   - Read: loading the dashboard data set
//   - Render: drawing one chart
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultRead   = 5 * time.Second
	DefaultRender = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	read   = DefaultRead
	render = DefaultRender
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Read returns the timeout for loading the dashboard data set.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return read
}

// Render returns the timeout for rendering a single chart.
func Render() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return render
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping   time.Duration
	Read   time.Duration
	Render time.Duration
}

// Configure sets custom timeout values. Call during startup, before
// handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Read > 0 {
		read = cfg.Read
	}
	if cfg.Render > 0 {
		render = cfg.Render
	}
}

// Log writes the active values at info level.
func Log(logger *zap.Logger) {
	logger.Info("request timeouts",
		zap.Duration("ping", Ping()),
		zap.Duration("read", Read()),
		zap.Duration("render", Render()),
	)
}

// WithTimeout is context.WithTimeout, except that a parent deadline sooner
// than d is left alone.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if dl, ok := ctx.Deadline(); ok && time.Until(dl) <= d {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
