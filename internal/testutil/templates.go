package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/seopulse/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates registers the shared layout and boots a template engine for
// every template set registered so far. Feature packages register their
// sets in init, so import them before calling this. The engine is booted
// once per test binary.
func BootTemplates(t *testing.T) {
	t.Helper()

	bootOnce.Do(func() {
		logger := zap.NewNop()
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if bootErr = eng.Boot(logger); bootErr != nil {
			return
		}
		templates.UseEngine(eng, logger)
	})
	if bootErr != nil {
		t.Fatalf("template engine boot failed: %v", bootErr)
	}
}
