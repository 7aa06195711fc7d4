// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// FS holds the shared page templates and the default dashboard data set
// (seo_dashboard.json).
//
//go:embed templates/*.gohtml seo_dashboard.json
var FS embed.FS

// DefaultDashboardFile is the name of the embedded default data set.
const DefaultDashboardFile = "seo_dashboard.json"

var registerOnce sync.Once

// LoadSharedTemplates registers the shared layout partials (page_head,
// page_foot). Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
