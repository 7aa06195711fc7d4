// Package htmlsanitize cleans operator-supplied HTML (the dashboard banner
// body) before it is rendered unescaped.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("p", "span", "div", "strong", "em", "a")
		p.AllowElements("mark")
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers, iframes, styles and unsafe URLs
// while keeping ordinary formatting and links.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
