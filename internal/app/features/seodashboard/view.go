package seodashboard

import (
	"strconv"
	"strings"

	"github.com/dalemusser/seopulse/internal/domain/models"
)

// View is the state of one dashboard page. Every request builds its own View,
// so the selected tab never outlives the response.
type View struct {
	Data     models.Dashboard
	Selected int
}

// NewView returns a View over d with the first tab selected.
func NewView(d models.Dashboard) *View {
	return &View{Data: d}
}

// SelectTab selects tab i. Indices outside the tab list are clamped to the
// nearest tab; the return value reports whether that happened.
func (v *View) SelectTab(i int) (clamped bool) {
	n := len(v.Data.Tabs)
	switch {
	case n == 0:
		v.Selected = 0
		return i != 0
	case i < 0:
		v.Selected = 0
		return true
	case i >= n:
		v.Selected = n - 1
		return true
	}
	v.Selected = i
	return false
}

// ApplyTabParam applies the raw value of the "tab" query parameter. Blank or
// non-numeric values leave the selection unchanged.
func (v *View) ApplyTabParam(raw string) (clamped bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return v.SelectTab(i)
}

// SelectedTab returns the descriptor of the selected tab, or the zero value
// when there are no tabs.
func (v *View) SelectedTab() models.TabDescriptor {
	if v.Selected < 0 || v.Selected >= len(v.Data.Tabs) {
		return models.TabDescriptor{}
	}
	return v.Data.Tabs[v.Selected]
}

func tabHref(i int) string {
	return "/?tab=" + strconv.Itoa(i)
}

func tabFragment(i int) string {
	return "/tabs?tab=" + strconv.Itoa(i)
}
