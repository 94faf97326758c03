// Package showcase implements the technology section: a category filter,
// a favorites set and a collapsed/expanded list.
package showcase

import (
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/ui"
)

// All is the filter value that shows every technology.
const All = "all"

// CollapsedLimit is how many entries the mobile list shows before "show all".
const CollapsedLimit = 5

// MobileBreakpoint is the viewport width below which the single-column list
// replaces the grid.
const MobileBreakpoint = 768

type Showcase struct {
	techs      []content.Technology
	categories []content.Category
	filter     ui.Selection[string]
	favorites  *ui.Set[string]
	showAll    bool
}

func New(techs []content.Technology, categories []content.Category, favorites []string) *Showcase {
	return &Showcase{
		techs:      techs,
		categories: categories,
		favorites:  ui.NewSet(favorites...),
	}
}

// SetFilter toggles the category filter. Selecting the active category
// clears it; an empty category clears it unconditionally.
func (s *Showcase) SetFilter(category string) {
	if category == "" {
		s.filter.Clear()
		return
	}
	s.filter.Toggle(category)
}

// Filter returns the active category, or "" when unset.
func (s *Showcase) Filter() string {
	c, _ := s.filter.Current()
	return c
}

// Filtered returns every technology in the active category in original
// order, or the full list when the filter is unset or All.
func (s *Showcase) Filtered() []content.Technology {
	return Project(s.techs, s.Filter())
}

// Project is the pure filter projection.
func Project(techs []content.Technology, category string) []content.Technology {
	if category == "" || category == All {
		return techs
	}
	out := make([]content.Technology, 0, len(techs))
	for _, t := range techs {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ToggleFavorite reports whether name is a favorite after the toggle.
func (s *Showcase) ToggleFavorite(name string) bool {
	return s.favorites.Toggle(name)
}

func (s *Showcase) ToggleShowAll() bool {
	s.showAll = !s.showAll
	return s.showAll
}

type View struct {
	Filter      string        `json:"filter,omitempty"`
	Categories  []CategoryTab `json:"categories"`
	Visible     []Entry       `json:"visible"`
	Hidden      int           `json:"hidden"`
	ShowAll     bool          `json:"show_all"`
	Collapsible bool          `json:"collapsible"` // show-all control applies
}

type CategoryTab struct {
	content.Category
	Count  int  `json:"count"`
	Active bool `json:"active"`
}

type Entry struct {
	content.Technology
	Favorite bool `json:"favorite"`
}

// View projects the section for a viewport. The grid lists the whole
// filtered set; the mobile list stays empty until a category is picked and is
// then cut to CollapsedLimit unless show-all is on.
func (s *Showcase) View(viewportWidth float64) View {
	counts := make(map[string]int)
	for _, t := range s.techs {
		counts[t.Category]++
	}

	v := View{Filter: s.Filter(), ShowAll: s.showAll}
	for _, c := range s.categories {
		n := counts[c.Name]
		if c.Name == All {
			n = len(s.techs)
		}
		v.Categories = append(v.Categories, CategoryTab{Category: c, Count: n, Active: s.filter.Is(c.Name)})
	}

	filtered := s.Filtered()
	shown := filtered
	if viewportWidth < MobileBreakpoint {
		_, active := s.filter.Current()
		switch {
		case !active:
			shown = nil
		case len(filtered) > CollapsedLimit:
			v.Collapsible = true
			if !s.showAll {
				shown = filtered[:CollapsedLimit]
				v.Hidden = len(filtered) - CollapsedLimit
			}
		}
	}
	v.Visible = make([]Entry, 0, len(shown))
	for _, t := range shown {
		v.Visible = append(v.Visible, Entry{Technology: t, Favorite: s.favorites.Has(t.Name)})
	}
	return v
}
