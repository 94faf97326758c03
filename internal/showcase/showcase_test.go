package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func techs() []content.Technology {
	return []content.Technology{
		{Name: "React.js", Category: "Frontend"},
		{Name: "Node.js", Category: "Backend"},
		{Name: "TypeScript", Category: "Frontend"},
		{Name: "MongoDB", Category: "Database"},
		{Name: "Tailwind CSS", Category: "Frontend"},
		{Name: "Flask", Category: "Backend"},
		{Name: "Figma", Category: "Design"},
	}
}

func categories() []content.Category {
	return []content.Category{{Name: All}, {Name: "Frontend"}, {Name: "Backend"}, {Name: "Database"}, {Name: "Design"}, {Name: "Tools"}}
}

func names(ts []content.Technology) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestProjectKeepsOrder(t *testing.T) {
	all := techs()
	for _, c := range []string{"Frontend", "Backend", "Database", "Design", "Tools"} {
		got := Project(all, c)
		var want []string
		for _, tech := range all {
			if tech.Category == c {
				want = append(want, tech.Name)
			}
		}
		assert.Equal(t, len(want), len(got), c)
		for i, tech := range got {
			assert.Equal(t, c, tech.Category)
			assert.Equal(t, want[i], tech.Name)
		}
	}
	assert.Equal(t, all, Project(all, All))
	assert.Equal(t, all, Project(all, ""))
}

func TestSetFilterToggles(t *testing.T) {
	s := New(techs(), categories(), nil)

	s.SetFilter("Backend")
	assert.Equal(t, "Backend", s.Filter())
	assert.Equal(t, []string{"Node.js", "Flask"}, names(s.Filtered()))

	s.SetFilter("Backend")
	assert.Equal(t, "", s.Filter())
	assert.Len(t, s.Filtered(), 7)

	s.SetFilter("Design")
	s.SetFilter("")
	assert.Equal(t, "", s.Filter())
}

func TestFilterAllShowsEverything(t *testing.T) {
	s := New(techs(), categories(), nil)
	s.SetFilter(All)
	assert.Equal(t, All, s.Filter())
	assert.Equal(t, techs(), s.Filtered())
}

func TestFavorites(t *testing.T) {
	s := New(techs(), categories(), []string{"Figma"})

	assert.False(t, s.ToggleFavorite("Figma"))
	assert.True(t, s.ToggleFavorite("Flask"))

	fav := map[string]bool{}
	for _, e := range s.View(desktop).Visible {
		fav[e.Name] = e.Favorite
	}
	assert.False(t, fav["Figma"])
	assert.True(t, fav["Flask"])
}

const (
	desktop = 1280
	mobile  = 390
)

func TestDesktopGridShowsWholeFilteredList(t *testing.T) {
	s := New(techs(), categories(), nil)

	v := s.View(desktop)
	assert.Len(t, v.Visible, 7)
	assert.Zero(t, v.Hidden)
	assert.False(t, v.Collapsible)

	s.SetFilter("Frontend")
	v = s.View(desktop)
	assert.Equal(t, []string{"React.js", "TypeScript", "Tailwind CSS"}, entryNames(v.Visible))
}

func TestMobileListNeedsCategory(t *testing.T) {
	s := New(techs(), categories(), nil)

	v := s.View(mobile)
	assert.Empty(t, v.Visible)
	assert.Zero(t, v.Hidden)
	assert.False(t, v.Collapsible)

	s.SetFilter("Backend")
	v = s.View(mobile)
	assert.Equal(t, []string{"Node.js", "Flask"}, entryNames(v.Visible))
	assert.False(t, v.Collapsible, "two entries never collapse")
}

func TestMobileListCollapsesToLimit(t *testing.T) {
	s := New(techs(), categories(), nil)
	s.SetFilter(All)

	v := s.View(mobile)
	assert.Len(t, v.Visible, CollapsedLimit)
	assert.Equal(t, 2, v.Hidden)
	assert.True(t, v.Collapsible)
	assert.False(t, v.ShowAll)

	require.True(t, s.ToggleShowAll())
	v = s.View(mobile)
	assert.Len(t, v.Visible, 7)
	assert.Zero(t, v.Hidden)
	assert.True(t, v.Collapsible)
}

func entryNames(es []Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name)
	}
	return out
}

func TestViewCategoryCounts(t *testing.T) {
	s := New(techs(), categories(), nil)
	s.SetFilter("Frontend")

	counts := map[string]int{}
	active := ""
	for _, tab := range s.View(desktop).Categories {
		counts[tab.Name] = tab.Count
		if tab.Active {
			active = tab.Name
		}
	}
	assert.Equal(t, 7, counts[All])
	assert.Equal(t, 3, counts["Frontend"])
	assert.Equal(t, 0, counts["Tools"])
	assert.Equal(t, "Frontend", active)
}
