package gallery

// View is what the page shell draws for the gallery section.
type View struct {
	Cards  []Card  `json:"cards"`
	Detail *Detail `json:"detail,omitempty"`
}

type Card struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Summary    string   `json:"summary"`
	TechShown  []string `json:"tech_shown"`
	TechExtra  int      `json:"tech_extra"`
	Liked      bool     `json:"liked"`
	Selected   bool     `json:"selected"`
	Color      string   `json:"color"`
	ImageCount int      `json:"image_count"`
}

type Detail struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Figma        string   `json:"figma,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Images       []string `json:"images"`
	Substituted  []bool   `json:"substituted"` // per image, placeholder shown
	Index        int      `json:"index"`
	AspectRatio  float64  `json:"aspect_ratio"`
	Liked        bool     `json:"liked"`
}

// View projects the current state. Calling it has no side effects.
func (g *Gallery) View() View {
	v := View{Cards: make([]Card, 0, len(g.items))}
	for _, it := range g.items {
		shown := it.Technologies
		if len(shown) > techPreview {
			shown = shown[:techPreview]
		}
		v.Cards = append(v.Cards, Card{
			ID:         it.ID,
			Name:       it.Name,
			Summary:    summarize(it.Description),
			TechShown:  shown,
			TechExtra:  len(it.Technologies) - len(shown),
			Liked:      g.liked.Has(it.ID),
			Selected:   g.selected.Is(it.ID),
			Color:      it.Color,
			ImageCount: len(it.Images),
		})
	}

	id, ok := g.selected.Current()
	if !ok {
		return v
	}
	it := g.items[g.byID[id]]
	idx := g.carousel.Index(id)
	v.Detail = &Detail{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Features:     it.Features,
		Technologies: it.Technologies,
		Figma:        it.Figma,
		GitHub:       it.GitHub,
		Images:       g.images.Refs(id),
		Substituted:  g.images.FailedAll(id),
		Index:        idx,
		AspectRatio:  g.carousel.AspectRatio(id, idx),
		Liked:        g.liked.Has(id),
	}
	return v
}

// summarize cuts on a rune boundary so multi-byte text stays valid.
func summarize(s string) string {
	r := []rune(s)
	if len(r) > summaryLength {
		r = r[:summaryLength]
	}
	return string(r) + "..."
}
