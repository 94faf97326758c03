// Package gallery implements the project gallery: a grid of project cards,
// at most one expanded detail panel, a per-project image carousel and a set
// of liked projects. All state is per visitor and lives only in memory.
package gallery

import (
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/ui"
)

const (
	summaryLength = 80
	techPreview   = 2
)

var (
	ErrUnknownItem = errors.New("unknown gallery item")
	ErrImageIndex  = errors.New("image index out of range")
)

// Gallery composes carousel, image, like and selection state for one
// visitor. It is not safe for concurrent use.
type Gallery struct {
	items    []content.Project
	byID     map[string]int
	carousel *Carousel
	images   *Images
	liked    *ui.Set[string]
	selected ui.Selection[string]
}

func New(items []content.Project, placeholder string) *Gallery {
	byID := make(map[string]int, len(items))
	counts := make(map[string]int, len(items))
	refs := make(map[string][]string, len(items))
	for i, it := range items {
		byID[it.ID] = i
		counts[it.ID] = len(it.Images)
		refs[it.ID] = it.Images
	}
	return &Gallery{
		items:    items,
		byID:     byID,
		carousel: NewCarousel(counts),
		images:   NewImages(refs, placeholder),
		liked:    ui.NewSet[string](),
	}
}

func (g *Gallery) check(id string) error {
	if _, ok := g.byID[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return nil
}

func (g *Gallery) checkImage(id string, index int) error {
	if err := g.check(id); err != nil {
		return err
	}
	if index < 0 || index >= len(g.items[g.byID[id]].Images) {
		return fmt.Errorf("%w: %s/%d", ErrImageIndex, id, index)
	}
	return nil
}

// ToggleSelect opens the detail panel for id, or closes it when id is
// already open.
func (g *Gallery) ToggleSelect(id string) error {
	if err := g.check(id); err != nil {
		return err
	}
	g.selected.Toggle(id)
	return nil
}

func (g *Gallery) Close() {
	g.selected.Clear()
}

func (g *Gallery) Selected() (string, bool) {
	return g.selected.Current()
}

// ToggleLike reports whether id is liked after the toggle.
func (g *Gallery) ToggleLike(id string) (bool, error) {
	if err := g.check(id); err != nil {
		return false, err
	}
	return g.liked.Toggle(id), nil
}

func (g *Gallery) Liked(id string) bool {
	return g.liked.Has(id)
}

func (g *Gallery) Advance(id string) (int, error) {
	if err := g.check(id); err != nil {
		return 0, err
	}
	return g.carousel.Advance(id), nil
}

func (g *Gallery) Retreat(id string) (int, error) {
	if err := g.check(id); err != nil {
		return 0, err
	}
	return g.carousel.Retreat(id), nil
}

// JumpTo moves the carousel to index. Out-of-range requests change nothing.
func (g *Gallery) JumpTo(id string, index int) (int, error) {
	if err := g.check(id); err != nil {
		return 0, err
	}
	g.carousel.JumpTo(id, index)
	return g.carousel.Index(id), nil
}

func (g *Gallery) Index(id string) int {
	return g.carousel.Index(id)
}

// ImageLoaded records the measured aspect ratio of a loaded image.
func (g *Gallery) ImageLoaded(id string, index int, ratio float64) error {
	if err := g.checkImage(id, index); err != nil {
		return err
	}
	g.carousel.RecordAspectRatio(id, index, ratio)
	return nil
}

// ImageFailed replaces the image with the placeholder. It reports whether
// this call performed the substitution.
func (g *Gallery) ImageFailed(id string, index int) (bool, error) {
	if err := g.checkImage(id, index); err != nil {
		return false, err
	}
	return g.images.MarkFailed(id, index), nil
}

// Original returns the configured reference of an image, ignoring any
// placeholder substitution.
func (g *Gallery) Original(id string, index int) (string, error) {
	if err := g.checkImage(id, index); err != nil {
		return "", err
	}
	ref, _ := g.images.Original(id, index)
	return ref, nil
}

func (g *Gallery) Measured(id string, index int) bool {
	return g.carousel.Measured(id, index)
}

func (g *Gallery) Substituted(id string, index int) bool {
	return g.images.Failed(id, index)
}
