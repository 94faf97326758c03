// Package session keeps each visitor's page state in memory. A session is
// created on the first request without a valid cookie and dropped after a
// period of inactivity.
package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/showcase"
	"github.com/Zachkp/portfolio/internal/timeline"
	"github.com/Zachkp/portfolio/internal/ui"
)

// Session is one visitor's state. Lock it around every read or mutation.
type Session struct {
	sync.Mutex

	ID       string
	Gallery  *gallery.Gallery
	Showcase *showcase.Showcase
	Timeline *timeline.Timeline
	Skill    ui.Selection[string]
	Folder   ui.Selection[string]
	Contact  *contact.Form
	Limiter  *rate.Limiter

	lastSeen time.Time
}

// Options configure new sessions.
type Options struct {
	SuccessDisplay time.Duration
	// ContactPerMinute is the sustained submission rate; bursts of up to
	// that many are allowed.
	ContactPerMinute float64
	Now              func() time.Time
}

func newSession(id string, site *content.Site, opts Options) *Session {
	burst := int(opts.ContactPerMinute)
	if burst < 1 {
		burst = 1
	}
	return &Session{
		ID:       id,
		Gallery:  gallery.New(site.Projects, site.Placeholder),
		Showcase: showcase.New(site.Technologies, site.Categories, site.Favorites),
		Timeline: timeline.New(site.Experiences),
		Contact: contact.NewForm(
			contact.WithClock(opts.Now),
			contact.WithSuccessDisplay(opts.SuccessDisplay),
		),
		Limiter:  rate.NewLimiter(rate.Limit(opts.ContactPerMinute/60), burst),
		lastSeen: opts.Now(),
	}
}
