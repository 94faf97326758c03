package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/showcase"
	"github.com/Zachkp/portfolio/internal/timeline"
)

const defaultViewport = 1280

type aboutView struct {
	content.Profile
	ActiveSkill string `json:"active_skill,omitempty"`
}

type heroView struct {
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	Tagline      string           `json:"tagline"`
	Folders      []content.Folder `json:"folders"`
	Layout       []hero.Placement `json:"layout"`
	ActiveFolder string           `json:"active_folder,omitempty"`
}

type contactView struct {
	Methods []content.ContactMethod `json:"methods"`
	Form    contact.View            `json:"form"`
}

type pageView struct {
	Sections   []string         `json:"sections"`
	Hero       heroView         `json:"hero"`
	About      aboutView        `json:"about"`
	Projects   gallery.View     `json:"projects"`
	Experience []timeline.Entry `json:"experience"`
	Tech       showcase.View    `json:"tech"`
	Contact    contactView      `json:"contact"`
}

func (s *Server) heroView(sess *session.Session, width float64) heroView {
	active, _ := sess.Folder.Current()
	return heroView{
		Name:         s.site.Profile.Name,
		Title:        s.site.Profile.Title,
		Tagline:      s.site.Profile.Tagline,
		Folders:      s.site.Folders,
		Layout:       hero.Arc(len(s.site.Folders), width),
		ActiveFolder: active,
	}
}

func (s *Server) contactView(sess *session.Session) contactView {
	return contactView{Methods: s.site.Contacts, Form: sess.Contact.View()}
}

func viewportWidth(c *gin.Context) float64 {
	w, err := strconv.ParseFloat(c.Query("width"), 64)
	if err != nil || w <= 0 {
		return defaultViewport
	}
	return w
}

func (s *Server) handlePage(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()

	skill, _ := sess.Skill.Current()
	c.JSON(http.StatusOK, pageView{
		Sections:   content.Anchors,
		Hero:       s.heroView(sess, viewportWidth(c)),
		About:      aboutView{Profile: s.site.Profile, ActiveSkill: skill},
		Projects:   sess.Gallery.View(),
		Experience: sess.Timeline.View(),
		Tech:       sess.Showcase.View(viewportWidth(c)),
		Contact:    s.contactView(sess),
	})
}

func (s *Server) handleSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": content.Anchors})
}

func (s *Server) handleHero(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, s.heroView(sess, viewportWidth(c)))
}

// handleFolderTouch highlights a hero folder on touch devices, where there
// is no hover.
func (s *Server) handleFolderTouch(c *gin.Context) {
	target := c.Param("target")
	known := false
	for _, f := range s.site.Folders {
		if f.Target == target {
			known = true
			break
		}
	}
	if !known {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown folder " + strconv.Quote(target)})
		return
	}

	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Folder.Toggle(target)
	c.JSON(http.StatusOK, s.heroView(sess, viewportWidth(c)))
}

type skillRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleSkillToggle(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "skill name is required")
		return
	}
	known := false
	for _, sk := range s.site.Profile.Skills {
		if sk.Name == req.Name {
			known = true
			break
		}
	}
	if !known {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown skill " + strconv.Quote(req.Name)})
		return
	}

	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Skill.Toggle(req.Name)
	active, _ := sess.Skill.Current()
	c.JSON(http.StatusOK, aboutView{Profile: s.site.Profile, ActiveSkill: active})
}
