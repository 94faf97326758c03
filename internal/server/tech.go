package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type filterRequest struct {
	Category string `json:"category"`
}

type favoriteRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleTech(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, sess.Showcase.View(viewportWidth(c)))
}

// handleTechFilter toggles the category filter; an empty category clears it.
func (s *Server) handleTechFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid filter request")
		return
	}
	if req.Category != "" && !s.knownCategory(req.Category) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown category " + req.Category})
		return
	}

	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Showcase.SetFilter(req.Category)
	c.JSON(http.StatusOK, sess.Showcase.View(viewportWidth(c)))
}

func (s *Server) knownCategory(name string) bool {
	for _, cat := range s.site.Categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

func (s *Server) handleTechFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "technology name is required")
		return
	}

	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Showcase.ToggleFavorite(req.Name)
	c.JSON(http.StatusOK, sess.Showcase.View(viewportWidth(c)))
}

func (s *Server) handleTechShowAll(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Showcase.ToggleShowAll()
	c.JSON(http.StatusOK, sess.Showcase.View(viewportWidth(c)))
}
