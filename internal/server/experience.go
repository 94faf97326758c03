package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleExperience(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, sess.Timeline.View())
}

func (s *Server) handleExperienceToggle(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	if err := sess.Timeline.Toggle(idx); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Timeline.View())
}
