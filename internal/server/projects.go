package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/gallery"
)

// withGallery runs fn under the session lock and answers with the updated
// gallery view.
func withGallery(c *gin.Context, fn func(g *gallery.Gallery) error) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	if err := fn(sess.Gallery); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Gallery.View())
}

func indexParam(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "index must be an integer")
		return 0, false
	}
	return i, true
}

func (s *Server) handleProjects(c *gin.Context) {
	withGallery(c, func(*gallery.Gallery) error { return nil })
}

func (s *Server) handleProjectSelect(c *gin.Context) {
	withGallery(c, func(g *gallery.Gallery) error { return g.ToggleSelect(c.Param("id")) })
}

func (s *Server) handleProjectClose(c *gin.Context) {
	withGallery(c, func(g *gallery.Gallery) error {
		g.Close()
		return nil
	})
}

func (s *Server) handleProjectLike(c *gin.Context) {
	withGallery(c, func(g *gallery.Gallery) error {
		_, err := g.ToggleLike(c.Param("id"))
		return err
	})
}

func (s *Server) handleProjectNext(c *gin.Context) {
	withGallery(c, func(g *gallery.Gallery) error {
		_, err := g.Advance(c.Param("id"))
		return err
	})
}

func (s *Server) handleProjectPrev(c *gin.Context) {
	withGallery(c, func(g *gallery.Gallery) error {
		_, err := g.Retreat(c.Param("id"))
		return err
	})
}

func (s *Server) handleProjectJump(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	withGallery(c, func(g *gallery.Gallery) error {
		_, err := g.JumpTo(c.Param("id"), idx)
		return err
	})
}

type imageLoadRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// handleImageLoad records the aspect ratio of a loaded image. Clients that
// cannot report dimensions leave the body empty and the server measures the
// asset itself; an asset that cannot be measured is treated as failed.
func (s *Server) handleImageLoad(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var req imageLoadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid image dimensions")
			return
		}
	}
	id := c.Param("id")

	withGallery(c, func(g *gallery.Gallery) error {
		if req.Width > 0 && req.Height > 0 {
			return g.ImageLoaded(id, idx, float64(req.Width)/float64(req.Height))
		}
		ref, err := g.Original(id, idx)
		if err != nil {
			return err
		}
		if g.Substituted(id, idx) || g.Measured(id, idx) {
			return nil
		}
		ratio, err := s.assets.Measure(ref)
		if err != nil {
			return s.substitute(g, id, idx, ref, err)
		}
		return g.ImageLoaded(id, idx, ratio)
	})
}

func (s *Server) handleImageError(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	id := c.Param("id")
	withGallery(c, func(g *gallery.Gallery) error {
		ref, err := g.Original(id, idx)
		if err != nil {
			return err
		}
		return s.substitute(g, id, idx, ref, nil)
	})
}

func (s *Server) substitute(g *gallery.Gallery, id string, idx int, ref string, cause error) error {
	replaced, err := g.ImageFailed(id, idx)
	if err != nil {
		return err
	}
	if replaced {
		slog.Warn("Failed to load project image, using placeholder", "project", id, "ref", ref, "err", cause)
	}
	return nil
}
