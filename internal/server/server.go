// Package server exposes the portfolio page state over HTTP. Every endpoint
// answers with JSON view models; the static page shell draws them.
package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
)

type Config struct {
	StaticDir string
	ImagesDir string
}

type Server struct {
	cfg    Config
	site   *content.Site
	store  *session.Store
	assets *assets.Loader
	sender contact.Sender
}

func New(cfg Config, site *content.Site, store *session.Store, loader *assets.Loader, sender contact.Sender) *Server {
	return &Server{
		cfg:    cfg,
		site:   site,
		store:  store,
		assets: loader,
		sender: sender,
	}
}

// Engine builds the gin router with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.Default()

	r.Static("/images", s.cfg.ImagesDir)
	r.Static("/static", s.cfg.StaticDir)
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
	})
	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.Use(s.sessionMiddleware())

	api.GET("/page", s.handlePage)
	api.GET("/sections", s.handleSections)

	api.GET("/hero", s.handleHero)
	api.POST("/hero/folders/:target/touch", s.handleFolderTouch)
	api.POST("/skills/toggle", s.handleSkillToggle)

	projects := api.Group("/projects")
	projects.GET("", s.handleProjects)
	projects.POST("/:id/select", s.handleProjectSelect)
	projects.POST("/close", s.handleProjectClose)
	projects.POST("/:id/like", s.handleProjectLike)
	projects.POST("/:id/next", s.handleProjectNext)
	projects.POST("/:id/prev", s.handleProjectPrev)
	projects.POST("/:id/jump/:index", s.handleProjectJump)
	projects.POST("/:id/images/:index/load", s.handleImageLoad)
	projects.POST("/:id/images/:index/error", s.handleImageError)

	api.GET("/tech", s.handleTech)
	api.POST("/tech/filter", s.handleTechFilter)
	api.POST("/tech/favorite", s.handleTechFavorite)
	api.POST("/tech/show-all", s.handleTechShowAll)

	api.GET("/experience", s.handleExperience)
	api.POST("/experience/:index/toggle", s.handleExperienceToggle)

	api.GET("/contact", s.handleContact)
	api.PUT("/contact", s.handleContactFields)
	api.POST("/contact", s.handleContactSubmit)

	return r
}

// Handler wraps the router with request tracing.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.Engine(), "portfolio")
}
