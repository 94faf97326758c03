package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/timeline"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, gallery.ErrUnknownItem),
		errors.Is(err, gallery.ErrImageIndex),
		errors.Is(err, timeline.ErrIndex):
		return http.StatusNotFound
	case errors.Is(err, contact.ErrSubmitting):
		return http.StatusConflict
	case errors.Is(err, contact.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
