package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
)

// deliveryTimeout bounds a single send; the visitor cannot cancel it.
const deliveryTimeout = 30 * time.Second

func (s *Server) handleContact(c *gin.Context) {
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, s.contactView(sess))
}

// handleContactFields stores the form inputs as the visitor types.
func (s *Server) handleContactFields(c *gin.Context) {
	var in contact.Fields
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, "invalid contact fields")
		return
	}
	sess := current(c)
	sess.Lock()
	defer sess.Unlock()
	sess.Contact.SetFields(in)
	c.JSON(http.StatusOK, s.contactView(sess))
}

// handleContactSubmit delivers the form. The session lock is released while
// the message is in flight so the rest of the page stays interactive; only
// another submit is refused until delivery finishes.
func (s *Server) handleContactSubmit(c *gin.Context) {
	sess := current(c)

	var in *contact.Fields
	if c.Request.ContentLength > 0 {
		in = &contact.Fields{}
		if err := c.ShouldBind(in); err != nil {
			badRequest(c, "invalid contact fields")
			return
		}
	}

	sess.Lock()
	if sess.Contact.Status() == contact.StatusSubmitting {
		sess.Unlock()
		abortWithError(c, contact.ErrSubmitting)
		return
	}
	if in != nil {
		sess.Contact.SetFields(*in)
	}
	if err := sess.Contact.Fields().Validate(); err != nil {
		sess.Unlock()
		abortWithError(c, err)
		return
	}
	if !sess.Limiter.Allow() {
		sess.Unlock()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, please wait a minute"})
		return
	}
	msg, err := sess.Contact.Begin()
	sess.Unlock()
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), deliveryTimeout)
	defer cancel()
	sendErr := s.sender.Send(ctx, msg)

	sess.Lock()
	defer sess.Unlock()
	sess.Contact.Complete(sendErr)
	view := s.contactView(sess)

	if sendErr != nil {
		slog.Error("Contact delivery failed", "session", sess.ID, "err", sendErr)
		c.JSON(http.StatusBadGateway, gin.H{"error": contact.FailureNotice, "contact": view})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your message! I'll get back to you soon.", "contact": view})
}
