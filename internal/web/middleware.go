package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/visit"
)

const (
	visitCookie = "visit_id"
	visitKey    = "visit"
)

// withVisit attaches the visitor's session, starting one when the cookie
// is missing or has expired.
func (s *Server) withVisit(c *gin.Context) {
	id, _ := c.Cookie(visitCookie)
	v, err := s.visits.Resolve(id)
	if err != nil {
		s.log.Warn("resolve visit", zap.Error(err))
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	if v.ID != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitCookie, v.ID, 0, "/", "", false, true)
	}
	c.Set(visitKey, v)
	c.Next()
}

// requireVisit attaches an existing session. Interaction endpoints only
// make sense against a page the visitor has loaded, so they never start
// one.
func (s *Server) requireVisit(c *gin.Context) {
	id, _ := c.Cookie(visitCookie)
	v, ok := s.visits.Get(id)
	if !ok {
		c.String(http.StatusConflict, "no active visit")
		c.Abort()
		return
	}
	c.Set(visitKey, v)
	c.Next()
}

func currentVisit(c *gin.Context) *visit.Visit {
	return c.MustGet(visitKey).(*visit.Visit)
}
