package analytics

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var skippedPrefixes = []string{
	"/static/",
	"/images/",
	"/favicon",
	"/healthz",
	"/stats",
	"/splash/",
	"/contact/",
	"/reveal",
}

// Tracked reports whether views of path are recorded. Assets, polling and
// interaction endpoints are not page views.
func Tracked(path string) bool {
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records successful page views into s, skipping visitors who
// send DNT: 1.
func Middleware(s *Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !Tracked(path) {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := s.Record(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			logger.Warn("record visitor failed", zap.Error(err))
		}
	}
}
