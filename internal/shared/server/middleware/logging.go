package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		userID, _ := c.Get(userIDKey)
		isGuest, _ := c.Get("isGuest")
		resumeID, _ := c.Get("resumeId")
		domain, _ := c.Get("siteDomain")
		publishTransition := ""
		if raw, ok := c.Get("publishTransition"); ok {
			if s, ok := raw.(string); ok {
				publishTransition = s
			}
		}

		telemetry.Info("request.complete", map[string]any{
			"request_id":         reqID,
			"method":             c.Request.Method,
			"path":               c.Request.URL.Path,
			"status":             status,
			"publish_transition": publishTransition,
			"duration_ms":        float64(latency.Microseconds()) / 1000.0,
			"user_id":            userID,
			"resume_id":          resumeID,
			"site_domain":        domain,
			"is_guest":           isGuest,
			"client_ip":          c.ClientIP(),
			"user_agent":         c.Request.UserAgent(),
		})
	}
}
