package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Identity resolves the caller from request headers and stores the user ID
// in context. Authenticated callers send X-User-Id (set by the auth proxy in
// front of this service); anonymous builders send X-Guest-Id, which is
// namespaced so a guest can never collide with a real user ID.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if userID := strings.TrimSpace(c.GetHeader("X-User-Id")); userID != "" {
			c.Set(userIDKey, userID)
			c.Set("isGuest", false)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Set("isGuest", true)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
