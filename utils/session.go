package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "visitor_id"

// VisitorSessionMiddleware assigns a stable visitor id to the cookie session.
// Click attribution keys uniqueness on (ip, visitor id).
func VisitorSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionIDKey) == nil {
			session.Set(sessionIDKey, uuid.New().String())
			if err := session.Save(); err != nil {
				LogError("Failed to save visitor session: %v", err)
			}
		}
		c.Next()
	}
}

// VisitorSessionID returns the caller's session id. The X-Session-ID header
// wins so native clients without cookie support can attribute clicks too.
func VisitorSessionID(c *gin.Context) string {
	if header := c.GetHeader("X-Session-ID"); header != "" {
		return header
	}
	session := sessions.Default(c)
	if id, ok := session.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
