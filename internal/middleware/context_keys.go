package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// sessionIDKey is the key used to store the visitor's session ID in the request context.
// Using a custom type prevents collisions.
const sessionIDKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionIDFromContext retrieves the session ID set by SessionMiddleware.
// It returns the session ID and a boolean indicating if it was found.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, ok := c.Request.Context().Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
