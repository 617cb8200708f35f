package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ownerIDKey stores the authenticated tenant. The owner is the JWT subject.
const ownerIDKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the authenticated owner ID from the Gin or request context.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	if ownerID, ok := c.Value(string(ownerIDKey)).(string); ok && ownerID != "" {
		return ownerID, true
	}
	if c.Request != nil {
		return GetOwnerIDFromCtx(c.Request.Context())
	}
	return "", false
}

// GetOwnerIDFromCtx retrieves the owner ID from a standard context.
func GetOwnerIDFromCtx(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerIDKey).(string)
	return ownerID, ok && ownerID != ""
}
