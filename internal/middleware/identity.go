package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const callerIDKey = "caller_id"

// IdentityMiddleware resolves the caller identity every mutating operation is
// audited with. The identity source is the X-User-Id header set by the
// gateway in front of this service; swap this middleware to change sources.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-Id")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-Id header is required"})
			return
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-Id header"})
			return
		}

		c.Set(callerIDKey, id)
		c.Next()
	}
}

// CallerID returns the identity resolved by IdentityMiddleware. Zero when the
// middleware did not run, which only happens on unauthenticated routes.
func CallerID(c *gin.Context) uint64 {
	v, _ := c.Get(callerIDKey)
	id, _ := v.(uint64)
	return id
}
