package http

import (
	"net/http"
	"strings"

	"storefront-api/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the resulting identity
// on the request context. Role claims come from the verified token only.
func AuthMiddleware(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Status:  "error",
				Message: "Authorization token required",
			})
			return
		}

		identity, err := v.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Status:  "error",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityFrom(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, Response{
				Status:  "error",
				Message: "Administrator access required",
			})
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) auth.Identity {
	v, _ := c.Get(identityKey)
	identity, _ := v.(auth.Identity)
	return identity
}
