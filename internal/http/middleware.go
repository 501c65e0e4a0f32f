package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/auth"
)

const identityKey = "tasktrack.identity"

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireAuth verifies the bearer token and attaches the resulting identity
// to the request context. Any failure stops the request with a 401 before
// resource logic runs.
func requireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := tokens.VerifyHeader(c.GetHeader("Authorization"))
		if err != nil {
			message := "invalid token"
			switch {
			case errors.Is(err, auth.ErrTokenMissing):
				message = "authorization required"
			case errors.Is(err, auth.ErrTokenExpired):
				message = "token expired"
			}
			abortWithError(c, http.StatusUnauthorized, message)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFromContext returns the identity attached by requireAuth. This is
// the only source of the requester's account id; handlers never derive it
// from client-supplied data.
func identityFromContext(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
