package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/ports"
)

// ContextKeyUserID is the gin context key for the authenticated user ID.
const ContextKeyUserID = "user_id"

// bearerPrefix is the expected Authorization scheme.
const bearerPrefix = "Bearer "

// RequireAuth returns middleware that requires a valid bearer token.
// The token is verified with the issuer and the resulting user ID is
// stored in the gin context for handlers to read via UserID.
func RequireAuth(tokens ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWithUnauthorized(c, "Authentication required")
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			abortWithUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalAuth returns middleware that resolves a bearer token when one is
// present but lets anonymous requests through. Handlers that behave
// differently for signed-in users check UserID themselves.
func OptionalAuth(tokens ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if userID, err := tokens.Verify(token); err == nil {
				c.Set(ContextKeyUserID, userID)
			}
		}

		c.Next()
	}
}

// UserID retrieves the authenticated user ID from the gin context.
// The second return is false for anonymous requests.
func UserID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}

	return "", false
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}

	return token, true
}

// abortWithUnauthorized aborts with a 401 response.
func abortWithUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}
