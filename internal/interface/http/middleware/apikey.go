package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-integration/pkg/errors"
	"github.com/xiebiao/bookstore-integration/pkg/response"
)

// HeaderAPIKey is the header every protected route must carry.
const HeaderAPIKey = "x-api-key"

// APIKeyMiddleware rejects requests whose x-api-key header does not match
// the process-configured shared secret.
type APIKeyMiddleware struct {
	apiKey string
}

// NewAPIKeyMiddleware creates the middleware around the configured secret.
func NewAPIKeyMiddleware(apiKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKey: apiKey}
}

// RequireAPIKey aborts with 401 before any handler runs, so a rejected
// request never causes a side effect.
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderAPIKey) != m.apiKey {
			response.AbortError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}
