package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type of keys stored by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

const requestIDHeader = "X-Request-ID"

// GetRequestIDFromContext retrieves the request ID assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}
