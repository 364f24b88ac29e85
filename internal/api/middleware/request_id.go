package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id. A client-supplied
// value is honored so a caller can trace its own requests through the logs.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the logging and error middleware read.
const requestIDKey = "request_id"

// RequestID attaches a correlation id to the request context and echoes it
// back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
