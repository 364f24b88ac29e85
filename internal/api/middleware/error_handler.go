package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"whisper-prompting/internal/api/errors"
)

// ErrorHandler recovers panics and renders every error as a structured
// APIError body. Handlers surface errors through HandleError below; anything
// else reaching this middleware is an internal fault and gets a generic 500
// so upstream failure details never leak by accident.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(requestIDKey)

		var apiErr *errors.APIError
		if known, ok := recovered.(*errors.APIError); ok {
			apiErr = known
		} else {
			logger.Error("unhandled panic",
				"recovered", recovered,
				"request_id", requestID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			apiErr = errors.NewInternalError("Internal server error")
		}
		apiErr.RequestID = requestID

		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError renders an APIError response. Non-APIError values panic into
// ErrorHandler, which logs them and answers with a generic 500.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr, ok := err.(*errors.APIError)
	if !ok {
		panic(err)
	}

	apiErr.RequestID = c.GetString(requestIDKey)
	c.Header("Content-Type", "application/json")
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
