package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// quietPaths are probe endpoints not worth a log line per hit.
var quietPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// StructuredLogging emits one slog record per request with the correlation
// id, outcome and latency.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if quietPaths[param.Path] {
			return ""
		}

		requestID := ""
		if param.Keys != nil {
			if id, ok := param.Keys[requestIDKey].(string); ok {
				requestID = id
			}
		}

		logger.Info("http request",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
