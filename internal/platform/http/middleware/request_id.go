// Package middleware provides cross-cutting Gin middleware for the HTTP layer.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the gin context key holding the request ID.
const ContextRequestID = "requestID"

// RequestID tags every request with a correlation ID so log lines from one
// request can be tied together. An incoming X-Request-ID is honored;
// otherwise a fresh UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Logger returns the default logger annotated with the request's
// correlation ID. Handlers log through this so every line produced
// while serving one request carries the same request_id.
func Logger(c *gin.Context) *slog.Logger {
	return slog.Default().With("request_id", c.GetString(ContextRequestID))
}
