package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rl1809/shelf-service/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, carried in the request context
// and echoed in the response header, and writes one access log line.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		ctx := logging.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		event := logging.Ctx(ctx).Info()
		if status >= 500 {
			event = logging.Ctx(ctx).Error()
		} else if status >= 400 {
			event = logging.Ctx(ctx).Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// NewRouter builds the gin engine with recovery, request logging and the API
// routes.
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())
	h.Register(r)
	return r
}
