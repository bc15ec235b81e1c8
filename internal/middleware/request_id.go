package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roa-expert-system/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an id (or adopts the caller's), echoes
// it in the response header and threads it through the request context
// so every log line of the run carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.CtxWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
