// Package ctxutil bridges gin request state into the plain context the
// inner layers consume.
package ctxutil

import (
	"context"

	"storefront/api/response"
	"storefront/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// WithRequestID returns the request context carrying the request id, so
// persistence-layer logs correlate with the HTTP access log.
func WithRequestID(ctx *gin.Context) context.Context {
	requestID := response.GetRequestID(ctx)
	return persistence.ContextWithRequestID(ctx.Request.Context(), requestID)
}

// RequestIDFromContext extracts the request id again.
func RequestIDFromContext(ctx context.Context) string {
	return persistence.RequestIDFromContext(ctx)
}
