package middleware

import (
	"context"
	"net/http"

	"launchdash/domain/core"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// resolveRequestID keeps a well-formed caller id and mints one otherwise
func resolveRequestID(header string) core.RequestID {
	if id, err := core.ParseRequestID(header); err == nil {
		return id
	}
	return core.NewRequestID()
}

// RequestID tags every gin request with an id, echoed in the response header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := resolveRequestID(c.GetHeader(RequestIDHeader))
		c.Set(RequestIDHeader, id.String())
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ctxKey{}, id))
		c.Header(RequestIDHeader, id.String())
		c.Next()
	}
}

// RequestIDHandler is the net/http form of RequestID for chi routers
func RequestIDHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := resolveRequestID(r.Header.Get(RequestIDHeader))
		w.Header().Set(RequestIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestIDFrom returns the id stored by either middleware
func RequestIDFrom(ctx context.Context) (core.RequestID, bool) {
	id, ok := ctx.Value(ctxKey{}).(core.RequestID)
	return id, ok
}
