package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ctxKey struct{}

// Header carries the request id on both requests and responses.
const Header = "X-Request-Id"

// Middleware assigns every request an id, echoes it on the response, and puts
// it in the request context so handlers can log with it. An id supplied by the
// caller is kept.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)

		logger := log.With().Str("requestId", id).Logger()
		ctx := logger.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request id, or "" if the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
