package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hankookn/teamblog/internal/ctxkeys"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request a UUID (or adopts the caller's) and
// echoes it back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithRequestID(r.Context(), id)))
	})
}
