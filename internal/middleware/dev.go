package middleware

import "net/http"

// RequireDev fences off the admin authoring surface outside a development
// runtime. The routes are additionally not mounted in production, this is
// the second layer.
func RequireDev(isDev bool) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !isDev {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"error":"Admin API is not available in production"}`))
				return
			}
			next(w, r)
		}
	}
}
