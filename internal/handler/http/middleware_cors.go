package http

import "net/http"

const (
	corsAllowHeaders  = "Origin, X-Requested-With, Content-Type, Accept, Authorization"
	corsAllowMethods  = "GET, POST, PATCH, DELETE"
	corsExposeHeaders = "Authorization, " + traceIDHeader
)

// withCORS sets the CORS response headers on every request and answers
// preflight OPTIONS requests with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", h.allowedOrigin)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
