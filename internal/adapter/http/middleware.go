package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"blogapi/internal/app"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// authMiddleware gates protected routes with a bearer token. A missing
// header denies access outright; a presented token is rejected when it is
// unknown to the active set or fails verification.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusForbidden, "Access denied", "Access denied, no token provided")
			return
		}

		claims, err := s.auth.Authenticate(r.Context(), parts[1])
		switch {
		case errors.Is(err, app.ErrTokenNotFound):
			writeError(w, http.StatusBadRequest, "Invalid token", "Invalid token")
		case errors.Is(err, app.ErrTokenInvalid):
			writeError(w, http.StatusBadRequest, "Invalid token", "Invalid or expired token")
		case err != nil:
			writeError(w, http.StatusInternalServerError, "Internal error", "unexpected error")
		default:
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware records method, path, status and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
