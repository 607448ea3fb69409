package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ngoportal/internal/models"
	"ngoportal/internal/service"
)

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "session_id"

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

func WithIdentity(ctx context.Context, ident *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*models.Identity)
	return ident, ok && ident != nil
}

// SessionMiddleware resolves the session cookie to an identity and stores
// it in the request context. It never rejects a request; RequireAuth does
// that on the routes that need it.
func SessionMiddleware(auth service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				if ident, err := auth.CurrentUser(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(WithIdentity(r.Context(), ident))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth gates a single route on the presence of an identity.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "authentication required"})
			return
		}

		next.ServeHTTP(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
