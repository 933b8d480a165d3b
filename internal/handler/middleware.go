package handler

import (
	"context"
	"net"
	"net/http"

	"github.com/msomdec/devconnect/internal/service"
)

// TokenHeader is the request header carrying the signed token.
const TokenHeader = "x-auth-token"

type contextKey string

const userIDContextKey contextKey = "userID"

// UserIDFromContext extracts the authenticated user id from the request
// context. The second return is false for unauthenticated requests.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// RequireAuth is middleware that protects routes requiring authentication.
// It verifies the token from the x-auth-token header and injects the
// embedded user id into the request context. The user record itself is not
// loaded here; handlers that need it fetch it and handle a missing account
// themselves.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "no token, access denied")
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "token is invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit throttles requests per client IP using the given bucket.
func RateLimit(limiter *service.TokenBucket, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(clientIP(r)) {
			writeMessage(w, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
