// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, per-IP rate limiting, and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campusgate/campusgate-go/internal/service"
	"github.com/campusgate/campusgate-go/internal/token"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth returns middleware that validates the Bearer token from the
// Authorization header and confirms the token still resolves to an existing
// user. Each failure mode reports 401 with its own message; the status code
// never distinguishes them further.
func Auth(tokens *token.Service, users service.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Token not found")
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				unauthorized(w, "Token is invalid")
				return
			}

			userID, err := tokens.Validate(tokenString)
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					unauthorized(w, "Token has expired")
				case errors.Is(err, token.ErrTokenRevoked):
					unauthorized(w, "Token has been revoked")
				default:
					unauthorized(w, "Token is invalid")
				}
				return
			}

			if _, err := users.GetByID(r.Context(), userID); err != nil {
				unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeEnvelope(w, http.StatusUnauthorized, msg)
}

func writeEnvelope(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"statuscode": status,
		"data":       nil,
		"message":    msg,
	})
}
