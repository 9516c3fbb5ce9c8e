package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/config"
)

// ContextKey is a dedicated type for context keys so they cannot collide
// with keys set by other packages.
type ContextKey string

// UserIDKey is the context key under which the middleware stores the
// authenticated user's id.
const UserIDKey ContextKey = "userID"

// Claims is the JWT payload: the user id plus the standard registered
// claims (exp, iat, nbf, sub, iss).
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTMiddleware verifies the bearer token on incoming requests and stores
// the user id in the request context. Every failure mode — missing header,
// malformed header, bad signature, expired token — yields the same uniform
// 401 response.
func JWTMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, r, apperror.NewAuthError("invalid or expired token", err))
				return
			}

			if claims.UserID == 0 {
				WriteError(w, r, apperror.NewAuthError("invalid token: user_id claim is missing", nil))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user id set by
// JWTMiddleware. The second return value is false when the request never
// passed through the middleware.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
