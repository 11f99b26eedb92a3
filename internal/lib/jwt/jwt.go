package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"connemaraqueens/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// NewToken issues an HS256 token carrying the user id.
func NewToken(user models.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			tokenStr := parts[1]

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid claims", http.StatusUnauthorized)
				return
			}

			userID, ok := claims["uid"].(float64)
			if !ok {
				http.Error(w, "invalid user_id claim", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), models.ContextKey("uid"), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
