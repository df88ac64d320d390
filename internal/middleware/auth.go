package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/trsv-dev/ts3-state-exporter/internal/api/response"
	"github.com/trsv-dev/ts3-state-exporter/internal/auth"
	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
)

// BearerAuthMiddleware Middleware, который проверяет JWT-токен из заголовка
// `Authorization: Bearer <token>` и кладёт subject токена в контекст запроса.
// При пустом JWTSecretKey проверка отключена.
func BearerAuthMiddleware(JWTSecretKey string, tokenBuilder auth.TokenBuilder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if JWTSecretKey == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			scheme, tokenString, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
				logger.Log.Warn("Запрос без токена доступа", logger.String("uri", r.RequestURI))
				w.Header().Set("WWW-Authenticate", `Bearer realm="ts3state"`)
				response.ErrorJSON(w, http.StatusUnauthorized, "Требуется токен доступа")
				return
			}

			claims, err := tokenBuilder.GetClaims(strings.TrimSpace(tokenString), JWTSecretKey)
			if err != nil {
				logger.Log.Warn("Недействительный токен доступа", logger.Err(err))
				w.Header().Set("WWW-Authenticate", `Bearer realm="ts3state", error="invalid_token"`)
				response.ErrorJSON(w, http.StatusUnauthorized, "Недействительный токен доступа")
				return
			}

			ctx := context.WithValue(r.Context(), contextkeys.Subject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
