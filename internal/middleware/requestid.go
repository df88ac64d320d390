package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
)

// RequestIDHeader Заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware Присваивает запросу идентификатор: берёт его из X-Request-ID,
// если там UUID, иначе генерирует новый. Идентификатор возвращается в том же заголовке.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), contextkeys.RequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
