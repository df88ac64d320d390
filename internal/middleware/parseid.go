package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/ts3-state-exporter/internal/api/response"
	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
)

// ParseClientIDMiddleware извлекает и валидирует clientID из URL параметров роутера Chi.
func ParseClientIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "clientID")

		if idStr == "" {
			logger.Log.Error("В запросе отсутствует clientID")
			response.ErrorJSON(w, http.StatusBadRequest, "В запросе отсутствует id клиента")
			return
		}

		// Парсим строку в int64
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logger.Log.Error("Некорректный id", logger.String("clientID", idStr))
			response.ErrorJSON(w, http.StatusBadRequest, "Некорректный id клиента")
			return
		}

		if id <= 0 {
			logger.Log.Error("Некорректный id: должен быть положительным", logger.Int64("clientID", id))
			response.ErrorJSON(w, http.StatusBadRequest, "id клиента должен быть положительным числом")
			return
		}

		ctx := context.WithValue(r.Context(), contextkeys.ClientID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
