package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
)

// APIError Модель возвращаемых ответов при ошибках.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON Пишет в ответ хендлера произвольные данные.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RawJSON Пишет в ответ уже сериализованный документ.
func RawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// ErrorJSON Шаблон для ответа с ошибкой в хендлерах.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIError{Code: status, Message: message})
}

// StatusFor Сопоставляет ошибку запроса к WebQuery с HTTP-статусом и сообщением для клиента.
func StatusFor(err error) (int, string) {
	var (
		apiErr       *errs.APIError
		transportErr *errs.TransportError
		encodingErr  *errs.EncodingError
	)

	switch {
	case errors.As(err, &encodingErr):
		return http.StatusInternalServerError, "Не удалось сериализовать ответ"
	case errors.As(err, &apiErr) && apiErr.NotFound():
		return http.StatusNotFound, "Объект не найден"
	case errors.As(err, &apiErr) && apiErr.Unauthorized():
		return http.StatusBadGateway, "WebQuery отклонил ключ API"
	case errors.As(err, &apiErr):
		return http.StatusBadRequest, apiErr.Message
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, "WebQuery недоступен"
	default:
		return http.StatusInternalServerError, "Внутренняя ошибка сервера"
	}
}

// WebQueryErrorJSON Отвечает ошибкой, соответствующей типу ошибки WebQuery.
func WebQueryErrorJSON(w http.ResponseWriter, err error) {
	status, message := StatusFor(err)
	ErrorJSON(w, status, message)
}
