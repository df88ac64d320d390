package errs

import (
	"errors"
	"fmt"
)

// Коды статуса WebQuery, которые обрабатываются особо.
const (
	// CodeNotFound Запрошенный объект (клиент, канал) не существует.
	CodeNotFound = 512

	// CodeInvalidCredentials Ключ API отклонён сервером.
	CodeInvalidCredentials = 5122

	// CodeMalformed Ответ не удалось разобрать (код назначается локально).
	CodeMalformed = -1

	// CodeTooLarge Тело ответа превысило допустимый размер (код назначается локально).
	CodeTooLarge = -2
)

// TransportError Кастомная ошибка, сообщающая, что до WebQuery API не удалось достучаться
// (соединение, таймаут, отмена контекста, нечитаемый ответ).
type TransportError struct {
	Endpoint string
	Err      error
}

func (te *TransportError) Error() string {
	return fmt.Sprintf("Ошибка соединения с WebQuery (%s): %v", te.Endpoint, te.Err)
}

func (te *TransportError) Unwrap() error {
	return te.Err
}

func NewTransportError(endpoint string, err error) *TransportError {
	if err == nil {
		err = errors.New("неизвестная ошибка транспорта")
	}

	return &TransportError{
		Endpoint: endpoint,
		Err:      err,
	}
}

// APIError Кастомная ошибка, сообщающая, что WebQuery API ответил неуспешным статусом
// или прислал ответ, который невозможно разобрать.
type APIError struct {
	Endpoint   string
	Code       int
	Message    string
	HTTPStatus int
}

func (ae *APIError) Error() string {
	return fmt.Sprintf("Запрос к WebQuery (%s) завершился ошибкой: %d (%s)", ae.Endpoint, ae.Code, ae.Message)
}

// NotFound Сообщает, что запрошенный объект не существует.
func (ae *APIError) NotFound() bool {
	return ae.Code == CodeNotFound
}

// Unauthorized Сообщает, что ключ API отклонён.
func (ae *APIError) Unauthorized() bool {
	return ae.Code == CodeInvalidCredentials || ae.HTTPStatus == 401 || ae.HTTPStatus == 403
}

func NewAPIError(endpoint string, code int, message string) *APIError {
	return &APIError{
		Endpoint: endpoint,
		Code:     code,
		Message:  message,
	}
}

// EncodingError Кастомная ошибка, сообщающая, что дерево не удалось сериализовать.
// Для корректных записей возникать не должна.
type EncodingError struct {
	Field string
	Err   error
}

func (ee *EncodingError) Error() string {
	if ee.Field == "" {
		return fmt.Sprintf("Ошибка сериализации: %v", ee.Err)
	}

	return fmt.Sprintf("Ошибка сериализации поля `%s`: %v", ee.Field, ee.Err)
}

func (ee *EncodingError) Unwrap() error {
	return ee.Err
}

func NewEncodingError(field string, err error) *EncodingError {
	if err == nil {
		err = errors.New("значение не может быть представлено в JSON")
	}

	return &EncodingError{
		Field: field,
		Err:   err,
	}
}
