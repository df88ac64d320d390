package errs

import "errors"

// Коды завершения процесса.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitTransport = 2
	ExitAPI       = 3
	ExitEncoding  = 4
)

// ExitCode Возвращает код завершения процесса для ошибки.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		transportErr *TransportError
		apiErr       *APIError
		encodingErr  *EncodingError
	)

	switch {
	case errors.As(err, &encodingErr):
		return ExitEncoding
	case errors.As(err, &apiErr):
		return ExitAPI
	case errors.As(err, &transportErr):
		return ExitTransport
	default:
		return ExitFailure
	}
}
