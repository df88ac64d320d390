package middleware

import (
	"net/http"
	"time"

	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
)

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Обёртка над http.ResponseWriter, запоминающая статус и размер ответа.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	// статус не выставлен явно, значит net/http отдаст 200
	if l.responseData.status == 0 {
		l.responseData.status = http.StatusOK
	}

	size, err := l.ResponseWriter.Write(b)
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	l.responseData.status = statusCode
}

// Flush Пробрасывает Flush, если его поддерживает исходный writer.
func (l *LoggingResponseWriter) Flush() {
	if f, ok := l.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LogMiddleware Middleware для логирования всех запросов.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		data := responseData{}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		requestID, _ := r.Context().Value(contextkeys.RequestID).(string)

		fields := []logger.Field{
			logger.String("request_id", requestID),
			logger.String("uri", r.RequestURI),
			logger.String("method", r.Method),
			logger.Int("status", data.status),
			logger.Duration("duration", duration),
			logger.Int("size", data.size),
		}

		if data.status >= http.StatusInternalServerError {
			logger.Log.Warn("Запрос завершился ошибкой", fields...)
			return
		}

		logger.Log.Debug("Got incoming HTTP request", fields...)
	}

	return http.HandlerFunc(f)
}
