package logger

type Field struct {
	Key   string
	Value string
}

// Logger Интерфейс логгера приложения.
// Для замены реализации достаточно написать ещё один адаптер.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}
