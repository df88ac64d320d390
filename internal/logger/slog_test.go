package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger Сбрасывает глобальный логгер между тестами.
func resetLogger(t *testing.T) {
	t.Helper()

	Log = nil
	once = sync.Once{}
	t.Cleanup(func() {
		Log = nil
		once = sync.Once{}
	})
}

// TestInitLoggerStdStreams Проверяет, что для стандартных потоков не остаётся файла для закрытия.
func TestInitLoggerStdStreams(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", "", "STDERR"} {
		t.Run("output="+output, func(t *testing.T) {
			resetLogger(t)

			InitLogger("info", output)

			require.NotNil(t, Log)
			assert.Nil(t, Log.(*SlogAdapter).output)
			assert.NoError(t, Log.(*SlogAdapter).Close())
		})
	}
}

// TestInitLoggerFileOutput Проверяет запись лога в файл через lumberjack и фильтрацию по уровню.
func TestInitLoggerFileOutput(t *testing.T) {
	resetLogger(t)

	path := filepath.Join(t.TempDir(), "exporter.log")

	InitLogger("info", path)
	require.NotNil(t, Log)

	Log.Info("file message", String("channel", "Lobby"), Int64("cid", 10))
	Log.Debug("hidden message")
	require.NoError(t, Log.(*SlogAdapter).Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file message")
	assert.Contains(t, string(data), "channel=Lobby")
	assert.Contains(t, string(data), "cid=10")
	assert.NotContains(t, string(data), "hidden message")
}

// TestInitLoggerOnce Проверяет, что повторная инициализация не заменяет логгер.
func TestInitLoggerOnce(t *testing.T) {
	resetLogger(t)

	InitLogger("debug", "stderr")
	first := Log

	InitLogger("error", filepath.Join(t.TempDir(), "second.log"))
	assert.Same(t, first, Log)
}

// TestParseLevel Проверяет разбор уровня логирования.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelDebug},
		{"unknown_level", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

// TestErrField Проверяет поле с ошибкой.
func TestErrField(t *testing.T) {
	field := Err(errors.New("connection refused"))

	assert.Equal(t, "err", field.Key)
	assert.Equal(t, "connection refused", field.Value)

	assert.Equal(t, "", Err(nil).Value)
}

// TestDurationField Проверяет поле с длительностью.
func TestDurationField(t *testing.T) {
	field := Duration("took", 1500*time.Millisecond)

	assert.Equal(t, "took", field.Key)
	assert.Equal(t, "1.5s", field.Value)
}

// TestSlogAdapterWarn Проверяет уровень Warn, которым логируются ответы 5xx.
func TestSlogAdapterWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))}

	adapter.Info("skipped")
	adapter.Warn("webquery slow", Duration("elapsed", 2*time.Second))

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "webquery slow")
	assert.Contains(t, buf.String(), "elapsed=2s")
}
