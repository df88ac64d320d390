package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteStdout Проверяет вывод в stdout.
func TestWriteStdout(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "Пустая цель", target: ""},
		{name: "Дефис", target: StdoutTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Write(tt.target, []byte("{}\n"), &buf))
			assert.Equal(t, "{}\n", buf.String())
		})
	}
}

// TestWriteFile Проверяет атомарную запись и перезапись файла.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	require.NoError(t, Write(path, []byte(`{"v":1}`), nil))
	require.NoError(t, Write(path, []byte(`{"v":2}`), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	// временных файлов не осталось
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestWriteFileMissingDir Проверяет ошибку записи в несуществующий каталог.
func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "state.json")

	err := WriteFile(path, []byte("{}"))
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
