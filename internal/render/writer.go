package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdoutTarget Значение флага вывода, означающее стандартный вывод.
const StdoutTarget = "-"

// Write Отправляет документ в stdout (target пуст или "-") либо атомарно записывает в файл.
func Write(target string, data []byte, stdout io.Writer) error {
	if target == "" || target == StdoutTarget {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("ошибка записи в stdout: %w", err)
		}
		return nil
	}

	return WriteFile(target, data)
}

// WriteFile Пишет данные во временный файл рядом с целевым и переименовывает его,
// так что читатель видит либо старый, либо полностью новый документ.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("не удалось создать временный файл в %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("ошибка записи во временный файл: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("ошибка сброса временного файла на диск: %w", err)
	}

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("не удалось выставить права на файл: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия временного файла: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("не удалось переименовать %s в %s: %w", tmpName, path, err)
	}

	return nil
}
