package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/topology"
)

// Options Параметры сериализации.
type Options struct {
	// Indent Отступ для форматированного вывода. Пустая строка означает компактный вывод.
	Indent string
}

// Render Сериализует дерево сервера в JSON.
// Для одинаковых деревьев результат совпадает побайтово.
func Render(root *topology.ServerNode, opts Options) ([]byte, error) {
	if root == nil {
		return nil, errs.NewEncodingError("", fmt.Errorf("пустое дерево"))
	}

	return Encode(NewDocument(root), opts)
}

// Encode Сериализует готовый документ в JSON, предварительно проверив строки на UTF-8.
func Encode(doc *ServerDocument, opts Options) ([]byte, error) {
	if err := validateServer(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}

	if err := enc.Encode(doc); err != nil {
		return nil, errs.NewEncodingError("", err)
	}

	return buf.Bytes(), nil
}

// encoding/json молча заменяет невалидные байты на U+FFFD, поэтому проверяем заранее.
func validateServer(doc *ServerDocument) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", doc.Name},
		{"welcome_message", doc.WelcomeMessage},
		{"platform", doc.Platform},
		{"version", doc.Version},
		{"status", doc.Status},
	}

	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return invalidUTF8(f.name)
		}
	}

	if err := validateChannels("channels", doc.Channels); err != nil {
		return err
	}

	return validateClients("clients", doc.Clients)
}

func validateChannels(path string, docs []*ChannelDocument) error {
	for i, ch := range docs {
		prefix := fmt.Sprintf("%s[%d]", path, i)

		if !utf8.ValidString(ch.Name) {
			return invalidUTF8(prefix + ".name")
		}
		if !utf8.ValidString(ch.Topic) {
			return invalidUTF8(prefix + ".topic")
		}

		if err := validateChannels(prefix+".channels", ch.Channels); err != nil {
			return err
		}
		if err := validateClients(prefix+".clients", ch.Clients); err != nil {
			return err
		}
	}

	return nil
}

func validateClients(path string, docs []*ClientDocument) error {
	for i, cl := range docs {
		prefix := fmt.Sprintf("%s[%d]", path, i)

		switch {
		case !utf8.ValidString(cl.Name):
			return invalidUTF8(prefix + ".name")
		case !utf8.ValidString(cl.AwayMessage):
			return invalidUTF8(prefix + ".away_message")
		case !utf8.ValidString(cl.Country):
			return invalidUTF8(prefix + ".country")
		case !utf8.ValidString(cl.Type):
			return invalidUTF8(prefix + ".type")
		}
	}

	return nil
}

func invalidUTF8(field string) error {
	return errs.NewEncodingError(field, fmt.Errorf("строка не является корректной UTF-8"))
}
