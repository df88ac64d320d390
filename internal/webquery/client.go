package webquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

// Endpoint Команда WebQuery.
type Endpoint string

const (
	EndpointVersion      Endpoint = "version"
	EndpointServerInfo   Endpoint = "serverinfo"
	EndpointChannelList  Endpoint = "channellist"
	EndpointClientList   Endpoint = "clientlist"
	EndpointClientInfo   Endpoint = "clientinfo"
	EndpointClientDBList Endpoint = "clientdblist"
	EndpointClientDBInfo Endpoint = "clientdbinfo"
)

// codeEmptyResult "database empty result set": WebQuery так сообщает о пустой выборке.
const codeEmptyResult = 1281

// Максимальный размер тела ответа.
const maxResponseSize = 32 << 20

// global Сообщает, что команда выполняется вне контекста виртуального сервера.
func (e Endpoint) global() bool {
	return e == EndpointVersion
}

// envelope Конверт ответа WebQuery.
type envelope struct {
	Body   []map[string]json.RawMessage `json:"body"`
	Status *struct {
		Code    *int   `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// HTTPClient Клиент WebQuery поверх HTTP.
type HTTPClient struct {
	baseURL    *url.URL
	serverID   int
	apiKey     string
	httpClient *http.Client
	maxBody    int64
}

// NewHTTPClient Конструктор, возвращающий клиент WebQuery для виртуального сервера serverID.
func NewHTTPClient(baseURL string, serverID int, apiKey string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("некорректный адрес WebQuery: %w", err)
	}

	return &HTTPClient{
		baseURL:    u,
		serverID:   serverID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		maxBody:    maxResponseSize,
	}, nil
}

// Host Хост WebQuery без порта.
func (c *HTTPClient) Host() string {
	return c.baseURL.Hostname()
}

// Port Порт WebQuery (явный или по умолчанию для схемы).
func (c *HTTPClient) Port() string {
	if port := c.baseURL.Port(); port != "" {
		return port
	}

	if c.baseURL.Scheme == "https" {
		return "443"
	}

	return "80"
}

// endpointURL Собирает адрес команды.
func (c *HTTPClient) endpointURL(endpoint Endpoint, params url.Values) string {
	u := *c.baseURL

	if endpoint.global() {
		u.Path = u.Path + "/" + string(endpoint)
	} else {
		u.Path = u.Path + "/" + strconv.Itoa(c.serverID) + "/" + string(endpoint)
	}

	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	return u.String()
}

// Fetch Выполняет GET-запрос к команде WebQuery и возвращает записи из поля body.
// Ошибки соединения возвращаются как errs.TransportError, ошибки уровня API как errs.APIError.
func (c *HTTPClient) Fetch(ctx context.Context, endpoint Endpoint, params url.Values) ([]models.Record, error) {
	name := string(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, params), nil)
	if err != nil {
		return nil, errs.NewTransportError(name, err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewTransportError(name, err)
	}
	defer resp.Body.Close()

	// лишний байт отличает ответ ровно на пределе от обрезанного
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, errs.NewTransportError(name, fmt.Errorf("не удалось прочитать ответ: %w", err))
	}

	if int64(len(data)) > c.maxBody {
		apiErr := errs.NewAPIError(name, errs.CodeTooLarge, fmt.Sprintf("ответ превышает %d байт", c.maxBody))
		apiErr.HTTPStatus = resp.StatusCode

		return nil, apiErr
	}

	logger.Log.Debug("Ответ WebQuery получен",
		logger.String("endpoint", name),
		logger.Int("status", resp.StatusCode),
		logger.Int("size", len(data)),
		logger.Duration("duration", time.Since(start)),
	)

	return decodeEnvelope(name, resp.StatusCode, data)
}

// decodeEnvelope Разбирает конверт WebQuery и проверяет код статуса.
func decodeEnvelope(endpoint string, httpStatus int, data []byte) ([]models.Record, error) {
	var env envelope

	if err := json.Unmarshal(data, &env); err != nil || env.Status == nil || env.Status.Code == nil {
		apiErr := errs.NewAPIError(endpoint, errs.CodeMalformed, "ответ не содержит статуса WebQuery")
		if err != nil {
			apiErr.Message = fmt.Sprintf("ответ не является JSON: %v", err)
		}
		if httpStatus < 200 || httpStatus > 299 {
			apiErr.Message = fmt.Sprintf("HTTP %d: %s", httpStatus, http.StatusText(httpStatus))
		}
		apiErr.HTTPStatus = httpStatus

		return nil, apiErr
	}

	code := *env.Status.Code

	if code == codeEmptyResult {
		return []models.Record{}, nil
	}

	if code != 0 {
		apiErr := errs.NewAPIError(endpoint, code, env.Status.Message)
		apiErr.HTTPStatus = httpStatus

		return nil, apiErr
	}

	if env.Body == nil {
		return nil, errs.NewAPIError(endpoint, errs.CodeMalformed, "ответ не содержит поля body")
	}

	records := make([]models.Record, 0, len(env.Body))
	for _, raw := range env.Body {
		records = append(records, flatten(raw))
	}

	return records, nil
}

// flatten Приводит значения записи к строкам: WebQuery отдаёт строки,
// но числа и булевы значения тоже принимаем.
func flatten(raw map[string]json.RawMessage) models.Record {
	rec := make(models.Record, len(raw))

	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			rec[key] = s
			continue
		}

		text := strings.TrimSpace(string(value))
		if text == "null" {
			text = ""
		}
		rec[key] = text
	}

	return rec
}
