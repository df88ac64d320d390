package webquery_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

func init() {
	logger.InitLogger("error", "stderr")
}

// Создание тестового WebQuery, отвечающего фиксированным телом.
func newTestServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newClient(t *testing.T, baseURL string) *webquery.HTTPClient {
	t.Helper()

	client, err := webquery.NewHTTPClient(baseURL, 1, "secret-key", 2*time.Second)
	require.NoError(t, err)

	return client
}

// TestHTTPClientImplementsInterface Проверяет что HTTPClient реализует Fetcher.
func TestHTTPClientImplementsInterface(t *testing.T) {
	var _ webquery.Fetcher = (*webquery.HTTPClient)(nil)
}

// TestFetchSuccess Проверяет успешный запрос, путь, заголовок ключа и параметры.
func TestFetchSuccess(t *testing.T) {
	var got *http.Request

	srv := newTestServer(t, http.StatusOK,
		`{"body":[{"cid":"1","pid":"0","channel_name":"Lobby"},{"cid":"2","pid":"1","channel_name":"Sub"}],"status":{"code":0,"message":"ok"}}`,
		func(r *http.Request) { got = r.Clone(context.Background()) })

	client := newClient(t, srv.URL+"/")

	params := url.Values{}
	params.Set("-flags", "")

	records, err := client.Fetch(context.Background(), webquery.EndpointChannelList, params)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Lobby", records[0]["channel_name"])
	assert.Equal(t, "1", records[1]["pid"])

	require.NotNil(t, got)
	assert.Equal(t, "/1/channellist", got.URL.Path)
	assert.Equal(t, "secret-key", got.Header.Get("x-api-key"))
	_, hasFlags := got.URL.Query()["-flags"]
	assert.True(t, hasFlags)
}

// TestFetchGlobalEndpoint Проверяет, что version запрашивается без id сервера.
func TestFetchGlobalEndpoint(t *testing.T) {
	var path string

	srv := newTestServer(t, http.StatusOK,
		`{"body":[{"version":"3.13.7","build":"1655727713","platform":"Linux"}],"status":{"code":0,"message":"ok"}}`,
		func(r *http.Request) { path = r.URL.Path })

	records, err := newClient(t, srv.URL).Fetch(context.Background(), webquery.EndpointVersion, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "/version", path)
	assert.Equal(t, "Linux", records[0]["platform"])
}

// TestFetchNonStringValues Проверяет приведение нестроковых значений к строкам.
func TestFetchNonStringValues(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"body":[{"clid":5,"cid":"1","client_away":true,"client_away_message":null}],"status":{"code":0,"message":"ok"}}`, nil)

	records, err := newClient(t, srv.URL).Fetch(context.Background(), webquery.EndpointClientList, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "5", records[0]["clid"])
	assert.Equal(t, "true", records[0]["client_away"])
	assert.Equal(t, "", records[0]["client_away_message"])
}

// TestFetchEmptyResult Проверяет, что код 1281 трактуется как пустая выборка.
func TestFetchEmptyResult(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"status":{"code":1281,"message":"database empty result set"}}`, nil)

	records, err := newClient(t, srv.URL).Fetch(context.Background(), webquery.EndpointClientDBList, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestFetchAPIErrors Проверяет ошибки уровня API.
func TestFetchAPIErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantCode     int
		notFound     bool
		unauthorized bool
	}{
		{
			name:     "ненулевой код статуса",
			status:   http.StatusOK,
			body:     `{"status":{"code":1538,"message":"invalid parameter"}}`,
			wantCode: 1538,
		},
		{
			name:     "объект не найден",
			status:   http.StatusBadRequest,
			body:     `{"status":{"code":512,"message":"invalid clientID"}}`,
			wantCode: errs.CodeNotFound,
			notFound: true,
		},
		{
			name:         "неверный ключ API",
			status:       http.StatusForbidden,
			body:         `{"status":{"code":5122,"message":"invalid apikey"}}`,
			wantCode:     errs.CodeInvalidCredentials,
			unauthorized: true,
		},
		{
			name:         "HTTP ошибка без конверта",
			status:       http.StatusUnauthorized,
			body:         `Unauthorized`,
			wantCode:     errs.CodeMalformed,
			unauthorized: true,
		},
		{
			name:     "не JSON",
			status:   http.StatusOK,
			body:     `<html></html>`,
			wantCode: errs.CodeMalformed,
		},
		{
			name:     "нет статуса",
			status:   http.StatusOK,
			body:     `{"body":[]}`,
			wantCode: errs.CodeMalformed,
		},
		{
			name:     "нет кода статуса",
			status:   http.StatusOK,
			body:     `{"body":[],"status":{"message":"ok"}}`,
			wantCode: errs.CodeMalformed,
		},
		{
			name:     "нет body при успехе",
			status:   http.StatusOK,
			body:     `{"status":{"code":0,"message":"ok"}}`,
			wantCode: errs.CodeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)

			records, err := newClient(t, srv.URL).Fetch(context.Background(), webquery.EndpointServerInfo, nil)
			require.Error(t, err)
			assert.Nil(t, records)

			var apiErr *errs.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.notFound, apiErr.NotFound())
			assert.Equal(t, tt.unauthorized, apiErr.Unauthorized())
			assert.Equal(t, "serverinfo", apiErr.Endpoint)
		})
	}
}

// TestFetchResponseSizeLimit Проверяет предел размера тела ответа.
func TestFetchResponseSizeLimit(t *testing.T) {
	body := `{"body":[],"status":{"code":0,"message":"ok"}}`

	tests := []struct {
		name    string
		limit   int64
		wantErr bool
	}{
		{"ответ ровно на пределе", int64(len(body)), false},
		{"ответ больше предела", int64(len(body)) - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, body, nil)

			client := newClient(t, srv.URL)
			client.SetMaxBody(tt.limit)

			records, err := client.Fetch(context.Background(), webquery.EndpointChannelList, nil)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Empty(t, records)
				return
			}

			var apiErr *errs.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, errs.CodeTooLarge, apiErr.Code)
			assert.Contains(t, apiErr.Message, "превышает")
			assert.NotContains(t, apiErr.Message, "JSON")
		})
	}
}

// TestFetchTransportError Проверяет ошибку соединения.
func TestFetchTransportError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`, nil)
	addr := srv.URL
	srv.Close()

	_, err := newClient(t, addr).Fetch(context.Background(), webquery.EndpointServerInfo, nil)
	require.Error(t, err)

	var transportErr *errs.TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.Equal(t, errs.ExitTransport, errs.ExitCode(err))
}

// TestFetchCancelledContext Проверяет, что отмена контекста даёт TransportError.
func TestFetchCancelledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"body":[],"status":{"code":0,"message":"ok"}}`, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, srv.URL).Fetch(ctx, webquery.EndpointClientList, nil)
	require.Error(t, err)

	var transportErr *errs.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFetchTimeout Проверяет таймаут HTTP-клиента.
func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client, err := webquery.NewHTTPClient(srv.URL, 1, "key", 50*time.Millisecond)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), webquery.EndpointServerInfo, nil)

	var transportErr *errs.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

// TestHostPort Проверяет извлечение хоста и порта из адреса WebQuery.
func TestHostPort(t *testing.T) {
	tests := []struct {
		baseURL  string
		wantHost string
		wantPort string
	}{
		{"http://127.0.0.1:10080", "127.0.0.1", "10080"},
		{"https://ts.example.org", "ts.example.org", "443"},
		{"http://ts.example.org/webquery/", "ts.example.org", "80"},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			client, err := webquery.NewHTTPClient(tt.baseURL, 1, "key", time.Second)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHost, client.Host())
			assert.Equal(t, tt.wantPort, client.Port())
		})
	}
}
