package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/ts3-state-exporter/internal/auth"
	"github.com/trsv-dev/ts3-state-exporter/internal/auth/mocks"
	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
)

// TestBearerAuthMiddleware Проверяет проверку bearer-токена.
func TestBearerAuthMiddleware(t *testing.T) {
	const secret = "secret"

	tests := []struct {
		name        string
		header      string
		setupMock   func(m *mocks.MockTokenBuilder)
		wantStatus  int
		wantSubject string
	}{
		{
			name:   "Валидный токен",
			header: "Bearer good-token",
			setupMock: func(m *mocks.MockTokenBuilder) {
				m.EXPECT().GetClaims("good-token", secret).Return(&auth.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "grafana"},
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantSubject: "grafana",
		},
		{
			name:   "Схема в нижнем регистре",
			header: "bearer good-token",
			setupMock: func(m *mocks.MockTokenBuilder) {
				m.EXPECT().GetClaims("good-token", secret).Return(&auth.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "bot"},
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantSubject: "bot",
		},
		{
			name:       "Нет заголовка",
			header:     "",
			setupMock:  func(m *mocks.MockTokenBuilder) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Другая схема",
			header:     "Basic dXNlcjpwYXNz",
			setupMock:  func(m *mocks.MockTokenBuilder) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Недействительный токен",
			header: "Bearer bad-token",
			setupMock: func(m *mocks.MockTokenBuilder) {
				m.EXPECT().GetClaims("bad-token", secret).Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			builder := mocks.NewMockTokenBuilder(ctrl)
			tt.setupMock(builder)

			var subject string
			handler := BearerAuthMiddleware(secret, builder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = r.Context().Value(contextkeys.Subject).(string)
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/state", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantSubject, subject)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

// TestBearerAuthMiddlewareDisabled Проверяет, что без секретного ключа проверка отключена.
func TestBearerAuthMiddlewareDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// GetClaims не должен вызываться
	builder := mocks.NewMockTokenBuilder(ctrl)

	handler := BearerAuthMiddleware("", builder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/state", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
