package health_handler

import (
	"context"
	"net/http"
	"time"

	"github.com/trsv-dev/ts3-state-exporter/internal/api/response"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
	"github.com/trsv-dev/ts3-state-exporter/internal/netutils"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// Значения поля status в ответе /health.
const (
	StatusOK          = "ok"
	StatusUnreachable = "unreachable"
	StatusDegraded    = "degraded"
)

// HealthTimeout Ограничение на проверку доступности и запрос версии.
const HealthTimeout = 3 * time.Second

// Health Ответ эндпоинта /health.
type Health struct {
	Status   string                `json:"status"`
	WebQuery netutils.Reachability `json:"webquery"`
	Version  *models.Version       `json:"version,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// HealthHandler обрабатывает HTTP-запросы для проверки состояния WebQuery.
type HealthHandler struct {
	api     webquery.API
	checker netutils.Checker
	host    string
	port    string
	icmp    bool
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(api webquery.API, checker netutils.Checker, host, port string, icmp bool) *HealthHandler {
	return &HealthHandler{
		api:     api,
		checker: checker,
		host:    host,
		port:    port,
		icmp:    icmp,
	}
}

// GetHealth Проверяет доступность хоста WebQuery и запрашивает версию сервера.
// Возвращает HTTP 200, если WebQuery отвечает, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), HealthTimeout)
	defer cancel()

	health := Health{
		WebQuery: netutils.Probe(ctx, h.checker, h.host, h.port, h.icmp, HealthTimeout),
	}

	if !health.WebQuery.TCP {
		logger.Log.Warn("Хост WebQuery недоступен", logger.String("host", h.host), logger.String("port", h.port))

		health.Status = StatusUnreachable
		response.JSON(w, http.StatusServiceUnavailable, health)
		return
	}

	version, err := h.api.Version(ctx)
	if err != nil {
		logger.Log.Warn("WebQuery не ответил на запрос версии", logger.Err(err))

		_, message := response.StatusFor(err)
		health.Status = StatusDegraded
		health.Error = message
		response.JSON(w, http.StatusServiceUnavailable, health)
		return
	}

	health.Status = StatusOK
	health.Version = &version
	response.JSON(w, http.StatusOK, health)
}
