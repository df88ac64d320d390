package state_handler

import (
	"net/http"
	"strconv"

	"github.com/trsv-dev/ts3-state-exporter/internal/api/response"
	"github.com/trsv-dev/ts3-state-exporter/internal/collector"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/render"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// PrettyIndent Отступ форматированного документа.
const PrettyIndent = "  "

// StateHandler Отдаёт дерево виртуального сервера, собранное по свежим данным WebQuery.
type StateHandler struct {
	api    webquery.API
	pretty bool
}

// NewStateHandler Конструктор StateHandler.
func NewStateHandler(api webquery.API, pretty bool) *StateHandler {
	return &StateHandler{
		api:    api,
		pretty: pretty,
	}
}

// GetState Собирает и отдаёт документ, такой же как при однократной выгрузке.
// Параметр `?pretty=true|false` переопределяет форматирование из конфигурации.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pretty := h.pretty
	if value := r.URL.Query().Get("pretty"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			response.ErrorJSON(w, http.StatusBadRequest, "Параметр pretty должен быть true или false")
			return
		}
		pretty = parsed
	}

	snapshot, err := collector.Collect(ctx, h.api)
	if err != nil {
		response.WebQueryErrorJSON(w, err)
		return
	}

	root := snapshot.Tree()

	opts := render.Options{}
	if pretty {
		opts.Indent = PrettyIndent
	}

	data, err := render.Render(root, opts)
	if err != nil {
		logger.Log.Error("Не удалось сериализовать дерево сервера", logger.Err(err))
		response.WebQueryErrorJSON(w, err)
		return
	}

	stats := root.Stats()
	logger.Log.Debug("Дерево сервера отдано",
		logger.Int("channels", stats.Channels),
		logger.Int("clients", stats.Clients),
		logger.Int("detached_channels", stats.DetachedChannels),
		logger.Int("detached_clients", stats.DetachedClients),
	)

	response.RawJSON(w, http.StatusOK, data)
}
