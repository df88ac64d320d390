package clients_handler

import (
	"net/http"

	"github.com/trsv-dev/ts3-state-exporter/internal/api/response"
	"github.com/trsv-dev/ts3-state-exporter/internal/contextkeys"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// ClientsHandler Отдаёт списки клиентов и сведения об отдельных клиентах.
type ClientsHandler struct {
	api webquery.API
}

// NewClientsHandler Конструктор ClientsHandler.
func NewClientsHandler(api webquery.API) *ClientsHandler {
	return &ClientsHandler{api: api}
}

// OnlineClients Плоский список подключенных клиентов.
func (h *ClientsHandler) OnlineClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.api.ClientList(r.Context())
	if err != nil {
		logger.Log.Warn("Не удалось получить список клиентов", logger.Err(err))
		response.WebQueryErrorJSON(w, err)
		return
	}

	response.JSON(w, http.StatusOK, clients)
}

// OnlineClient Сведения о подключенном клиенте по clid.
func (h *ClientsHandler) OnlineClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := ctx.Value(contextkeys.ClientID).(int64)
	if !ok {
		logger.Log.Error("Не удалось получить clientID из контекста")
		response.ErrorJSON(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	client, err := h.api.ClientInfo(ctx, clientID)
	if err != nil {
		logger.Log.Warn("Не удалось получить сведения о клиенте", logger.Int64("clientID", clientID), logger.Err(err))
		response.WebQueryErrorJSON(w, err)
		return
	}

	response.JSON(w, http.StatusOK, client)
}

// KnownClients Все клиенты из базы данных сервера.
func (h *ClientsHandler) KnownClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.api.KnownClients(r.Context())
	if err != nil {
		logger.Log.Warn("Не удалось получить список известных клиентов", logger.Err(err))
		response.WebQueryErrorJSON(w, err)
		return
	}

	response.JSON(w, http.StatusOK, clients)
}

// KnownClient Сведения о клиенте из базы данных по cldbid.
func (h *ClientsHandler) KnownClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	databaseID, ok := ctx.Value(contextkeys.ClientID).(int64)
	if !ok {
		logger.Log.Error("Не удалось получить clientID из контекста")
		response.ErrorJSON(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	client, err := h.api.KnownClientInfo(ctx, databaseID)
	if err != nil {
		logger.Log.Warn("Не удалось получить сведения о клиенте из базы", logger.Int64("databaseID", databaseID), logger.Err(err))
		response.WebQueryErrorJSON(w, err)
		return
	}

	response.JSON(w, http.StatusOK, client)
}
