package api

import (
	"github.com/trsv-dev/ts3-state-exporter/internal/api/clients_handler"
	"github.com/trsv-dev/ts3-state-exporter/internal/api/health_handler"
	"github.com/trsv-dev/ts3-state-exporter/internal/api/state_handler"
	"github.com/trsv-dev/ts3-state-exporter/internal/auth"
	"github.com/trsv-dev/ts3-state-exporter/internal/config"
	"github.com/trsv-dev/ts3-state-exporter/internal/netutils"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	StateHandler   *state_handler.StateHandler
	ClientsHandler *clients_handler.ClientsHandler
	HealthHandler  *health_handler.HealthHandler

	TokenBuilder   auth.TokenBuilder
	JWTSecretKey   string
	AllowedOrigins []string
}

// NewHandlersContainer Конструктор контейнера с зависимостями.
// host и port описывают адрес WebQuery для проверки доступности.
func NewHandlersContainer(wq webquery.API, checker netutils.Checker, tokenBuilder auth.TokenBuilder, srvConfig *config.Config, host, port string) *HandlersContainer {
	return &HandlersContainer{
		StateHandler:   state_handler.NewStateHandler(wq, srvConfig.Pretty),
		ClientsHandler: clients_handler.NewClientsHandler(wq),
		HealthHandler:  health_handler.NewHealthHandler(wq, checker, host, port, srvConfig.ICMPCheck),
		TokenBuilder:   tokenBuilder,
		JWTSecretKey:   srvConfig.JWTSecretKey,
		AllowedOrigins: srvConfig.AllowedOrigins(),
	}
}
