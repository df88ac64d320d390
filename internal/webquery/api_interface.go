package webquery

import (
	"context"

	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks . API

// API Интерфейс типизированного доступа к WebQuery виртуального сервера.
type API interface {
	Version(ctx context.Context) (models.Version, error)
	ServerInfo(ctx context.Context) (models.ServerRecord, error)
	ChannelList(ctx context.Context) ([]models.ChannelRecord, error)
	ClientList(ctx context.Context) ([]models.ClientRecord, error)
	ClientInfo(ctx context.Context, clientID int64) (models.ClientRecord, error)
	KnownClients(ctx context.Context) ([]models.KnownClient, error)
	KnownClientInfo(ctx context.Context, databaseID int64) (models.KnownClient, error)
}
