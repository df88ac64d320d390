package collector

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
	"github.com/trsv-dev/ts3-state-exporter/internal/topology"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// Snapshot Три набора записей, полученные за один прогон.
type Snapshot struct {
	Server   models.ServerRecord
	Channels []models.ChannelRecord
	Clients  []models.ClientRecord
}

// Tree Собирает из снимка дерево сервера.
func (s *Snapshot) Tree() *topology.ServerNode {
	return topology.Build(s.Server, s.Channels, s.Clients)
}

// Collect Параллельно запрашивает serverinfo, channellist и clientlist.
// Первая ошибка отменяет остальные запросы и возвращается как есть.
func Collect(ctx context.Context, api webquery.API) (*Snapshot, error) {
	var snapshot Snapshot

	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		server, err := api.ServerInfo(gCtx)
		if err != nil {
			return err
		}
		snapshot.Server = server
		return nil
	})

	g.Go(func() error {
		channels, err := api.ChannelList(gCtx)
		if err != nil {
			return err
		}
		snapshot.Channels = channels
		return nil
	})

	g.Go(func() error {
		clients, err := api.ClientList(gCtx)
		if err != nil {
			return err
		}
		snapshot.Clients = clients
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Не удалось получить состояние сервера", logger.Err(err))
		return nil, err
	}

	logger.Log.Debug("Состояние сервера получено",
		logger.Int("channels", len(snapshot.Channels)),
		logger.Int("clients", len(snapshot.Clients)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return &snapshot, nil
}
