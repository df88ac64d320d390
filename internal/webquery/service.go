package webquery

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

// KnownClientsPageSize Размер страницы clientdblist.
const KnownClientsPageSize = 25

// Параметры-переключатели WebQuery передаются как ключи без значений.
func switches(names ...string) url.Values {
	params := url.Values{}
	for _, name := range names {
		params.Set(name, "")
	}
	return params
}

// Service Типизированный доступ к WebQuery поверх Fetcher.
type Service struct {
	fetcher Fetcher
}

// NewService Конструктор Service.
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Version Версия и платформа сервера.
func (s *Service) Version(ctx context.Context) (models.Version, error) {
	records, err := s.fetcher.Fetch(ctx, EndpointVersion, nil)
	if err != nil {
		return models.Version{}, err
	}

	if len(records) == 0 {
		return models.Version{}, errs.NewAPIError(string(EndpointVersion), errs.CodeMalformed, "пустой ответ")
	}

	return parseVersion(records[0]), nil
}

// ServerInfo Сведения о виртуальном сервере.
func (s *Service) ServerInfo(ctx context.Context) (models.ServerRecord, error) {
	records, err := s.fetcher.Fetch(ctx, EndpointServerInfo, nil)
	if err != nil {
		return models.ServerRecord{}, err
	}

	if len(records) == 0 {
		return models.ServerRecord{}, errs.NewAPIError(string(EndpointServerInfo), errs.CodeMalformed, "пустой ответ")
	}

	return parseServer(records[0])
}

// ChannelList Плоский список каналов виртуального сервера.
func (s *Service) ChannelList(ctx context.Context) ([]models.ChannelRecord, error) {
	records, err := s.fetcher.Fetch(ctx, EndpointChannelList, switches("-topic", "-flags", "-limits", "-secondsempty"))
	if err != nil {
		return nil, err
	}

	channels := make([]models.ChannelRecord, 0, len(records))
	for _, rec := range records {
		channel, err := parseChannel(rec)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}

	return channels, nil
}

// ClientList Плоский список подключенных клиентов.
func (s *Service) ClientList(ctx context.Context) ([]models.ClientRecord, error) {
	records, err := s.fetcher.Fetch(ctx, EndpointClientList, switches("-away", "-voice", "-times", "-groups", "-country"))
	if err != nil {
		return nil, err
	}

	clients := make([]models.ClientRecord, 0, len(records))
	for _, rec := range records {
		client, err := parseClient(EndpointClientList, rec, 0)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, nil
}

// ClientInfo Сведения об одном подключенном клиенте.
func (s *Service) ClientInfo(ctx context.Context, clientID int64) (models.ClientRecord, error) {
	params := url.Values{}
	params.Set("clid", strconv.FormatInt(clientID, 10))

	records, err := s.fetcher.Fetch(ctx, EndpointClientInfo, params)
	if err != nil {
		return models.ClientRecord{}, err
	}

	switch len(records) {
	case 0:
		return models.ClientRecord{}, errs.NewAPIError(string(EndpointClientInfo), errs.CodeNotFound,
			fmt.Sprintf("клиент id=%d не подключен", clientID))
	case 1:
		return parseClient(EndpointClientInfo, records[0], clientID)
	default:
		return models.ClientRecord{}, errs.NewAPIError(string(EndpointClientInfo), errs.CodeMalformed,
			fmt.Sprintf("получено %d записей для клиента id=%d", len(records), clientID))
	}
}

// KnownClients Все клиенты из базы данных сервера. Страницы запрашиваются последовательно,
// пока очередная страница не окажется неполной.
func (s *Service) KnownClients(ctx context.Context) ([]models.KnownClient, error) {
	known := make([]models.KnownClient, 0, KnownClientsPageSize)

	for {
		params := url.Values{}
		params.Set("start", strconv.Itoa(len(known)))
		params.Set("duration", strconv.Itoa(KnownClientsPageSize))

		records, err := s.fetcher.Fetch(ctx, EndpointClientDBList, params)
		if err != nil {
			return nil, err
		}

		for _, rec := range records {
			client, err := parseKnownClient(EndpointClientDBList, rec)
			if err != nil {
				return nil, err
			}
			known = append(known, client)
		}

		if len(records) < KnownClientsPageSize {
			return known, nil
		}
	}
}

// KnownClientInfo Сведения о клиенте из базы данных сервера.
func (s *Service) KnownClientInfo(ctx context.Context, databaseID int64) (models.KnownClient, error) {
	params := url.Values{}
	params.Set("cldbid", strconv.FormatInt(databaseID, 10))

	records, err := s.fetcher.Fetch(ctx, EndpointClientDBInfo, params)
	if err != nil {
		return models.KnownClient{}, err
	}

	switch len(records) {
	case 0:
		return models.KnownClient{}, errs.NewAPIError(string(EndpointClientDBInfo), errs.CodeNotFound,
			fmt.Sprintf("клиент cldbid=%d не найден", databaseID))
	case 1:
		return parseKnownClient(EndpointClientDBInfo, records[0])
	default:
		return models.KnownClient{}, errs.NewAPIError(string(EndpointClientDBInfo), errs.CodeMalformed,
			fmt.Sprintf("получено %d записей для клиента cldbid=%d", len(records), databaseID))
	}
}
