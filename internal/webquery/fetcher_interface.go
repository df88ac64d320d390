package webquery

import (
	"context"
	"net/url"

	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks . Fetcher

// Fetcher Интерфейс для выполнения одного запроса к WebQuery и получения плоских записей.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint Endpoint, params url.Values) ([]models.Record, error)
}
