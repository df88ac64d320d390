package collector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/ts3-state-exporter/internal/collector"
	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery/mocks"
)

func init() {
	logger.InitLogger("error", "stderr")
}

// TestCollect Проверяет успешный сбор снимка и построение дерева.
func TestCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().ServerInfo(gomock.Any()).Return(models.ServerRecord{ID: 1, Name: "Test"}, nil)
	api.EXPECT().ChannelList(gomock.Any()).Return([]models.ChannelRecord{
		{ID: 10, Name: "Lobby"},
		{ID: 11, ParentID: 10, Name: "Sub"},
	}, nil)
	api.EXPECT().ClientList(gomock.Any()).Return([]models.ClientRecord{{ID: 100, ChannelID: 11, Name: "Alice"}}, nil)

	snapshot, err := collector.Collect(context.Background(), api)
	require.NoError(t, err)

	assert.Equal(t, "Test", snapshot.Server.Name)
	assert.Len(t, snapshot.Channels, 2)
	assert.Len(t, snapshot.Clients, 1)

	tree := snapshot.Tree()
	require.Len(t, tree.Channels, 1)
	require.Len(t, tree.Channels[0].Channels, 1)
	require.Len(t, tree.Channels[0].Channels[0].Clients, 1)
	assert.Equal(t, "Alice", tree.Channels[0].Channels[0].Clients[0].Record.Name)
}

// TestCollectErrors Проверяет, что ошибка любого запроса прерывает сбор.
func TestCollectErrors(t *testing.T) {
	apiErr := errs.NewAPIError("channellist", errs.CodeInvalidCredentials, "invalid apikey")
	transportErr := errs.NewTransportError("serverinfo", errors.New("connection refused"))

	tests := []struct {
		name       string
		serverErr  error
		channelErr error
		clientErr  error
		wantCode   int
	}{
		{
			name:      "Ошибка транспорта в serverinfo",
			serverErr: transportErr,
			wantCode:  errs.ExitTransport,
		},
		{
			name:       "Ошибка API в channellist",
			channelErr: apiErr,
			wantCode:   errs.ExitAPI,
		},
		{
			name:      "Ошибка API в clientlist",
			clientErr: errs.NewAPIError("clientlist", errs.CodeMalformed, "bad body"),
			wantCode:  errs.ExitAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// остальные запросы могут быть отменены раньше вызова, поэтому AnyTimes
			api := mocks.NewMockAPI(ctrl)
			api.EXPECT().ServerInfo(gomock.Any()).Return(models.ServerRecord{ID: 1}, tt.serverErr).AnyTimes()
			api.EXPECT().ChannelList(gomock.Any()).Return(nil, tt.channelErr).AnyTimes()
			api.EXPECT().ClientList(gomock.Any()).Return(nil, tt.clientErr).AnyTimes()

			snapshot, err := collector.Collect(context.Background(), api)
			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.Equal(t, tt.wantCode, errs.ExitCode(err))
		})
	}
}

// TestCollectCancelsSiblings Проверяет, что первая ошибка отменяет контекст остальных запросов.
func TestCollectCancelsSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errs.NewAPIError("serverinfo", errs.CodeInvalidCredentials, "invalid apikey")

	waitCancel := func(ctx context.Context) error {
		<-ctx.Done()
		return errs.NewTransportError("channellist", ctx.Err())
	}

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().ServerInfo(gomock.Any()).Return(models.ServerRecord{}, wantErr)
	api.EXPECT().ChannelList(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.ChannelRecord, error) {
		return nil, waitCancel(ctx)
	})
	api.EXPECT().ClientList(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.ClientRecord, error) {
		return nil, waitCancel(ctx)
	})

	_, err := collector.Collect(context.Background(), api)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

// TestCollectCancelledContext Проверяет отмену всего прогона извне.
func TestCollectCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().ServerInfo(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.ServerRecord, error) {
		return models.ServerRecord{}, errs.NewTransportError("serverinfo", ctx.Err())
	})
	api.EXPECT().ChannelList(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.ChannelRecord, error) {
		return nil, errs.NewTransportError("channellist", ctx.Err())
	})
	api.EXPECT().ClientList(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.ClientRecord, error) {
		return nil, errs.NewTransportError("clientlist", ctx.Err())
	})

	_, err := collector.Collect(ctx, api)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, errs.ExitTransport, errs.ExitCode(err))
}
