package render

import (
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
	"github.com/trsv-dev/ts3-state-exporter/internal/topology"
)

// ServerDocument Корень выходного JSON-документа.
// Порядок полей структуры задаёт порядок ключей в выводе.
type ServerDocument struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	WelcomeMessage string             `json:"welcome_message"`
	Platform       string             `json:"platform"`
	Version        string             `json:"version"`
	Status         string             `json:"status"`
	UptimeSeconds  int64              `json:"uptime_seconds"`
	MaxClients     int                `json:"max_clients"`
	ClientsOnline  int                `json:"clients_online"`
	ChannelsOnline int                `json:"channels_online"`
	Channels       []*ChannelDocument `json:"channels"`
	Clients        []*ClientDocument  `json:"clients"`
}

// ChannelDocument Канал в выходном документе.
type ChannelDocument struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Topic            string             `json:"topic"`
	Order            int64              `json:"order"`
	TotalClients     int                `json:"total_clients"`
	MaxClients       int                `json:"max_clients"`
	IsPermanent      bool               `json:"is_permanent"`
	IsSemiPermanent  bool               `json:"is_semi_permanent"`
	IsDefault        bool               `json:"is_default"`
	HasPassword      bool               `json:"has_password"`
	SecondsEmpty     int64              `json:"seconds_empty"`
	Detached         bool               `json:"detached,omitempty"`
	DetachedReason   string             `json:"detached_reason,omitempty"`
	DeclaredParentID *int64             `json:"declared_parent_id,omitempty"`
	Channels         []*ChannelDocument `json:"channels"`
	Clients          []*ClientDocument  `json:"clients"`
}

// ClientDocument Клиент в выходном документе.
type ClientDocument struct {
	ID                int64   `json:"id"`
	DatabaseID        int64   `json:"database_id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Away              bool    `json:"away"`
	AwayMessage       string  `json:"away_message"`
	InputMuted        bool    `json:"input_muted"`
	OutputMuted       bool    `json:"output_muted"`
	Recording         bool    `json:"recording"`
	IdleMillis        int64   `json:"idle_ms"`
	Country           string  `json:"country"`
	ServerGroups      []int64 `json:"server_groups"`
	ChannelGroupID    int64   `json:"channel_group_id"`
	Detached          bool    `json:"detached,omitempty"`
	DetachedReason    string  `json:"detached_reason,omitempty"`
	DeclaredChannelID *int64  `json:"declared_channel_id,omitempty"`
}

// NewDocument Переводит дерево в структуру выходного документа.
func NewDocument(root *topology.ServerNode) *ServerDocument {
	srv := root.Server

	return &ServerDocument{
		ID:             srv.ID,
		Name:           srv.Name,
		WelcomeMessage: srv.WelcomeMessage,
		Platform:       srv.Platform,
		Version:        srv.Version,
		Status:         srv.Status,
		UptimeSeconds:  srv.UptimeSeconds,
		MaxClients:     srv.MaxClients,
		ClientsOnline:  srv.ClientsOnline,
		ChannelsOnline: srv.ChannelsOnline,
		Channels:       channelDocuments(root.Channels),
		Clients:        clientDocuments(root.Clients),
	}
}

func channelDocuments(nodes []*topology.ChannelNode) []*ChannelDocument {
	docs := make([]*ChannelDocument, 0, len(nodes))

	for _, node := range nodes {
		rec := node.Record

		doc := &ChannelDocument{
			ID:              rec.ID,
			Name:            rec.Name,
			Topic:           rec.Topic,
			Order:           rec.Order,
			TotalClients:    rec.TotalClients,
			MaxClients:      rec.MaxClients,
			IsPermanent:     rec.IsPermanent,
			IsSemiPermanent: rec.IsSemiPermanent,
			IsDefault:       rec.IsDefault,
			HasPassword:     rec.HasPassword,
			SecondsEmpty:    rec.SecondsEmpty,
			Channels:        channelDocuments(node.Channels),
			Clients:         clientDocuments(node.Clients),
		}

		if node.Detached != topology.ReasonNone {
			pid := rec.ParentID
			doc.Detached = true
			doc.DetachedReason = string(node.Detached)
			doc.DeclaredParentID = &pid
		}

		docs = append(docs, doc)
	}

	return docs
}

func clientDocuments(nodes []*topology.ClientNode) []*ClientDocument {
	docs := make([]*ClientDocument, 0, len(nodes))

	for _, node := range nodes {
		rec := node.Record

		groups := make([]int64, len(rec.ServerGroups))
		copy(groups, rec.ServerGroups)

		clientType := rec.Type
		if clientType == "" {
			clientType = models.ClientTypeVoice
		}

		doc := &ClientDocument{
			ID:             rec.ID,
			DatabaseID:     rec.DatabaseID,
			Name:           rec.Name,
			Type:           string(clientType),
			Away:           rec.Away,
			AwayMessage:    rec.AwayMessage,
			InputMuted:     rec.InputMuted,
			OutputMuted:    rec.OutputMuted,
			Recording:      rec.Recording,
			IdleMillis:     rec.IdleMillis,
			Country:        rec.Country,
			ServerGroups:   groups,
			ChannelGroupID: rec.ChannelGroupID,
		}

		if node.Detached != topology.ReasonNone {
			cid := rec.ChannelID
			doc.Detached = true
			doc.DetachedReason = string(node.Detached)
			doc.DeclaredChannelID = &cid
		}

		docs = append(docs, doc)
	}

	return docs
}
