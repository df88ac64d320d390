package models

// Record Плоская запись WebQuery: все значения приходят строками.
type Record map[string]string

// ServerRecord Модель виртуального сервера (serverinfo).
type ServerRecord struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	WelcomeMessage string `json:"welcome_message"`
	Platform       string `json:"platform"`
	Version        string `json:"version"`
	Status         string `json:"status"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	MaxClients     int    `json:"max_clients"`
	ClientsOnline  int    `json:"clients_online"`
	ChannelsOnline int    `json:"channels_online"`
}

// ChannelRecord Модель канала (channellist). ParentID == RootChannelID означает канал верхнего уровня.
type ChannelRecord struct {
	ID              int64  `json:"id"`
	ParentID        int64  `json:"parent_id"`
	Name            string `json:"name"`
	Topic           string `json:"topic"`
	Order           int64  `json:"order"`
	TotalClients    int    `json:"total_clients"`
	MaxClients      int    `json:"max_clients"`
	IsPermanent     bool   `json:"is_permanent"`
	IsSemiPermanent bool   `json:"is_semi_permanent"`
	IsDefault       bool   `json:"is_default"`
	HasPassword     bool   `json:"has_password"`
	SecondsEmpty    int64  `json:"seconds_empty"`
}

// RootChannelID Значение pid для каналов верхнего уровня.
const RootChannelID int64 = 0

// ClientType Тип подключения клиента.
type ClientType string

const (
	ClientTypeVoice ClientType = "voice"
	ClientTypeQuery ClientType = "query"
)

// ClientRecord Модель подключенного клиента (clientlist, clientinfo).
type ClientRecord struct {
	ID             int64      `json:"id"`
	DatabaseID     int64      `json:"database_id"`
	ChannelID      int64      `json:"channel_id"`
	Name           string     `json:"name"`
	Type           ClientType `json:"type"`
	Away           bool       `json:"away"`
	AwayMessage    string     `json:"away_message"`
	InputMuted     bool       `json:"input_muted"`
	OutputMuted    bool       `json:"output_muted"`
	Recording      bool       `json:"recording"`
	IdleMillis     int64      `json:"idle_ms"`
	Country        string     `json:"country"`
	ServerGroups   []int64    `json:"server_groups"`
	ChannelGroupID int64      `json:"channel_group_id"`
}

// KnownClient Модель клиента из базы данных сервера (clientdblist, clientdbinfo).
type KnownClient struct {
	DatabaseID    int64  `json:"database_id"`
	UniqueID      string `json:"unique_id"`
	Name          string `json:"name"`
	Created       int64  `json:"created"`
	LastConnected int64  `json:"last_connected"`
	TotalConnects int    `json:"total_connections"`
	Description   string `json:"description"`
	LastIP        string `json:"last_ip,omitempty"`
}

// Version Модель версии сервера (version).
type Version struct {
	Version  string `json:"version"`
	Build    string `json:"build"`
	Platform string `json:"platform"`
}
