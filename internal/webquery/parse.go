package webquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

// fieldReader Читает типизированные значения из плоской записи, запоминая первую ошибку.
type fieldReader struct {
	endpoint string
	rec      models.Record
	err      error
}

func newFieldReader(endpoint Endpoint, rec models.Record) *fieldReader {
	return &fieldReader{endpoint: string(endpoint), rec: rec}
}

func (r *fieldReader) fail(key, format string, args ...any) {
	if r.err != nil {
		return
	}

	msg := fmt.Sprintf("поле `%s`: %s", key, fmt.Sprintf(format, args...))
	r.err = errs.NewAPIError(r.endpoint, errs.CodeMalformed, msg)
}

func (r *fieldReader) str(key string) string {
	return r.rec[key]
}

// int64 Отсутствующее или пустое поле читается как 0.
func (r *fieldReader) int64(key string) int64 {
	value := strings.TrimSpace(r.rec[key])
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		r.fail(key, "ожидалось целое число, получено `%s`", value)
		return 0
	}

	return n
}

func (r *fieldReader) int(key string) int {
	return int(r.int64(key))
}

// requiredInt64 Как int64, но отсутствие поля является ошибкой.
func (r *fieldReader) requiredInt64(key string) int64 {
	if _, ok := r.rec[key]; !ok {
		r.fail(key, "обязательное поле отсутствует")
		return 0
	}

	return r.int64(key)
}

// firstInt64 Читает первое из присутствующих полей.
func (r *fieldReader) firstInt64(keys ...string) int64 {
	for _, key := range keys {
		if _, ok := r.rec[key]; ok {
			return r.int64(key)
		}
	}

	r.fail(strings.Join(keys, "|"), "обязательное поле отсутствует")
	return 0
}

func (r *fieldReader) flag(key string) bool {
	return r.int64(key) != 0
}

// ids Список целых через запятую (например, client_servergroups).
func (r *fieldReader) ids(key string) []int64 {
	value := strings.TrimSpace(r.rec[key])
	if value == "" {
		return []int64{}
	}

	parts := strings.Split(value, ",")
	res := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			r.fail(key, "ожидался список целых чисел, получено `%s`", value)
			return []int64{}
		}
		res = append(res, n)
	}

	return res
}

func parseServer(rec models.Record) (models.ServerRecord, error) {
	r := newFieldReader(EndpointServerInfo, rec)

	server := models.ServerRecord{
		ID:             r.requiredInt64("virtualserver_id"),
		Name:           r.str("virtualserver_name"),
		WelcomeMessage: r.str("virtualserver_welcomemessage"),
		Platform:       r.str("virtualserver_platform"),
		Version:        r.str("virtualserver_version"),
		Status:         r.str("virtualserver_status"),
		UptimeSeconds:  r.int64("virtualserver_uptime"),
		MaxClients:     r.int("virtualserver_maxclients"),
		ClientsOnline:  r.int("virtualserver_clientsonline"),
		ChannelsOnline: r.int("virtualserver_channelsonline"),
	}

	return server, r.err
}

func parseChannel(rec models.Record) (models.ChannelRecord, error) {
	r := newFieldReader(EndpointChannelList, rec)

	channel := models.ChannelRecord{
		ID:              r.requiredInt64("cid"),
		ParentID:        r.requiredInt64("pid"),
		Name:            r.str("channel_name"),
		Topic:           r.str("channel_topic"),
		Order:           r.int64("channel_order"),
		TotalClients:    r.int("total_clients"),
		MaxClients:      r.int("channel_maxclients"),
		IsPermanent:     r.flag("channel_flag_permanent"),
		IsSemiPermanent: r.flag("channel_flag_semi_permanent"),
		IsDefault:       r.flag("channel_flag_default"),
		HasPassword:     r.flag("channel_flag_password"),
		SecondsEmpty:    r.int64("seconds_empty"),
	}

	return channel, r.err
}

// parseClient Разбирает запись clientlist или clientinfo.
// В ответе clientinfo поле clid отсутствует, тогда используется fallbackID.
func parseClient(endpoint Endpoint, rec models.Record, fallbackID int64) (models.ClientRecord, error) {
	r := newFieldReader(endpoint, rec)

	var id int64
	if _, ok := rec["clid"]; ok || fallbackID <= 0 {
		id = r.requiredInt64("clid")
	} else {
		id = fallbackID
	}

	clientType := models.ClientTypeVoice
	if r.int("client_type") == 1 {
		clientType = models.ClientTypeQuery
	}

	client := models.ClientRecord{
		ID:             id,
		DatabaseID:     r.int64("client_database_id"),
		ChannelID:      r.requiredInt64("cid"),
		Name:           r.str("client_nickname"),
		Type:           clientType,
		Away:           r.flag("client_away"),
		AwayMessage:    r.str("client_away_message"),
		InputMuted:     r.flag("client_input_muted"),
		OutputMuted:    r.flag("client_output_muted"),
		Recording:      r.flag("client_is_recording"),
		IdleMillis:     r.int64("client_idle_time"),
		Country:        r.str("client_country"),
		ServerGroups:   r.ids("client_servergroups"),
		ChannelGroupID: r.int64("client_channel_group_id"),
	}

	return client, r.err
}

// parseKnownClient Разбирает запись clientdblist (cldbid) или clientdbinfo (client_database_id).
func parseKnownClient(endpoint Endpoint, rec models.Record) (models.KnownClient, error) {
	r := newFieldReader(endpoint, rec)

	known := models.KnownClient{
		DatabaseID:    r.firstInt64("cldbid", "client_database_id"),
		UniqueID:      r.str("client_unique_identifier"),
		Name:          r.str("client_nickname"),
		Created:       r.int64("client_created"),
		LastConnected: r.int64("client_lastconnected"),
		TotalConnects: r.int("client_totalconnections"),
		Description:   r.str("client_description"),
		LastIP:        r.str("client_lastip"),
	}

	return known, r.err
}

func parseVersion(rec models.Record) models.Version {
	return models.Version{
		Version:  rec["version"],
		Build:    rec["build"],
		Platform: rec["platform"],
	}
}
