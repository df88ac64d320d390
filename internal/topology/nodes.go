package topology

import "github.com/trsv-dev/ts3-state-exporter/internal/models"

// DetachReason Причина, по которой узел прикреплён к корню вместо заявленного родителя.
// Пустая строка означает, что узел находится на своём месте.
type DetachReason string

const (
	ReasonNone           DetachReason = ""
	ReasonMissingParent  DetachReason = "missing_parent"
	ReasonCycle          DetachReason = "cycle"
	ReasonMissingChannel DetachReason = "missing_channel"
)

// ServerNode Корень дерева: виртуальный сервер.
type ServerNode struct {
	Server   models.ServerRecord
	Channels []*ChannelNode
	Clients  []*ClientNode
}

// ChannelNode Канал с вложенными каналами и клиентами.
type ChannelNode struct {
	Record   models.ChannelRecord
	Detached DetachReason
	Channels []*ChannelNode
	Clients  []*ClientNode
}

// ClientNode Подключенный клиент.
type ClientNode struct {
	Record   models.ClientRecord
	Detached DetachReason
}

// Stats Счётчики узлов дерева.
type Stats struct {
	Channels         int
	Clients          int
	DetachedChannels int
	DetachedClients  int
	Depth            int
}

// Stats Обходит дерево и считает узлы.
func (s *ServerNode) Stats() Stats {
	var st Stats

	st.countClients(s.Clients)
	for _, ch := range s.Channels {
		st.countChannel(ch, 1)
	}

	return st
}

func (st *Stats) countChannel(ch *ChannelNode, depth int) {
	st.Channels++
	if ch.Detached != ReasonNone {
		st.DetachedChannels++
	}
	if depth > st.Depth {
		st.Depth = depth
	}

	st.countClients(ch.Clients)
	for _, child := range ch.Channels {
		st.countChannel(child, depth+1)
	}
}

func (st *Stats) countClients(clients []*ClientNode) {
	for _, cl := range clients {
		st.Clients++
		if cl.Detached != ReasonNone {
			st.DetachedClients++
		}
	}
}
