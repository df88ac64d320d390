package topology

import (
	"cmp"
	"slices"

	"github.com/trsv-dev/ts3-state-exporter/internal/models"
)

// Build Собирает дерево сервера из плоских списков каналов и клиентов.
//
// Каналы прикрепляются к заявленному родителю (pid), клиенты к своему каналу (cid).
// Неразрешимые ссылки не являются ошибкой: такой узел прикрепляется к корню
// с указанием причины (DetachReason), исходная ссылка остаётся в Record.
// Ребро, замыкающее цикл в цепочке pid, разрывается так же.
// При повторяющихся id побеждает последняя запись.
// Дочерние узлы упорядочены по channel_order, затем по id.
func Build(server models.ServerRecord, channels []models.ChannelRecord, clients []models.ClientRecord) *ServerNode {
	root := &ServerNode{
		Server:   server,
		Channels: []*ChannelNode{},
		Clients:  []*ClientNode{},
	}

	index, channelIDs := indexChannels(channels)

	// фактический родитель уже прикреплённых каналов (RootChannelID для корня)
	attached := make(map[int64]int64, len(index))

	for _, id := range channelIDs {
		node := index[id]
		pid := node.Record.ParentID

		parent, ok := index[pid]

		switch {
		case pid == models.RootChannelID:
			root.Channels = append(root.Channels, node)
			attached[id] = models.RootChannelID
		case !ok:
			node.Detached = ReasonMissingParent
			root.Channels = append(root.Channels, node)
			attached[id] = models.RootChannelID
		case closesCycle(id, pid, index, attached):
			node.Detached = ReasonCycle
			root.Channels = append(root.Channels, node)
			attached[id] = models.RootChannelID
		default:
			parent.Channels = append(parent.Channels, node)
			attached[id] = pid
		}
	}

	for _, client := range dedupClients(clients) {
		node := &ClientNode{Record: client}

		if channel, ok := index[client.ChannelID]; ok {
			channel.Clients = append(channel.Clients, node)
			continue
		}

		node.Detached = ReasonMissingChannel
		root.Clients = append(root.Clients, node)
	}

	sortChannels(root.Channels)
	sortClients(root.Clients)

	return root
}

// indexChannels Создаёт узлы каналов и индекс по id. Возвращает id по возрастанию.
func indexChannels(channels []models.ChannelRecord) (map[int64]*ChannelNode, []int64) {
	index := make(map[int64]*ChannelNode, len(channels))
	ids := make([]int64, 0, len(channels))

	for _, rec := range channels {
		if node, ok := index[rec.ID]; ok {
			node.Record = rec
			continue
		}

		index[rec.ID] = &ChannelNode{
			Record:   rec,
			Channels: []*ChannelNode{},
			Clients:  []*ClientNode{},
		}
		ids = append(ids, rec.ID)
	}

	slices.Sort(ids)

	return index, ids
}

// dedupClients Оставляет последнюю запись для каждого id, по возрастанию id.
func dedupClients(clients []models.ClientRecord) []models.ClientRecord {
	byID := make(map[int64]models.ClientRecord, len(clients))
	for _, rec := range clients {
		byID[rec.ID] = rec
	}

	res := make([]models.ClientRecord, 0, len(byID))
	for _, rec := range byID {
		res = append(res, rec)
	}

	slices.SortFunc(res, func(a, b models.ClientRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return res
}

// closesCycle Сообщает, приведёт ли прикрепление канала self к parent к циклу.
// Идёт вверх от parent: для прикреплённых каналов по фактическому родителю,
// для остальных по заявленному pid. Длина обхода ограничена числом каналов.
func closesCycle(self, parent int64, index map[int64]*ChannelNode, attached map[int64]int64) bool {
	current := parent

	for steps := 0; steps <= len(index); steps++ {
		if current == self {
			return true
		}

		if current == models.RootChannelID {
			return false
		}

		next, ok := attached[current]
		if !ok {
			node, exists := index[current]
			if !exists {
				// предок с висячей ссылкой сам окажется у корня
				return false
			}
			next = node.Record.ParentID
		}

		current = next
	}

	// цепочка зациклилась выше, не проходя через self: этот цикл
	// будет разорван при обработке его собственных каналов
	return false
}

func sortChannels(channels []*ChannelNode) {
	slices.SortFunc(channels, func(a, b *ChannelNode) int {
		if c := cmp.Compare(a.Record.Order, b.Record.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Record.ID, b.Record.ID)
	})

	for _, ch := range channels {
		sortChannels(ch.Channels)
		sortClients(ch.Clients)
	}
}

func sortClients(clients []*ClientNode) {
	slices.SortFunc(clients, func(a, b *ClientNode) int {
		return cmp.Compare(a.Record.ID, b.Record.ID)
	})
}
