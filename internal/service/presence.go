package service

import "chat_relay/internal/models"

// PresenceTracker 在每次成員變動時即時從 RoomStore 與 ConnectionRegistry 推導成員列表
// 不另外快取，避免與實際狀態分歧
type PresenceTracker struct {
	rooms    *RoomStore
	registry *ConnectionRegistry
}

// NewPresenceTracker 創建成員列表推導器
func NewPresenceTracker(rooms *RoomStore, registry *ConnectionRegistry) *PresenceTracker {
	return &PresenceTracker{
		rooms:    rooms,
		registry: registry,
	}
}

// MembersOf 回傳房間目前的成員列表，順序即加入順序
// 房間不存在時回傳空列表
func (p *PresenceTracker) MembersOf(roomCode string) []models.Member {
	ids := p.rooms.MemberIDs(roomCode)
	members := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		_, name, ok := p.registry.Lookup(id)
		if !ok {
			// 註冊表已經沒有這條連線，從列表略過
			continue
		}
		members = append(members, models.Member{
			ConnectionID: id,
			DisplayName:  name,
		})
	}
	return members
}
