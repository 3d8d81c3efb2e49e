package service

import "chat_relay/pkg/config"

type Services struct {
	Registry    *ConnectionRegistry
	Rooms       *RoomStore
	Presence    *PresenceTracker
	Clients     *ClientManager
	Broadcaster *Broadcaster
	Session     *SessionService
}

func NewServices(cfg *config.Config) *Services {
	registry := NewConnectionRegistry()
	rooms := NewRoomStore(cfg.Room.HistoryLimit)
	presence := NewPresenceTracker(rooms, registry)
	clients := NewClientManager()
	broadcaster := NewBroadcaster(clients, rooms)
	session := NewSessionService(registry, rooms, presence, broadcaster, clients, cfg.WebSocket)

	return &Services{
		Registry:    registry,
		Rooms:       rooms,
		Presence:    presence,
		Clients:     clients,
		Broadcaster: broadcaster,
		Session:     session,
	}
}
