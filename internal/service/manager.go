package service

import "sync"

// ClientManager 維護所有活躍的 WebSocket 連線，key 為連線 ID
type ClientManager struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewClientManager 創建空的連線表
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[string]*Client),
	}
}

// Add 登記一條新連線
func (m *ClientManager) Add(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[client.ID] = client
}

// Remove 移除連線，不存在時為 no-op
func (m *ClientManager) Remove(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.clients, connID)
}

// Get 依連線 ID 取得客戶端
func (m *ClientManager) Get(connID string) (*Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, ok := m.clients[connID]
	return client, ok
}

// Count 回傳目前活躍的連線數
func (m *ClientManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.clients)
}
