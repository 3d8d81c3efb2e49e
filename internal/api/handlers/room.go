package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat_relay/internal/models"
	"chat_relay/internal/service"
)

// RoomHandler 處理與聊天房間相關的唯讀查詢
type RoomHandler struct {
	rooms    *service.RoomStore
	presence *service.PresenceTracker
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(rooms *service.RoomStore, presence *service.PresenceTracker) *RoomHandler {
	return &RoomHandler{
		rooms:    rooms,
		presence: presence,
	}
}

// ListRooms 回傳目前所有活躍房間的摘要
func (h *RoomHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.rooms.Summaries())
}

// GetRoom 回傳單一房間的成員列表與摘要
func (h *RoomHandler) GetRoom(c *gin.Context) {
	code := models.NormalizeRoomCode(c.Param("code"))

	summary, ok := h.rooms.Summary(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "房間不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode":     summary.Code,
		"members":      h.presence.MembersOf(code),
		"messageCount": summary.MessageCount,
	})
}
