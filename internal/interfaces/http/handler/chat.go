package handler

import (
	chatapp "github.com/docuchat/backend/internal/application/chat"
	"github.com/gin-gonic/gin"
)

// ChatHandler serves chat history and usage endpoints
type ChatHandler struct {
	BaseHandler
	chatService *chatapp.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *chatapp.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListChatLogs returns the tenant's recorded conversations
// GET /api/v1/chat-logs
func (h *ChatHandler) ListChatLogs(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req chatapp.ListChatLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	logs, total, err := h.chatService.ListChatLogs(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, total, req.Page, req.PageSize)
}

// GetUsageSummary returns the tenant's resource counts
// GET /api/v1/usage/summary
func (h *ChatHandler) GetUsageSummary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.chatService.GetUsageSummary(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
