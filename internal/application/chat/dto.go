package chat

import (
	"time"

	"github.com/docuchat/backend/internal/domain/chat"
	"github.com/google/uuid"
)

// ListChatLogsRequest narrows a chat log listing
type ListChatLogsRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	ProductID string `form:"product_id"`
}

// ChatLogResponse is the API shape of a recorded exchange
type ChatLogResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	CustomerEmail string    `json:"customer_email"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	TokensUsed    int       `json:"tokens_used"`
	CreatedAt     time.Time `json:"created_at"`
}

// UsageSummaryResponse aggregates a tenant's resource counts
type UsageSummaryResponse struct {
	ChatCount     int64 `json:"chat_count"`
	DocumentCount int64 `json:"document_count"`
	TestRunCount  int64 `json:"test_run_count"`
}

func toChatLogResponse(l *chat.ChatLog) ChatLogResponse {
	return ChatLogResponse{
		ID:            l.ID,
		ProductID:     l.ProductID,
		CustomerEmail: l.CustomerEmail,
		Question:      l.Question,
		Answer:        l.Answer,
		TokensUsed:    l.TokensUsed,
		CreatedAt:     l.CreatedAt,
	}
}
