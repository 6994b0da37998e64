package chat

import (
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChatLog is one question/answer exchange between a customer and a
// tenant's chat product. Rows are written by the chat runtime and read
// here for administration and usage analytics.
type ChatLog struct {
	shared.TenantEntity
	ProductID     uuid.UUID
	CustomerEmail string
	Question      string
	Answer        string
	TokensUsed    int
}

// NewChatLog records a completed exchange
func NewChatLog(tenantID, productID uuid.UUID, customerEmail, question, answer string) (*ChatLog, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if question == "" {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Question cannot be empty")
	}

	return &ChatLog{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		ProductID:     productID,
		CustomerEmail: customerEmail,
		Question:      question,
		Answer:        answer,
	}, nil
}
