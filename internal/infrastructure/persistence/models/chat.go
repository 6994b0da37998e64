package models

import (
	"github.com/docuchat/backend/internal/domain/chat"
	"github.com/google/uuid"
)

// ChatLogModel is the persistence model for the ChatLog domain entity.
type ChatLogModel struct {
	TenantModelBase
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerEmail string    `gorm:"type:varchar(320);index"`
	Question      string    `gorm:"type:text;not null"`
	Answer        string    `gorm:"type:text"`
	TokensUsed    int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ChatLogModel) TableName() string {
	return "chat_logs"
}

// ToDomain converts the persistence model to a domain ChatLog entity.
func (m *ChatLogModel) ToDomain() *chat.ChatLog {
	return &chat.ChatLog{
		TenantEntity:  m.ToDomainTenantEntity(),
		ProductID:     m.ProductID,
		CustomerEmail: m.CustomerEmail,
		Question:      m.Question,
		Answer:        m.Answer,
		TokensUsed:    m.TokensUsed,
	}
}

// FromDomain populates the persistence model from a domain ChatLog entity.
func (m *ChatLogModel) FromDomain(l *chat.ChatLog) {
	m.FromDomainTenantEntity(l.TenantEntity)
	m.ProductID = l.ProductID
	m.CustomerEmail = l.CustomerEmail
	m.Question = l.Question
	m.Answer = l.Answer
	m.TokensUsed = l.TokensUsed
}

// ChatLogModelFromDomain creates a new persistence model from a domain ChatLog entity.
func ChatLogModelFromDomain(l *chat.ChatLog) *ChatLogModel {
	m := &ChatLogModel{}
	m.FromDomain(l)
	return m
}
