package models

import (
	"time"

	"github.com/docuchat/backend/internal/domain/document"
	"github.com/google/uuid"
)

// DocumentModel is the persistence model for the Document domain entity.
type DocumentModel struct {
	TenantModelBase
	Filename   string                    `gorm:"type:varchar(500);not null"`
	StorageKey string                    `gorm:"type:varchar(1000);not null;uniqueIndex"`
	SizeBytes  int64                     `gorm:"not null;default:0"`
	Status     document.ProcessingStatus `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document entity.
func (m *DocumentModel) ToDomain() *document.Document {
	return &document.Document{
		TenantEntity: m.ToDomainTenantEntity(),
		Filename:     m.Filename,
		StorageKey:   m.StorageKey,
		SizeBytes:    m.SizeBytes,
		Status:       m.Status,
	}
}

// FromDomain populates the persistence model from a domain Document entity.
func (m *DocumentModel) FromDomain(d *document.Document) {
	m.FromDomainTenantEntity(d.TenantEntity)
	m.Filename = d.Filename
	m.StorageKey = d.StorageKey
	m.SizeBytes = d.SizeBytes
	m.Status = d.Status
}

// DocumentModelFromDomain creates a new persistence model from a domain Document entity.
func DocumentModelFromDomain(d *document.Document) *DocumentModel {
	m := &DocumentModel{}
	m.FromDomain(d)
	return m
}

// ProcessingLogModel is the persistence model for the ProcessingLog entity.
// There is at most one row per document; the pipeline upserts it as the
// document moves through its phases.
type ProcessingLogModel struct {
	TenantModelBase
	DocumentID    uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex"`
	Filename      string                   `gorm:"type:varchar(500);not null"`
	Phase         document.ProcessingPhase `gorm:"type:varchar(20);not null"`
	ChunksCreated int                      `gorm:"not null;default:0"`
	TotalPages    int                      `gorm:"not null;default:0"`
	ErrorMessage  string                   `gorm:"type:text"`
	StartedAt     *time.Time               `gorm:""`
	CompletedAt   *time.Time               `gorm:""`
}

// TableName returns the table name for GORM
func (ProcessingLogModel) TableName() string {
	return "processing_logs"
}

// ToDomain converts the persistence model to a domain ProcessingLog entity.
func (m *ProcessingLogModel) ToDomain() *document.ProcessingLog {
	return &document.ProcessingLog{
		TenantEntity:  m.ToDomainTenantEntity(),
		DocumentID:    m.DocumentID,
		Filename:      m.Filename,
		Phase:         m.Phase,
		ChunksCreated: m.ChunksCreated,
		TotalPages:    m.TotalPages,
		ErrorMessage:  m.ErrorMessage,
		StartedAt:     m.StartedAt,
		CompletedAt:   m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain ProcessingLog entity.
func (m *ProcessingLogModel) FromDomain(l *document.ProcessingLog) {
	m.FromDomainTenantEntity(l.TenantEntity)
	m.DocumentID = l.DocumentID
	m.Filename = l.Filename
	m.Phase = l.Phase
	m.ChunksCreated = l.ChunksCreated
	m.TotalPages = l.TotalPages
	m.ErrorMessage = l.ErrorMessage
	m.StartedAt = l.StartedAt
	m.CompletedAt = l.CompletedAt
}

// ProcessingLogModelFromDomain creates a new persistence model from a domain ProcessingLog entity.
func ProcessingLogModelFromDomain(l *document.ProcessingLog) *ProcessingLogModel {
	m := &ProcessingLogModel{}
	m.FromDomain(l)
	return m
}
