package document

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Document is an uploaded knowledge-base file owned by a tenant. The
// ingestion pipeline (external to this service) advances its status and
// writes processing log entries as it works through the file.
type Document struct {
	shared.TenantEntity
	Filename   string
	StorageKey string
	SizeBytes  int64
	Status     ProcessingStatus
}

// NewDocument creates a new document in the pending status
func NewDocument(tenantID uuid.UUID, filename, storageKey string, sizeBytes int64) (*Document, error) {
	if filename == "" {
		return nil, shared.NewDomainError("INVALID_FILENAME", "Filename cannot be empty")
	}
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}

	return &Document{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Filename:     filename,
		StorageKey:   storageKey,
		SizeBytes:    sizeBytes,
		Status:       ProcessingStatusPending,
	}, nil
}

// InFlight returns true while the document is still being ingested
func (d *Document) InFlight() bool {
	return d.Status == ProcessingStatusPending || d.Status == ProcessingStatusProcessing
}

// ProcessingLog is the authoritative per-document ingestion record.
// A document has zero or one log entry; when present it always takes
// precedence over the phase inferred from the document's coarse status.
type ProcessingLog struct {
	shared.TenantEntity
	DocumentID    uuid.UUID
	Filename      string
	Phase         ProcessingPhase
	ChunksCreated int
	TotalPages    int
	ErrorMessage  string
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// NewProcessingLog creates a log entry for a document entering the pipeline
func NewProcessingLog(tenantID, documentID uuid.UUID, filename string) (*ProcessingLog, error) {
	if documentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document ID cannot be empty")
	}

	now := time.Now()
	return &ProcessingLog{
		TenantEntity: shared.NewTenantEntity(tenantID),
		DocumentID:   documentID,
		Filename:     filename,
		Phase:        PhaseUploading,
		StartedAt:    &now,
	}, nil
}

// AdvanceTo moves the log entry to the given phase
func (l *ProcessingLog) AdvanceTo(phase ProcessingPhase) error {
	if !phase.IsValid() {
		return shared.NewDomainError("INVALID_PHASE", "Unknown processing phase: "+string(phase))
	}
	if l.Phase.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot advance a log entry in terminal phase: "+l.Phase.String())
	}

	l.Phase = phase
	now := time.Now()
	if phase.IsTerminal() {
		l.CompletedAt = &now
	}
	l.UpdatedAt = now
	return nil
}
