package document

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentRepository manages persistence for documents
type DocumentRepository interface {
	shared.TenantRepository[Document]

	// FindInFlight returns the tenant's documents whose coarse status is
	// pending or processing
	FindInFlight(ctx context.Context, tenantID uuid.UUID) ([]Document, error)

	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// ProcessingLogRepository manages persistence for processing log entries
type ProcessingLogRepository interface {
	// FindByTenant returns all log entries for a tenant, newest first
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]ProcessingLog, error)

	// FindByDocument returns the document's log entry, or shared.ErrNotFound
	FindByDocument(ctx context.Context, documentID uuid.UUID) (*ProcessingLog, error)

	Save(ctx context.Context, log *ProcessingLog) error
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) error
}
