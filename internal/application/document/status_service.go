package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuchat/backend/internal/domain/document"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BlobStorage is the subset of object storage the document service needs
type BlobStorage interface {
	DeleteObject(ctx context.Context, storageKey string) error
}

// StatusService exposes the tenant's document inventory and the merged
// ingestion-progress view. The pipeline that advances documents runs
// elsewhere; this service only reads its tracks and removes documents.
type StatusService struct {
	docRepo document.DocumentRepository
	logRepo document.ProcessingLogRepository
	storage BlobStorage
	logger  *zap.Logger
}

// NewStatusService creates a new StatusService
func NewStatusService(
	docRepo document.DocumentRepository,
	logRepo document.ProcessingLogRepository,
	storage BlobStorage,
	logger *zap.Logger,
) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{
		docRepo: docRepo,
		logRepo: logRepo,
		storage: storage,
		logger:  logger,
	}
}

// GetProcessingStatus returns the merged ingestion view for the tenant.
// The two reads are independent snapshots; a document finishing between
// them shows up at most one poll late, which the polling UI tolerates.
func (s *StatusService) GetProcessingStatus(ctx context.Context, tenantID uuid.UUID) (*document.ProcessingOverview, error) {
	logs, err := s.logRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load processing logs: %w", err)
	}
	docs, err := s.docRepo.FindInFlight(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load in-flight documents: %w", err)
	}

	overview := document.MergeProcessingStatus(logs, docs)
	return &overview, nil
}

// ListDocuments returns the tenant's documents, newest first
func (s *StatusService) ListDocuments(ctx context.Context, tenantID uuid.UUID, req ListDocumentsRequest) ([]DocumentResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Status != "" {
		if !document.ProcessingStatus(req.Status).IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Unknown document status: "+req.Status)
		}
		filter.Filters["status"] = req.Status
	}

	docs, err := s.docRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	total, err := s.docRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	items := make([]DocumentResponse, len(docs))
	for i := range docs {
		items[i] = toDocumentResponse(&docs[i])
	}
	return items, total, nil
}

// DeleteDocument removes the row, its log entry, and finally the blob.
// The row is the source of truth; once it is gone the delete has
// succeeded, and a failing blob cleanup is logged and swallowed.
func (s *StatusService) DeleteDocument(ctx context.Context, tenantID, docID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Document not found")
		}
		return fmt.Errorf("failed to get document: %w", err)
	}
	if !doc.BelongsTo(tenantID) {
		return shared.ErrForbidden
	}

	if err := s.docRepo.DeleteForTenant(ctx, tenantID, docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if err := s.logRepo.DeleteByDocument(ctx, docID); err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Warn("failed to delete processing log",
			zap.String("document_id", docID.String()),
			zap.Error(err))
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("failed to delete document blob",
			zap.String("document_id", docID.String()),
			zap.String("storage_key", doc.StorageKey),
			zap.Error(err))
	}

	return nil
}
