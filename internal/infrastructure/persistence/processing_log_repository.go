package persistence

import (
	"context"
	"errors"

	"github.com/docuchat/backend/internal/domain/document"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProcessingLogRepository implements ProcessingLogRepository using GORM
type GormProcessingLogRepository struct {
	db *gorm.DB
}

// NewGormProcessingLogRepository creates a new GormProcessingLogRepository
func NewGormProcessingLogRepository(db *gorm.DB) *GormProcessingLogRepository {
	return &GormProcessingLogRepository{db: db}
}

// FindByTenant returns all log entries for a tenant, newest first
func (r *GormProcessingLogRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]document.ProcessingLog, error) {
	var logModels []models.ProcessingLogModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]document.ProcessingLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// FindByDocument returns the document's log entry, or shared.ErrNotFound
func (r *GormProcessingLogRepository) FindByDocument(ctx context.Context, documentID uuid.UUID) (*document.ProcessingLog, error) {
	var model models.ProcessingLogModel
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a log entry
func (r *GormProcessingLogRepository) Save(ctx context.Context, log *document.ProcessingLog) error {
	model := models.ProcessingLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByDocument removes the document's log entry
func (r *GormProcessingLogRepository) DeleteByDocument(ctx context.Context, documentID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProcessingLogModel{}, "document_id = ?", documentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProcessingLogRepository implements ProcessingLogRepository
var _ document.ProcessingLogRepository = (*GormProcessingLogRepository)(nil)
