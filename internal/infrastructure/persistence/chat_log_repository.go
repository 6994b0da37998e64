package persistence

import (
	"context"
	"errors"

	"github.com/docuchat/backend/internal/domain/chat"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChatLogRepository implements ChatLogRepository using GORM
type GormChatLogRepository struct {
	db *gorm.DB
}

// NewGormChatLogRepository creates a new GormChatLogRepository
func NewGormChatLogRepository(db *gorm.DB) *GormChatLogRepository {
	return &GormChatLogRepository{db: db}
}

// FindByID finds a chat log by its ID
func (r *GormChatLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*chat.ChatLog, error) {
	var model models.ChatLogModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a chat log by ID within a tenant
func (r *GormChatLogRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*chat.ChatLog, error) {
	var model models.ChatLogModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all chat logs matching the filter
func (r *GormChatLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]chat.ChatLog, error) {
	var logModels []models.ChatLogModel
	query := applyPagination(
		r.applyChatLogFilters(r.db.WithContext(ctx).Model(&models.ChatLogModel{}), filter),
		filter, CommonSortFields)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]chat.ChatLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// FindAllForTenant finds all chat logs for a tenant
func (r *GormChatLogRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]chat.ChatLog, error) {
	var logModels []models.ChatLogModel
	query := applyPagination(
		r.applyChatLogFilters(
			r.db.WithContext(ctx).Model(&models.ChatLogModel{}).Where("tenant_id = ?", tenantID),
			filter),
		filter, CommonSortFields)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]chat.ChatLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Save creates or updates a chat log
func (r *GormChatLogRepository) Save(ctx context.Context, log *chat.ChatLog) error {
	model := models.ChatLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a chat log
func (r *GormChatLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ChatLogModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts chat logs matching the filter
func (r *GormChatLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyChatLogFilters(r.db.WithContext(ctx).Model(&models.ChatLogModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForTenant counts chat logs for a tenant
func (r *GormChatLogRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyChatLogFilters(
		r.db.WithContext(ctx).Model(&models.ChatLogModel{}).Where("tenant_id = ?", tenantID),
		filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProduct counts exchanges for one product of a tenant
func (r *GormChatLogRepository) CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChatLogModel{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyChatLogFilters applies the optional exact-match filters
func (r *GormChatLogRepository) applyChatLogFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "customer_email":
			query = query.Where("customer_email = ?", value)
		}
	}
	return query
}

// Ensure GormChatLogRepository implements ChatLogRepository
var _ chat.ChatLogRepository = (*GormChatLogRepository)(nil)
