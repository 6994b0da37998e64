package persistence

import (
	"context"
	"errors"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTestRunRepository implements TestRunRepository using GORM
type GormTestRunRepository struct {
	db *gorm.DB
}

// NewGormTestRunRepository creates a new GormTestRunRepository
func NewGormTestRunRepository(db *gorm.DB) *GormTestRunRepository {
	return &GormTestRunRepository{db: db}
}

// FindByID finds a test run by its ID
func (r *GormTestRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*evaluation.TestRun, error) {
	var model models.TestRunModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a test run by ID within a tenant
func (r *GormTestRunRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*evaluation.TestRun, error) {
	var model models.TestRunModel
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

// FindAll finds all test runs matching the filter
func (r *GormTestRunRepository) FindAll(ctx context.Context, filter shared.Filter) ([]evaluation.TestRun, error) {
	var runModels []models.TestRunModel
	query := applyPagination(
		r.applyRunFilters(r.db.WithContext(ctx).Model(&models.TestRunModel{}), filter),
		filter, TestRunSortFields)

	if err := query.Find(&runModels).Error; err != nil {
		return nil, err
	}

	runs := make([]evaluation.TestRun, len(runModels))
	for i, model := range runModels {
		runs[i] = *model.ToDomain()
	}
	return runs, nil
}

// FindAllForTenant finds all test runs for a tenant
func (r *GormTestRunRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]evaluation.TestRun, error) {
	var runModels []models.TestRunModel
	query := applyPagination(
		r.applyRunFilters(
			r.db.WithContext(ctx).Model(&models.TestRunModel{}).Where("tenant_id = ?", tenantID),
			filter),
		filter, TestRunSortFields)

	if err := query.Find(&runModels).Error; err != nil {
		return nil, err
	}

	runs := make([]evaluation.TestRun, len(runModels))
	for i, model := range runModels {
		runs[i] = *model.ToDomain()
	}
	return runs, nil
}

// Save creates or updates a test run
func (r *GormTestRunRepository) Save(ctx context.Context, run *evaluation.TestRun) error {
	model := models.TestRunModelFromDomain(run)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a test run row only; callers that also need the
// questions removed must use DeleteWithQuestions
func (r *GormTestRunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TestRunModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteWithQuestions removes a run and all of its questions in a single
// transaction so no reader ever sees a half-deleted run
func (r *GormTestRunRepository) DeleteWithQuestions(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TestQuestionModel{}, "run_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TestRunModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts test runs matching the filter
func (r *GormTestRunRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyRunFilters(r.db.WithContext(ctx).Model(&models.TestRunModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForTenant counts test runs for a tenant
func (r *GormTestRunRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyRunFilters(
		r.db.WithContext(ctx).Model(&models.TestRunModel{}).Where("tenant_id = ?", tenantID),
		filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyRunFilters applies the optional exact-match filters
func (r *GormTestRunRepository) applyRunFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}
	return query
}

// Ensure GormTestRunRepository implements TestRunRepository
var _ evaluation.TestRunRepository = (*GormTestRunRepository)(nil)
