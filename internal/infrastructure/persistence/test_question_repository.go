package persistence

import (
	"context"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTestQuestionRepository implements TestQuestionRepository using GORM
type GormTestQuestionRepository struct {
	db *gorm.DB
}

// NewGormTestQuestionRepository creates a new GormTestQuestionRepository
func NewGormTestQuestionRepository(db *gorm.DB) *GormTestQuestionRepository {
	return &GormTestQuestionRepository{db: db}
}

// FindByRun returns the run's questions in creation order, narrowed by
// the optional category and outcome filters
func (r *GormTestQuestionRepository) FindByRun(ctx context.Context, runID uuid.UUID, filter evaluation.QuestionFilter) ([]evaluation.TestQuestion, error) {
	query := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("created_at ASC")

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Passed != nil {
		query = query.Where("passed = ?", *filter.Passed)
	}

	var questionModels []models.TestQuestionModel
	if err := query.Find(&questionModels).Error; err != nil {
		return nil, err
	}

	questions := make([]evaluation.TestQuestion, len(questionModels))
	for i, model := range questionModels {
		questions[i] = *model.ToDomain()
	}
	return questions, nil
}

// CountByRun returns the total number of questions for a run
func (r *GormTestQuestionRepository) CountByRun(ctx context.Context, runID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TestQuestionModel{}).
		Where("run_id = ?", runID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountEvaluatedByRun returns how many of the run's questions already
// carry an outcome
func (r *GormTestQuestionRepository) CountEvaluatedByRun(ctx context.Context, runID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TestQuestionModel{}).
		Where("run_id = ? AND passed IS NOT NULL", runID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a question
func (r *GormTestQuestionRepository) Save(ctx context.Context, question *evaluation.TestQuestion) error {
	model := models.TestQuestionModelFromDomain(question)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveBatch creates or updates multiple questions in one statement
func (r *GormTestQuestionRepository) SaveBatch(ctx context.Context, questions []*evaluation.TestQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	questionModels := make([]*models.TestQuestionModel, len(questions))
	for i, q := range questions {
		questionModels[i] = models.TestQuestionModelFromDomain(q)
	}
	return r.db.WithContext(ctx).Save(questionModels).Error
}

// Ensure GormTestQuestionRepository implements TestQuestionRepository
var _ evaluation.TestQuestionRepository = (*GormTestQuestionRepository)(nil)
