package persistence

import (
	"context"
	"testing"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEvaluationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TestRunModel{}, &models.TestQuestionModel{})
	require.NoError(t, err)

	return db
}

func seedRunWithQuestions(t *testing.T, db *gorm.DB, questionCount int) *evaluation.TestRun {
	t.Helper()
	ctx := context.Background()

	run, err := evaluation.NewTestRun(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, NewGormTestRunRepository(db).Save(ctx, run))

	questionRepo := NewGormTestQuestionRepository(db)
	for i := 0; i < questionCount; i++ {
		q, err := evaluation.NewTestQuestion(run.ID, "general", "What is the return policy?", "30 days")
		require.NoError(t, err)
		require.NoError(t, questionRepo.Save(ctx, q))
	}
	return run
}

func TestGormTestRunRepository_SaveAndFind(t *testing.T) {
	db := setupEvaluationTestDB(t)
	repo := NewGormTestRunRepository(db)
	ctx := context.Background()

	t.Run("round trips a completed run with metrics", func(t *testing.T) {
		run, err := evaluation.NewTestRun(uuid.New(), uuid.New())
		require.NoError(t, err)
		require.NoError(t, run.Start())
		require.NoError(t, run.BeginEvaluation())
		require.NoError(t, run.Complete(evaluation.RunMetrics{
			OverallScore:     0.87,
			ScoresByCategory: map[string]float64{"general": 0.9, "pricing": 0.8},
			TotalCost:        1.25,
			DurationSeconds:  73,
		}))
		require.NoError(t, repo.Save(ctx, run))

		found, err := repo.FindByIDForTenant(ctx, run.TenantID, run.ID)
		require.NoError(t, err)
		assert.Equal(t, evaluation.RunStatusCompleted, found.Status)
		require.NotNil(t, found.Metrics)
		assert.Equal(t, 0.87, found.Metrics.OverallScore)
		assert.Equal(t, 0.8, found.Metrics.ScoresByCategory["pricing"])
		assert.Equal(t, 73, found.Metrics.DurationSeconds)
	})

	t.Run("tenant scoping hides other tenants' runs", func(t *testing.T) {
		run, err := evaluation.NewTestRun(uuid.New(), uuid.New())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, run))

		_, err = repo.FindByIDForTenant(ctx, uuid.New(), run.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		tenantID := uuid.New()
		running, err := evaluation.NewTestRun(tenantID, uuid.New())
		require.NoError(t, err)
		require.NoError(t, running.Start())
		require.NoError(t, repo.Save(ctx, running))

		failed, err := evaluation.NewTestRun(tenantID, uuid.New())
		require.NoError(t, err)
		require.NoError(t, failed.Fail("generation timed out"))
		require.NoError(t, repo.Save(ctx, failed))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(evaluation.RunStatusFailed)

		runs, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, failed.ID, runs[0].ID)
	})
}

func TestGormTestRunRepository_DeleteWithQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the run and every question in one transaction", func(t *testing.T) {
		db := setupEvaluationTestDB(t)
		repo := NewGormTestRunRepository(db)
		questionRepo := NewGormTestQuestionRepository(db)

		run := seedRunWithQuestions(t, db, 3)
		other := seedRunWithQuestions(t, db, 2)

		require.NoError(t, repo.DeleteWithQuestions(ctx, run.ID))

		_, err := repo.FindByID(ctx, run.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		count, err := questionRepo.CountByRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		otherCount, err := questionRepo.CountByRun(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), otherCount)
	})

	t.Run("missing run reports not found and leaves nothing behind", func(t *testing.T) {
		db := setupEvaluationTestDB(t)
		repo := NewGormTestRunRepository(db)

		err := repo.DeleteWithQuestions(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTestQuestionRepository_Counts(t *testing.T) {
	db := setupEvaluationTestDB(t)
	questionRepo := NewGormTestQuestionRepository(db)
	ctx := context.Background()

	run := seedRunWithQuestions(t, db, 3)

	questions, err := questionRepo.FindByRun(ctx, run.ID, evaluation.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, questions, 3)

	questions[0].Evaluate("30 days from purchase", true)
	require.NoError(t, questionRepo.Save(ctx, &questions[0]))

	total, err := questionRepo.CountByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	evaluated, err := questionRepo.CountEvaluatedByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evaluated)

	passed := true
	passing, err := questionRepo.FindByRun(ctx, run.ID, evaluation.QuestionFilter{Passed: &passed})
	require.NoError(t, err)
	assert.Len(t, passing, 1)
}
