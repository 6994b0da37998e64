package evaluation

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QuestionFilter holds the optional exact-match filters for listing questions
type QuestionFilter struct {
	Category *string
	Passed   *bool
}

// TestRunRepository manages persistence for test runs
type TestRunRepository interface {
	shared.TenantRepository[TestRun]

	// DeleteWithQuestions removes a run and all of its questions in a
	// single transaction. Concurrent readers never observe a run without
	// its questions or vice versa.
	DeleteWithQuestions(ctx context.Context, id uuid.UUID) error
}

// TestQuestionRepository manages persistence for test questions
type TestQuestionRepository interface {
	// FindByRun returns the run's questions in creation order, narrowed
	// by the optional filters. An empty result is not an error.
	FindByRun(ctx context.Context, runID uuid.UUID, filter QuestionFilter) ([]TestQuestion, error)

	// CountByRun returns the total number of questions for a run
	CountByRun(ctx context.Context, runID uuid.UUID) (int64, error)

	// CountEvaluatedByRun returns how many questions have an outcome
	CountEvaluatedByRun(ctx context.Context, runID uuid.UUID) (int64, error)

	Save(ctx context.Context, question *TestQuestion) error
	SaveBatch(ctx context.Context, questions []*TestQuestion) error
}
