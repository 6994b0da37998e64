package evaluation

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TestQuestion is one generated question belonging to exactly one test run.
// The run exclusively owns its questions: deleting the run deletes them.
type TestQuestion struct {
	shared.BaseEntity
	RunID          uuid.UUID
	Category       string
	Question       string
	ExpectedAnswer string
	ActualAnswer   string
	Passed         *bool // nil until the question has been evaluated
}

// NewTestQuestion creates a new, not-yet-evaluated test question
func NewTestQuestion(runID uuid.UUID, category, question, expectedAnswer string) (*TestQuestion, error) {
	if runID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RUN", "Run ID cannot be empty")
	}
	if question == "" {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Question text cannot be empty")
	}

	return &TestQuestion{
		BaseEntity:     shared.NewBaseEntity(),
		RunID:          runID,
		Category:       category,
		Question:       question,
		ExpectedAnswer: expectedAnswer,
	}, nil
}

// Evaluate records the outcome of executing the question
func (q *TestQuestion) Evaluate(actualAnswer string, passed bool) {
	q.ActualAnswer = actualAnswer
	q.Passed = &passed
	q.UpdatedAt = time.Now()
}

// IsEvaluated returns true once the question has an outcome
func (q *TestQuestion) IsEvaluated() bool {
	return q.Passed != nil
}
