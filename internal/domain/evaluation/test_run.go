package evaluation

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RunMetrics holds the result metrics of a completed test run.
// The fields are only meaningful once the run reaches completed status.
type RunMetrics struct {
	OverallScore     float64
	ScoresByCategory map[string]float64
	TotalCost        float64
	DurationSeconds  int
}

// TestRun represents one execution of an automated QA evaluation against
// a tenant's chat product. It progresses through a fixed phase sequence
// and carries metrics once completed, or an error message once failed.
type TestRun struct {
	shared.TenantEntity
	ProductID    uuid.UUID
	Status       RunStatus
	Metrics      *RunMetrics // nil unless Status == completed
	ErrorMessage string      // empty unless Status == failed
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// NewTestRun creates a new test run in the initial generating status
func NewTestRun(tenantID, productID uuid.UUID) (*TestRun, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	return &TestRun{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ProductID:    productID,
		Status:       RunStatusGenerating,
		StartedAt:    time.Now(),
	}, nil
}

// Start marks question generation as finished and test execution as started
func (r *TestRun) Start() error {
	return r.transition(RunStatusRunning)
}

// BeginEvaluation marks test execution as finished and scoring as started
func (r *TestRun) BeginEvaluation() error {
	return r.transition(RunStatusEvaluating)
}

// Complete marks the run as completed with its result metrics
func (r *TestRun) Complete(metrics RunMetrics) error {
	if !r.Status.CanTransitionTo(RunStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot complete from status: "+r.Status.String())
	}
	if metrics.ScoresByCategory == nil {
		metrics.ScoresByCategory = map[string]float64{}
	}

	r.Status = RunStatusCompleted
	r.Metrics = &metrics
	now := time.Now()
	r.FinishedAt = &now
	r.UpdatedAt = now

	return nil
}

// Fail marks the run as failed with an error message.
// Allowed from any non-terminal status.
func (r *TestRun) Fail(errorMessage string) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot fail a run that is already in terminal status: "+r.Status.String())
	}

	r.Status = RunStatusFailed
	r.ErrorMessage = errorMessage
	now := time.Now()
	r.FinishedAt = &now
	r.UpdatedAt = now

	return nil
}

// IsTerminal returns true if the run is in a terminal state
func (r *TestRun) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// IsCompleted returns true if the run completed successfully
func (r *TestRun) IsCompleted() bool {
	return r.Status == RunStatusCompleted
}

// IsFailed returns true if the run failed
func (r *TestRun) IsFailed() bool {
	return r.Status == RunStatusFailed
}

// Deletable returns true if the run may be deleted. In-flight runs are
// protected so that the execution engine never orphans its work.
func (r *TestRun) Deletable() bool {
	return r.Status.IsTerminal()
}

func (r *TestRun) transition(target RunStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition from "+r.Status.String()+" to "+target.String())
	}
	r.Status = target
	r.UpdatedAt = time.Now()
	return nil
}
