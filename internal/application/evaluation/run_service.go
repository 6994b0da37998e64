package evaluation

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/domain/identity"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportGenerator renders a completed run into exportable bytes
type ReportGenerator interface {
	Generate(run *evaluation.TestRun, questions []evaluation.TestQuestion, tenantName string, format evaluation.ReportFormat) ([]byte, error)
}

// RunService handles test-run lifecycle operations for the admin console
// and customer portal. Every lookup verifies the caller's tenant against
// the run's owner before anything else; a mismatch is reported as
// Forbidden, uniformly across all operations.
type RunService struct {
	runRepo      evaluation.TestRunRepository
	questionRepo evaluation.TestQuestionRepository
	tenantRepo   identity.TenantRepository
	reportGen    ReportGenerator
	logger       *zap.Logger
}

// NewRunService creates a new RunService
func NewRunService(
	runRepo evaluation.TestRunRepository,
	questionRepo evaluation.TestQuestionRepository,
	tenantRepo identity.TenantRepository,
	reportGen ReportGenerator,
	logger *zap.Logger,
) *RunService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunService{
		runRepo:      runRepo,
		questionRepo: questionRepo,
		tenantRepo:   tenantRepo,
		reportGen:    reportGen,
		logger:       logger,
	}
}

// GetRun retrieves a single run owned by the tenant
func (s *RunService) GetRun(ctx context.Context, tenantID, runID uuid.UUID) (*RunResponse, error) {
	run, err := s.findOwnedRun(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	return toRunResponse(run), nil
}

// ListRuns retrieves the tenant's runs, newest first
func (s *RunService) ListRuns(ctx context.Context, tenantID uuid.UUID, req ListRunsRequest) ([]RunResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Status != "" {
		if !evaluation.RunStatus(req.Status).IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Unknown run status: "+req.Status)
		}
		filter.Filters["status"] = req.Status
	}

	runs, err := s.runRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list runs: %w", err)
	}
	total, err := s.runRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	items := make([]RunResponse, len(runs))
	for i := range runs {
		items[i] = *toRunResponse(&runs[i])
	}
	return items, total, nil
}

// GetQuestions retrieves the run's questions with optional exact-match
// filters on category and outcome. A run without questions yields an
// empty slice, not an error.
func (s *RunService) GetQuestions(ctx context.Context, tenantID, runID uuid.UUID, req QuestionListRequest) ([]QuestionResponse, error) {
	if _, err := s.findOwnedRun(ctx, tenantID, runID); err != nil {
		return nil, err
	}

	filter := evaluation.QuestionFilter{Passed: req.Passed}
	if req.Category != "" {
		filter.Category = &req.Category
	}

	questions, err := s.questionRepo.FindByRun(ctx, runID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	items := make([]QuestionResponse, len(questions))
	for i := range questions {
		items[i] = toQuestionResponse(&questions[i])
	}
	return items, nil
}

// GetProgress computes the polling payload for a run. Completion is
// measured as evaluated questions over total questions; a run without
// questions reports zero percent rather than a division fault.
func (s *RunService) GetProgress(ctx context.Context, tenantID, runID uuid.UUID) (*ProgressResponse, error) {
	run, err := s.findOwnedRun(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}

	total, err := s.questionRepo.CountByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	completed, err := s.questionRepo.CountEvaluatedByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count evaluated questions: %w", err)
	}

	percent := 0.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}

	resp := &ProgressResponse{
		Status:    run.Status.String(),
		Phase:     run.Status.PhaseLabel(),
		Completed: completed,
		Total:     total,
		Percent:   percent,
	}
	if run.IsCompleted() && run.Metrics != nil {
		resp.Metrics = toMetricsResponse(run.Metrics)
	}
	if run.IsFailed() {
		resp.ErrorMessage = run.ErrorMessage
	}
	return resp, nil
}

// DeleteRun removes a terminal run together with all of its questions.
// In-flight runs are rejected with InvalidState so the execution engine
// never loses the row it is working on.
func (s *RunService) DeleteRun(ctx context.Context, tenantID, runID uuid.UUID) error {
	run, err := s.findOwnedRun(ctx, tenantID, runID)
	if err != nil {
		return err
	}

	if !run.Deletable() {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot delete a test run while it is "+run.Status.String())
	}

	if err := s.runRepo.DeleteWithQuestions(ctx, runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	s.logger.Info("test run deleted",
		zap.String("run_id", runID.String()),
		zap.String("tenant_id", tenantID.String()))
	return nil
}

// ExportReport renders a completed run as a downloadable report
func (s *RunService) ExportReport(ctx context.Context, tenantID, runID uuid.UUID, format evaluation.ReportFormat) (*ReportFile, error) {
	if !format.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported report format: "+format.String())
	}

	run, err := s.findOwnedRun(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	if !run.IsCompleted() {
		return nil, shared.NewDomainError("INVALID_STATE", "Test not yet completed")
	}

	questions, err := s.questionRepo.FindByRun(ctx, runID, evaluation.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	tenantName := tenantID.String()
	if tenant, err := s.tenantRepo.FindByID(ctx, tenantID); err == nil {
		tenantName = tenant.Name
	}

	data, err := s.reportGen.Generate(run, questions, tenantName, format)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return &ReportFile{
		Filename:    ReportFilename(tenantID, runID, format),
		ContentType: reportContentType(format),
		Data:        data,
	}, nil
}

// ReportFilename builds the delivery filename for an exported report:
// qa-report-<tenantID>-<first 8 chars of runID>.<ext>
func ReportFilename(tenantID, runID uuid.UUID, format evaluation.ReportFormat) string {
	return fmt.Sprintf("qa-report-%s-%s.%s", tenantID, runID.String()[:8], format.Extension())
}

func reportContentType(format evaluation.ReportFormat) string {
	if format == evaluation.ReportFormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}

// findOwnedRun loads a run and enforces tenant ownership. The tenant
// check runs before any mutation; a mismatch is an explicit Forbidden,
// not a masked NotFound.
func (s *RunService) findOwnedRun(ctx context.Context, tenantID, runID uuid.UUID) (*evaluation.TestRun, error) {
	run, err := s.runRepo.FindByID(ctx, runID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Test run not found")
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if !run.BelongsTo(tenantID) {
		return nil, shared.ErrForbidden
	}
	return run, nil
}
