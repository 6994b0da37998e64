package evaluation

import (
	"time"

	"github.com/docuchat/backend/internal/domain/evaluation"
)

// RunResponse represents a test run in API responses
type RunResponse struct {
	ID           string           `json:"id"`
	TenantID     string           `json:"tenant_id"`
	ProductID    string           `json:"product_id"`
	Status       string           `json:"status"`
	Metrics      *MetricsResponse `json:"metrics,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	StartedAt    time.Time        `json:"started_at"`
	FinishedAt   *time.Time       `json:"finished_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// MetricsResponse carries the result metrics of a completed run
type MetricsResponse struct {
	OverallScore     float64            `json:"overall_score"`
	ScoresByCategory map[string]float64 `json:"scores_by_category"`
	TotalCost        float64            `json:"total_cost"`
	DurationSeconds  int                `json:"duration_seconds"`
}

// ProgressResponse is the polling payload for a single run
type ProgressResponse struct {
	Status       string           `json:"status"`
	Phase        string           `json:"phase"`
	Completed    int64            `json:"completed"`
	Total        int64            `json:"total"`
	Percent      float64          `json:"percent"`
	Metrics      *MetricsResponse `json:"metrics,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// QuestionResponse represents a test question in API responses
type QuestionResponse struct {
	ID             string `json:"id"`
	RunID          string `json:"run_id"`
	Category       string `json:"category"`
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer,omitempty"`
	ActualAnswer   string `json:"actual_answer,omitempty"`
	Passed         *bool  `json:"passed"`
}

// QuestionListRequest holds the optional question filters
type QuestionListRequest struct {
	Category string `form:"category"`
	Passed   *bool  `form:"passed"`
}

// ListRunsRequest holds pagination options for listing runs
type ListRunsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// ReportFile is a generated report ready for delivery
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func toRunResponse(run *evaluation.TestRun) *RunResponse {
	resp := &RunResponse{
		ID:         run.ID.String(),
		TenantID:   run.TenantID.String(),
		ProductID:  run.ProductID.String(),
		Status:     run.Status.String(),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		CreatedAt:  run.CreatedAt,
	}
	if run.IsCompleted() && run.Metrics != nil {
		resp.Metrics = toMetricsResponse(run.Metrics)
	}
	if run.IsFailed() {
		resp.ErrorMessage = run.ErrorMessage
	}
	return resp
}

func toMetricsResponse(m *evaluation.RunMetrics) *MetricsResponse {
	return &MetricsResponse{
		OverallScore:     m.OverallScore,
		ScoresByCategory: m.ScoresByCategory,
		TotalCost:        m.TotalCost,
		DurationSeconds:  m.DurationSeconds,
	}
}

func toQuestionResponse(q *evaluation.TestQuestion) QuestionResponse {
	return QuestionResponse{
		ID:             q.ID.String(),
		RunID:          q.RunID.String(),
		Category:       q.Category,
		Question:       q.Question,
		ExpectedAnswer: q.ExpectedAnswer,
		ActualAnswer:   q.ActualAnswer,
		Passed:         q.Passed,
	}
}
