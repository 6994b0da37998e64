package handler

import (
	"fmt"
	"net/http"

	evalapp "github.com/docuchat/backend/internal/application/evaluation"
	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRunHandler serves the QA test-run read and lifecycle endpoints
type TestRunHandler struct {
	BaseHandler
	runService *evalapp.RunService
}

// NewTestRunHandler creates a new TestRunHandler
func NewTestRunHandler(runService *evalapp.RunService) *TestRunHandler {
	return &TestRunHandler{runService: runService}
}

// List returns the tenant's test runs
// GET /api/v1/test-runs
func (h *TestRunHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req evalapp.ListRunsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	runs, total, err := h.runService.ListRuns(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, runs, total, req.Page, req.PageSize)
}

// Get returns a single test run
// GET /api/v1/test-runs/:id
func (h *TestRunHandler) Get(c *gin.Context) {
	tenantID, runID, ok := h.bindRunRequest(c)
	if !ok {
		return
	}

	run, err := h.runService.GetRun(c.Request.Context(), tenantID, runID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, run)
}

// GetProgress returns the live progress of a test run
// GET /api/v1/test-runs/:id/progress
func (h *TestRunHandler) GetProgress(c *gin.Context) {
	tenantID, runID, ok := h.bindRunRequest(c)
	if !ok {
		return
	}

	progress, err := h.runService.GetProgress(c.Request.Context(), tenantID, runID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, progress)
}

// GetQuestions returns a run's questions, optionally filtered
// GET /api/v1/test-runs/:id/questions
func (h *TestRunHandler) GetQuestions(c *gin.Context) {
	tenantID, runID, ok := h.bindRunRequest(c)
	if !ok {
		return
	}

	var req evalapp.QuestionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	questions, err := h.runService.GetQuestions(c.Request.Context(), tenantID, runID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, questions)
}

// Delete removes a terminal test run and its questions
// DELETE /api/v1/test-runs/:id
func (h *TestRunHandler) Delete(c *gin.Context) {
	tenantID, runID, ok := h.bindRunRequest(c)
	if !ok {
		return
	}

	if err := h.runService.DeleteRun(c.Request.Context(), tenantID, runID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ExportReport streams the run's report in the requested format
// GET /api/v1/test-runs/:id/report?format=pdf|csv
func (h *TestRunHandler) ExportReport(c *gin.Context) {
	tenantID, runID, ok := h.bindRunRequest(c)
	if !ok {
		return
	}

	format := evaluation.ReportFormat(c.DefaultQuery("format", "pdf"))

	report, err := h.runService.ExportReport(c.Request.Context(), tenantID, runID, format)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

func (h *TestRunHandler) bindRunRequest(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid test run ID")
		return uuid.Nil, uuid.Nil, false
	}
	runID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid test run ID")
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, runID, true
}
