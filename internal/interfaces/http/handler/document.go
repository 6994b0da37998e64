package handler

import (
	docapp "github.com/docuchat/backend/internal/application/document"
	"github.com/docuchat/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler serves knowledge-base document endpoints
type DocumentHandler struct {
	BaseHandler
	statusService *docapp.StatusService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(statusService *docapp.StatusService) *DocumentHandler {
	return &DocumentHandler{statusService: statusService}
}

// GetStatus returns the tenant's document processing overview
// GET /api/v1/documents/status
func (h *DocumentHandler) GetStatus(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	overview, err := h.statusService.GetProcessingStatus(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// List returns the tenant's documents
// GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req docapp.ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	docs, total, err := h.statusService.ListDocuments(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, docs, total, req.Page, req.PageSize)
}

// Delete removes a document, its stored file and its processing log
// DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}
	docID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.statusService.DeleteDocument(c.Request.Context(), tenantID, docID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
