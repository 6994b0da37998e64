package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	financeapp "github.com/docuchat/backend/internal/application/finance"
	"github.com/docuchat/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceHandler serves invoice upload, listing and settlement endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *financeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Upload accepts an invoice file with optional metadata fields
// POST /api/v1/invoices (multipart/form-data)
func (h *InvoiceHandler) Upload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Form field 'file' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}

	req := financeapp.UploadInvoiceRequest{
		Filename:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Data:          data,
		InvoiceNumber: c.PostForm("invoice_number"),
		Description:   c.PostForm("description"),
	}

	if dateStr := c.PostForm("invoice_date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.BadRequest(c, "Form field 'invoice_date' must be YYYY-MM-DD")
			return
		}
		req.InvoiceDate = &parsed
	}

	if amountStr := c.PostForm("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			h.BadRequest(c, "Form field 'amount' must be a decimal number")
			return
		}
		req.Amount = &amount
	}

	invoice, err := h.invoiceService.Upload(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// List returns the tenant's invoices
// GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, req.Page, req.PageSize)
}

// Get returns a single invoice
// GET /api/v1/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, invoiceID, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Download streams the stored invoice file
// GET /api/v1/invoices/:id/download
func (h *InvoiceHandler) Download(c *gin.Context) {
	tenantID, invoiceID, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	download, err := h.invoiceService.Download(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Data(http.StatusOK, download.ContentType, download.Data)
}

// MarkPaid records that the customer settled the invoice
// POST /api/v1/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	tenantID, invoiceID, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Verify records admin confirmation of a paid invoice
// POST /api/v1/invoices/:id/verify
func (h *InvoiceHandler) Verify(c *gin.Context) {
	tenantID, invoiceID, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Verify(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Delete removes an invoice and its stored file
// DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	tenantID, invoiceID, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), tenantID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *InvoiceHandler) bindInvoiceRequest(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return uuid.Nil, uuid.Nil, false
	}
	invoiceID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, invoiceID, true
}
