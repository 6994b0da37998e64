package finance

import (
	"time"

	"github.com/docuchat/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// UploadInvoiceRequest carries the multipart upload fields
type UploadInvoiceRequest struct {
	Filename      string
	ContentType   string
	Data          []byte
	InvoiceNumber string
	InvoiceDate   *time.Time
	Amount        *decimal.Decimal
	Description   string
}

// ListInvoicesRequest holds pagination options for listing invoices
type ListInvoicesRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                string           `json:"id"`
	TenantID          string           `json:"tenant_id"`
	Filename          string           `json:"filename"`
	InvoiceNumber     string           `json:"invoice_number,omitempty"`
	InvoiceDate       *time.Time       `json:"invoice_date,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Description       string           `json:"description,omitempty"`
	IsPaidByCustomer  bool             `json:"is_paid_by_customer"`
	CustomerPaidAt    *time.Time       `json:"customer_paid_at,omitempty"`
	IsVerifiedByAdmin bool             `json:"is_verified_by_admin"`
	VerifiedAt        *time.Time       `json:"verified_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// InvoiceDownload is the invoice blob ready for delivery
type InvoiceDownload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func toInvoiceResponse(inv *finance.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID.String(),
		TenantID:          inv.TenantID.String(),
		Filename:          inv.Filename,
		InvoiceNumber:     inv.InvoiceNumber,
		InvoiceDate:       inv.InvoiceDate,
		Amount:            inv.Amount,
		Description:       inv.Description,
		IsPaidByCustomer:  inv.IsPaidByCustomer,
		CustomerPaidAt:    inv.CustomerPaidAt,
		IsVerifiedByAdmin: inv.IsVerifiedByAdmin,
		VerifiedAt:        inv.VerifiedAt,
		CreatedAt:         inv.CreatedAt,
	}
}
