package document

import (
	"time"

	"github.com/docuchat/backend/internal/domain/document"
)

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListDocumentsRequest holds pagination options for listing documents
type ListDocumentsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

func toDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID.String(),
		TenantID:  d.TenantID.String(),
		Filename:  d.Filename,
		SizeBytes: d.SizeBytes,
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
	}
}
