package finance

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/docuchat/backend/internal/domain/finance"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage is the object-store surface the invoice service needs
type ObjectStorage interface {
	PutObject(ctx context.Context, storageKey, contentType string, data []byte) error
	GetObject(ctx context.Context, storageKey string) ([]byte, error)
	DeleteObject(ctx context.Context, storageKey string) error
}

// InvoiceService handles invoice upload, retrieval and the two
// independent payment flags. The blob is written before the row; a
// failed row insert compensates by deleting the blob so storage never
// accumulates orphans from failed uploads.
type InvoiceService struct {
	invoiceRepo finance.InvoiceRepository
	storage     ObjectStorage
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo finance.InvoiceRepository, storage ObjectStorage, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		storage:     storage,
		logger:      logger,
	}
}

// Upload stores the invoice file and then its row
func (s *InvoiceService) Upload(ctx context.Context, tenantID uuid.UUID, req UploadInvoiceRequest) (*InvoiceResponse, error) {
	if len(req.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice file cannot be empty")
	}

	storageKey := invoiceStorageKey(tenantID, req.Filename)

	if err := s.storage.PutObject(ctx, storageKey, req.ContentType, req.Data); err != nil {
		return nil, fmt.Errorf("failed to store invoice file: %w", err)
	}

	invoice, err := finance.NewInvoice(tenantID, storageKey, req.Filename, req.ContentType)
	if err != nil {
		if cerr := s.storage.DeleteObject(ctx, storageKey); cerr != nil {
			s.logger.Warn("failed to clean up invoice blob",
				zap.String("storage_key", storageKey), zap.Error(cerr))
		}
		return nil, err
	}
	invoice.SetDetails(req.InvoiceNumber, req.InvoiceDate, req.Amount, req.Description)

	err = runWithCompensation(ctx, s.logger,
		func() error { return s.invoiceRepo.Save(ctx, invoice) },
		func(ctx context.Context) error { return s.storage.DeleteObject(ctx, storageKey) },
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.logger.Info("invoice uploaded",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("tenant_id", tenantID.String()))

	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Get retrieves a single invoice owned by the tenant
func (s *InvoiceService) Get(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.findOwnedInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// List returns the tenant's invoices, newest first
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, req ListInvoicesRequest) ([]InvoiceResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}

	invoices, err := s.invoiceRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	total, err := s.invoiceRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	items := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		items[i] = toInvoiceResponse(&invoices[i])
	}
	return items, total, nil
}

// Download fetches the invoice blob for delivery
func (s *InvoiceService) Download(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceDownload, error) {
	invoice, err := s.findOwnedInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.GetObject(ctx, invoice.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice file: %w", err)
	}

	return &InvoiceDownload{
		Filename:    invoice.Filename,
		ContentType: invoice.ContentType,
		Data:        data,
	}, nil
}

// MarkPaid records the customer-side paid flag. A second call fails with
// ALREADY_PAID and leaves the stored row untouched.
func (s *InvoiceService) MarkPaid(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.findOwnedInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.MarkPaidByCustomer(); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Verify records the admin-side verification flag
func (s *InvoiceService) Verify(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.findOwnedInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.VerifyByAdmin(); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Delete removes the row first and then the blob. Once the row is gone
// the delete has succeeded; a failing blob cleanup is logged and
// swallowed.
func (s *InvoiceService) Delete(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	invoice, err := s.findOwnedInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteForTenant(ctx, tenantID, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if err := s.storage.DeleteObject(ctx, invoice.StorageKey); err != nil {
		s.logger.Warn("failed to delete invoice blob",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("storage_key", invoice.StorageKey),
			zap.Error(err))
	}

	return nil
}

func (s *InvoiceService) findOwnedInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (*finance.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	if !invoice.BelongsTo(tenantID) {
		return nil, shared.ErrForbidden
	}
	return invoice, nil
}

// invoiceStorageKey builds a collision-free blob path for an invoice
func invoiceStorageKey(tenantID uuid.UUID, filename string) string {
	return fmt.Sprintf("tenants/%s/invoices/%s%s",
		tenantID.String(), uuid.New().String(), filepath.Ext(filename))
}
