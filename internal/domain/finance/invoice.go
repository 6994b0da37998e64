package finance

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a tenant-scoped billing document backed by a file in object
// storage. Two independent flags track its state: the customer marks it
// paid from the portal, the admin verifies payment from the console.
type Invoice struct {
	shared.TenantEntity
	StorageKey        string
	Filename          string
	ContentType       string
	InvoiceNumber     string
	InvoiceDate       *time.Time
	Amount            *decimal.Decimal
	Description       string
	IsPaidByCustomer  bool
	CustomerPaidAt    *time.Time
	IsVerifiedByAdmin bool
	VerifiedAt        *time.Time
}

// NewInvoice creates a new unpaid, unverified invoice
func NewInvoice(tenantID uuid.UUID, storageKey, filename, contentType string) (*Invoice, error) {
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if filename == "" {
		return nil, shared.NewDomainError("INVALID_FILENAME", "Filename cannot be empty")
	}

	return &Invoice{
		TenantEntity: shared.NewTenantEntity(tenantID),
		StorageKey:   storageKey,
		Filename:     filename,
		ContentType:  contentType,
	}, nil
}

// SetDetails fills in the optional billing fields
func (i *Invoice) SetDetails(number string, date *time.Time, amount *decimal.Decimal, description string) {
	i.InvoiceNumber = number
	i.InvoiceDate = date
	i.Amount = amount
	i.Description = description
	i.UpdatedAt = time.Now()
}

// MarkPaidByCustomer records the customer-side paid flag. The transition
// is one-way: marking an already-paid invoice is rejected and leaves the
// paid timestamp untouched.
func (i *Invoice) MarkPaidByCustomer() error {
	if i.IsPaidByCustomer {
		return shared.NewDomainError("ALREADY_PAID", "Invoice is already marked as paid")
	}

	i.IsPaidByCustomer = true
	now := time.Now()
	i.CustomerPaidAt = &now
	i.UpdatedAt = now
	return nil
}

// VerifyByAdmin records the admin-side verification flag, independent of
// the customer paid flag
func (i *Invoice) VerifyByAdmin() error {
	if i.IsVerifiedByAdmin {
		return shared.NewDomainError("ALREADY_VERIFIED", "Invoice is already verified")
	}

	i.IsVerifiedByAdmin = true
	now := time.Now()
	i.VerifiedAt = &now
	i.UpdatedAt = now
	return nil
}
