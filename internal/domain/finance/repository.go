package finance

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository manages persistence for invoices
type InvoiceRepository interface {
	shared.TenantRepository[Invoice]

	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
