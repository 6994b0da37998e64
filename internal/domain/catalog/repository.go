package catalog

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository manages persistence for chat products
type ProductRepository interface {
	shared.TenantRepository[Product]

	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
