package chat

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChatLogRepository manages persistence for chat logs
type ChatLogRepository interface {
	shared.TenantRepository[ChatLog]

	// CountByProduct counts exchanges for one product of a tenant
	CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error)
}
