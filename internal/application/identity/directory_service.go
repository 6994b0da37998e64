package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuchat/backend/internal/domain/identity"
	"github.com/docuchat/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DirectoryService resolves customer emails to their owning tenant.
// The chat runtime calls this on every inbound conversation to decide
// which tenant's knowledge base serves the customer.
type DirectoryService struct {
	customerRepo identity.CustomerRepository
	tenantRepo   identity.TenantRepository
	logger       *zap.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	customerRepo identity.CustomerRepository,
	tenantRepo identity.TenantRepository,
	logger *zap.Logger,
) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		logger:       logger,
	}
}

// ResolveTenant maps a customer email to its tenant. Unknown emails
// yield NotFound; the active flag reflects both the customer and the
// tenant so callers can reject suspended accounts in one check.
func (s *DirectoryService) ResolveTenant(ctx context.Context, email string) (*TenantResolution, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "No customer registered under this email")
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	active := customer.IsActive
	if active {
		tenant, err := s.tenantRepo.FindByID(ctx, customer.TenantID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, fmt.Errorf("failed to look up tenant: %w", err)
			}
			active = false
		} else {
			active = tenant.IsActive
		}
	}

	return &TenantResolution{
		TenantID: customer.TenantID,
		IsActive: active,
	}, nil
}
