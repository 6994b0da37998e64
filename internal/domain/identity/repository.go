package identity

import (
	"context"

	"github.com/docuchat/backend/internal/domain/shared"
)

// TenantRepository manages persistence for tenants
type TenantRepository interface {
	shared.Repository[Tenant]

	FindBySlug(ctx context.Context, slug string) (*Tenant, error)
}

// CustomerRepository manages persistence for portal customers
type CustomerRepository interface {
	shared.TenantRepository[Customer]

	// FindByEmail looks a customer up across tenants; emails are unique
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}

// UserRepository manages persistence for admin-console users
type UserRepository interface {
	shared.TenantRepository[User]

	FindByEmail(ctx context.Context, email string) (*User, error)
}
