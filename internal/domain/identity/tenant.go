package identity

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
)

// Tenant is an isolated customer organization. Every resource row in the
// system carries a tenant identifier used for authorization scoping.
type Tenant struct {
	shared.BaseEntity
	Name     string
	Slug     string
	IsActive bool
}

// NewTenant creates a new active tenant
func NewTenant(name, slug string) (*Tenant, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Tenant slug cannot be empty")
	}

	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
	}, nil
}

// Deactivate suspends the tenant; all portal and console access is
// rejected with Forbidden while inactive
func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// Activate re-enables the tenant
func (t *Tenant) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}
