package catalog

import (
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Product is a tenant's document-chat assistant: the unit that documents
// are attached to, that customers chat with, and that QA test runs are
// executed against.
type Product struct {
	shared.TenantEntity
	Name         string
	Description  string
	SystemPrompt string
	IsActive     bool
}

// NewProduct creates a new active chat product
func NewProduct(tenantID uuid.UUID, name, description string) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Product{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Description:  description,
		IsActive:     true,
	}, nil
}

// Update changes the product's editable fields
func (p *Product) Update(name, description, systemPrompt string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	p.Name = name
	p.Description = description
	p.SystemPrompt = systemPrompt
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate hides the product from the customer portal
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// Activate re-enables the product
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}
