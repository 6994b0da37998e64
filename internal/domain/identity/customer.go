package identity

import (
	"strings"
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Customer is a portal account belonging to a tenant. The directory maps
// an authenticated customer email to its owning tenant.
type Customer struct {
	shared.TenantEntity
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewCustomer creates a new active customer with a hashed password
func NewCustomer(tenantID uuid.UUID, email, password, name string) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		IsActive:     true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (c *Customer) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login time
func (c *Customer) RecordLogin() {
	now := time.Now()
	c.LastLoginAt = &now
	c.UpdatedAt = now
}

// Deactivate suspends the customer account
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}
