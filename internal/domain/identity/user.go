package identity

import (
	"strings"
	"time"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an admin-console account scoped to a tenant
type User struct {
	shared.TenantEntity
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewUser creates a new active admin user with a hashed password
func NewUser(tenantID uuid.UUID, email, password, name string) (*User, error) {
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

	return &User{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		IsActive:     true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}
