package identity

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest carries the credentials for either login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the successful login payload
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	Account   AccountInfo `json:"account"`
}

// AccountInfo describes the authenticated account
type AccountInfo struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
}

// TenantResolution maps a customer email to its owning tenant
type TenantResolution struct {
	TenantID uuid.UUID `json:"tenant_id"`
	IsActive bool      `json:"is_active"`
}
