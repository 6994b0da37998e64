package catalog

import (
	"time"

	"github.com/docuchat/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductRequest creates a new chat product
type CreateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
}

// UpdateProductRequest replaces the editable fields of a product
type UpdateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
	IsActive     *bool  `json:"is_active"`
}

// ListProductsRequest carries pagination for product listings
type ListProductsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ProductResponse is the API shape of a chat product
type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	SystemPrompt string    `json:"system_prompt"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SystemPrompt: p.SystemPrompt,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
