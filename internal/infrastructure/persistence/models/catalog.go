package models

import (
	"github.com/docuchat/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the chat Product entity.
type ProductModel struct {
	TenantModelBase
	Name         string `gorm:"type:varchar(200);not null"`
	Description  string `gorm:"type:text"`
	SystemPrompt string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Description:  m.Description,
		SystemPrompt: m.SystemPrompt,
		IsActive:     m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainTenantEntity(p.TenantEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.SystemPrompt = p.SystemPrompt
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
