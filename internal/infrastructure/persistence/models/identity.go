package models

import (
	"time"

	"github.com/docuchat/backend/internal/domain/identity"
)

// TenantModel is the persistence model for the Tenant domain entity.
type TenantModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant entity.
func (m *TenantModel) ToDomain() *identity.Tenant {
	return &identity.Tenant{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Slug:       m.Slug,
		IsActive:   m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Tenant entity.
func (m *TenantModel) FromDomain(t *identity.Tenant) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Slug = t.Slug
	m.IsActive = t.IsActive
}

// TenantModelFromDomain creates a new persistence model from a domain Tenant entity.
func TenantModelFromDomain(t *identity.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}

// UserModel is the persistence model for the admin-console User entity.
type UserModel struct {
	TenantModelBase
	Email        string     `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	Name         string     `gorm:"type:varchar(200);not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		TenantEntity: m.ToDomainTenantEntity(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainTenantEntity(u.TenantEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Name = u.Name
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// CustomerModel is the persistence model for the portal Customer entity.
type CustomerModel struct {
	TenantModelBase
	Email        string     `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	Name         string     `gorm:"type:varchar(200);not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *identity.Customer {
	return &identity.Customer{
		TenantEntity: m.ToDomainTenantEntity(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *identity.Customer) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Email = c.Email
	m.PasswordHash = c.PasswordHash
	m.Name = c.Name
	m.IsActive = c.IsActive
	m.LastLoginAt = c.LastLoginAt
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *identity.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
