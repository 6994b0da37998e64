package models

import (
	"time"

	"github.com/docuchat/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	TenantModelBase
	StorageKey        string           `gorm:"type:varchar(1000);not null;uniqueIndex"`
	Filename          string           `gorm:"type:varchar(500);not null"`
	ContentType       string           `gorm:"type:varchar(200);not null"`
	InvoiceNumber     string           `gorm:"type:varchar(100);index"`
	InvoiceDate       *time.Time       `gorm:""`
	Amount            *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Description       string           `gorm:"type:text"`
	IsPaidByCustomer  bool             `gorm:"not null;default:false"`
	CustomerPaidAt    *time.Time       `gorm:""`
	IsVerifiedByAdmin bool             `gorm:"not null;default:false"`
	VerifiedAt        *time.Time       `gorm:""`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		TenantEntity:      m.ToDomainTenantEntity(),
		StorageKey:        m.StorageKey,
		Filename:          m.Filename,
		ContentType:       m.ContentType,
		InvoiceNumber:     m.InvoiceNumber,
		InvoiceDate:       m.InvoiceDate,
		Amount:            m.Amount,
		Description:       m.Description,
		IsPaidByCustomer:  m.IsPaidByCustomer,
		CustomerPaidAt:    m.CustomerPaidAt,
		IsVerifiedByAdmin: m.IsVerifiedByAdmin,
		VerifiedAt:        m.VerifiedAt,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *finance.Invoice) {
	m.FromDomainTenantEntity(inv.TenantEntity)
	m.StorageKey = inv.StorageKey
	m.Filename = inv.Filename
	m.ContentType = inv.ContentType
	m.InvoiceNumber = inv.InvoiceNumber
	m.InvoiceDate = inv.InvoiceDate
	m.Amount = inv.Amount
	m.Description = inv.Description
	m.IsPaidByCustomer = inv.IsPaidByCustomer
	m.CustomerPaidAt = inv.CustomerPaidAt
	m.IsVerifiedByAdmin = inv.IsVerifiedByAdmin
	m.VerifiedAt = inv.VerifiedAt
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}
