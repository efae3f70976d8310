package model

import (
	"time"
)

// Invoice represents the database model for a tracked processor invoice
type Invoice struct {
	InvoiceID   string     `gorm:"primaryKey;size:64"`
	UserID      int64      `gorm:"not null;index:idx_invoices_user_created,priority:1"`
	Asset       string     `gorm:"size:16;not null"`
	Amount      string     `gorm:"size:50;not null"`
	Credits     int64      `gorm:"not null"`
	Entitlement string     `gorm:"size:128"`
	PayURL      string     `gorm:"size:512"`
	Status      string     `gorm:"size:16;not null;index"`
	Applied     bool       `gorm:"not null;default:false"`
	AppliedAt   *time.Time `gorm:"default:null"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_invoices_user_created,priority:2"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
