package model

import (
	"time"
)

// Account represents the database model for a registered chat user
type Account struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement:false"`
	DisplayName  string    `gorm:"size:255"`
	Language     string    `gorm:"size:8;not null"`
	RegisteredAt time.Time `gorm:"not null"`
	Balance      int64     `gorm:"not null;default:0"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// AccountEntitlement is one good owned by an account.
// The unique pair makes granting an insert-if-absent.
type AccountEntitlement struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;uniqueIndex:idx_account_entitlements_user_entitlement,priority:1"`
	Entitlement string    `gorm:"size:128;not null;uniqueIndex:idx_account_entitlements_user_entitlement,priority:2"`
	GrantedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountEntitlement
func (AccountEntitlement) TableName() string {
	return "account_entitlements"
}
