package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LockedAllocation is one account's share of a locked custom paycheck
// distribution. The account is the primary key since an account can
// only have one locked amount.
type LockedAllocation struct {
	AccountID uuid.UUID `gorm:"primaryKey"`
	Timestamps
	Account Account         `json:"-"`
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrLockedAllocationExists   = errors.New("the account already has a locked amount")
	ErrLockedAllocationNegative = errors.New("locked amounts must not be negative")
)

func (l *LockedAllocation) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*LockedAllocation)
	return l.checkIntegrity(tx, *toSave)
}

func (l *LockedAllocation) BeforeSave(_ *gorm.DB) error {
	if l.Amount.IsNegative() {
		return ErrLockedAllocationNegative
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (l *LockedAllocation) checkIntegrity(tx *gorm.DB, toSave LockedAllocation) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}
