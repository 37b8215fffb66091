package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is a recurring monthly obligation, e.g. rent.
type Bill struct {
	DefaultModel
	Name      string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // What the bill costs every month
	DueDay    int             // Day of month the bill is due. Clamped to shorter months.
	Account   Account         `json:"-"`
	AccountID uuid.UUID
}

var (
	ErrBillNameEmpty           = errors.New("the bill name must not be empty")
	ErrBillAmountNotPositive   = errors.New("bill amounts must be larger than zero")
	ErrObligationDayOutOfRange = errors.New("the due day must be between 1 and 31")
)

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Bill)
	return b.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the bill before
// committing an update to the database.
func (b *Bill) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Bill)
	if tx.Statement.Changed("AccountID") {
		return b.checkIntegrity(tx, toSave)
	}

	return nil
}

func (b *Bill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrBillNameEmpty
	}

	return nil
}

func (b *Bill) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBillAmountNotPositive
	}

	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrObligationDayOutOfRange
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (b *Bill) checkIntegrity(tx *gorm.DB, toSave Bill) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}
