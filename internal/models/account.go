package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a bank account that paychecks are distributed to.
// A nil balance disables balance tracking for the account.
type Account struct {
	DefaultModel
	Name    string           `gorm:"uniqueIndex:account_name"`
	Balance *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrAccountNameNotUnique = errors.New("the account name must be unique")
	ErrAccountNameEmpty     = errors.New("the account name must not be empty")
)

// BeforeSave trims whitespace and verifies that the account has a name.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	return nil
}

// Bills returns all bills paid from this account.
func (a Account) Bills(db *gorm.DB) []Bill {
	var bills []Bill

	db.Where(Bill{AccountID: a.ID}).Find(&bills)
	return bills
}

// Expenses returns all expenses paid from this account.
func (a Account) Expenses(db *gorm.DB) []Expense {
	var expenses []Expense

	db.Where(Expense{AccountID: a.ID}).Find(&expenses)
	return expenses
}
